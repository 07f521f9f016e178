package analyzer

import "github.com/viant/tshape/shape"

// TemplateAnalysis is the public result of analyzing a single template.
// Every slice is sorted for determinism.
type TemplateAnalysis struct {
	// ExternalVars lists every Identifier classified External.
	ExternalVars []shape.Identifier `json:"external_vars"`
	// InternalVars lists every Identifier classified Internal.
	InternalVars []shape.Identifier `json:"internal_vars"`
	// LoopVars maps an induction variable to its iterable's canonical path,
	// rendered as a dotted string (e.g. "messages", "m.tags").
	LoopVars map[shape.Identifier]string `json:"loop_vars"`
	// ObjectAttrs maps each canonical root to the sorted set of dotted
	// attribute paths observed rooted at it.
	ObjectAttrs map[shape.Identifier][]string `json:"object_attrs"`
	// Skeleton is the synthesized JSON shape of the expected render context.
	Skeleton map[string]interface{} `json:"skeleton"`
	// Notes carries non-fatal diagnostics accumulated in strict mode.
	Notes []string `json:"notes,omitempty"`
}
