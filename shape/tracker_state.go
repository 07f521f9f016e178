package shape

import "sort"

// TrackerState is the authoritative data structure the Variable Tracker
// mutates during a single analyze call.
//
// Invariants (enforced by the operations in analyzer/tracker.go, not here —
// this type is a passive container):
//  1. externalVars, internalVars, aliases, loopVars are pairwise disjoint on
//     their key sets.
//  2. every key of aliases/loopVars is present in exactly one classification
//     bucket (Alias/LoopVar respectively).
//  3. the alias graph has no cycles.
//  4. every Path in objectAttrs[x] begins with x.
//  5. classification is first-touch and monotonic.
type TrackerState struct {
	// ExternalVars is the set of Identifiers classified External.
	ExternalVars map[Identifier]bool
	// InternalVars is the set of Identifiers classified Internal.
	InternalVars map[Identifier]bool
	// Aliases maps an alias target to its immediate source Identifier.
	Aliases map[Identifier]Identifier
	// LoopVars maps an induction variable to the canonical Path of its iterable.
	// A nil Path records an anonymous/unresolvable iterable.
	LoopVars map[Identifier]Path
	// ObjectAttrs maps a root Identifier to every Path observed rooted at it,
	// keyed by the dotted string form for natural de-duplication.
	ObjectAttrs map[Identifier]map[string]Path
}

// NewTrackerState returns an empty TrackerState ready for a single analyze call.
func NewTrackerState() *TrackerState {
	return &TrackerState{
		ExternalVars: map[Identifier]bool{},
		InternalVars: map[Identifier]bool{},
		Aliases:      map[Identifier]Identifier{},
		LoopVars:     map[Identifier]Path{},
		ObjectAttrs:  map[Identifier]map[string]Path{},
	}
}

// Classified reports whether name already belongs to any of the four buckets.
func (s *TrackerState) Classified(name Identifier) bool {
	if s.ExternalVars[name] || s.InternalVars[name] {
		return true
	}
	if _, ok := s.Aliases[name]; ok {
		return true
	}
	if _, ok := s.LoopVars[name]; ok {
		return true
	}
	return false
}

// KindOf returns the classification of name, or "" if unclassified.
func (s *TrackerState) KindOf(name Identifier) Kind {
	switch {
	case s.ExternalVars[name]:
		return External
	case s.InternalVars[name]:
		return Internal
	}
	if _, ok := s.Aliases[name]; ok {
		return Alias
	}
	if _, ok := s.LoopVars[name]; ok {
		return LoopVar
	}
	return ""
}

// RecordAttr records path under its root identifier, de-duplicating by
// dotted string. Paths of length 1 (bare roots) are not recorded — only
// genuine attribute observations are.
func (s *TrackerState) RecordAttr(path Path) {
	if len(path) < 2 {
		return
	}
	root := path.Root()
	bucket := s.ObjectAttrs[root]
	if bucket == nil {
		bucket = map[string]Path{}
		s.ObjectAttrs[root] = bucket
	}
	bucket[path.String()] = path.Clone()
}

// SortedIdentifiers returns the keys of a bool-set in sorted order.
func SortedIdentifiers(set map[Identifier]bool) []Identifier {
	out := make([]Identifier, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
