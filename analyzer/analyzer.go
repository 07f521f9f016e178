// Package analyzer performs static variable-usage analysis over Jinja-style
// templates: which names are read from the render context, which are
// template-local, how loop induction variables relate to their iterables,
// and the JSON shape the context is expected to have.
package analyzer

import (
	"sort"

	"github.com/viant/tshape/parser"
	"github.com/viant/tshape/shape"
)

// Analyzer analyzes template sources. The zero value is not usable; build
// one with New.
type Analyzer struct {
	maxDepth int
	strict   bool
}

// New constructs an Analyzer, applying opts in order.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze parses src and walks it, returning the accumulated TemplateAnalysis.
// A syntax error is returned as *ParseError; a structural failure during the
// walk (only reachable via a malformed AST or WithMaxDepth) as *AnalysisError.
func (a *Analyzer) Analyze(src string) (*TemplateAnalysis, error) {
	tmpl, err := parser.Parse([]byte(src))
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	t := newTracker()
	w := &walker{tracker: t, maxDepth: a.maxDepth, strict: a.strict}
	if err := w.walkTemplate(tmpl); err != nil {
		return nil, err
	}

	return buildResult(t, w.notes), nil
}

// buildResult turns a tracker's frozen state into the public, sorted,
// JSON-ready TemplateAnalysis.
func buildResult(t *tracker, notes []string) *TemplateAnalysis {
	s := &synthesizer{state: t}

	loopVars := make(map[shape.Identifier]string, len(t.state.LoopVars))
	for target, iterPath := range t.state.LoopVars {
		resolved := s.resolvePath(iterPath)
		loopVars[target] = resolved.String()
	}

	byRoot := map[shape.Identifier]map[string]bool{}
	for rawRoot, paths := range t.state.ObjectAttrs {
		canonical := t.resolveAliasChain(rawRoot)
		set := byRoot[canonical]
		if set == nil {
			set = map[string]bool{}
			byRoot[canonical] = set
		}
		for _, p := range paths {
			rooted := append(shape.Path{string(canonical)}, p.Suffix()...)
			set[rooted.String()] = true
		}
	}
	objectAttrs := make(map[shape.Identifier][]string, len(byRoot))
	for root, set := range byRoot {
		list := make([]string, 0, len(set))
		for dotted := range set {
			list = append(list, dotted)
		}
		sort.Strings(list)
		objectAttrs[root] = list
	}

	return &TemplateAnalysis{
		ExternalVars: shape.SortedIdentifiers(t.state.ExternalVars),
		InternalVars: shape.SortedIdentifiers(t.state.InternalVars),
		LoopVars:     loopVars,
		ObjectAttrs:  objectAttrs,
		Skeleton:     s.Synthesize(),
		Notes:        notes,
	}
}
