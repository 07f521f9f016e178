package analyzer

import (
	"sort"

	"github.com/viant/tshape/shape"
)

// Merge combines the results of analyzing multiple templates that share a
// render context (e.g. a base template and the children that extend it)
// into a single TemplateAnalysis. External/internal/loop-var sets are
// unioned; object attribute sets are unioned per root; skeletons are
// deep-merged the same way a loop element's attributes are deep-merged
// during synthesis, so a field seen as a plain leaf in one template and as
// an object in another keeps the richer shape.
func Merge(results ...*TemplateAnalysis) *TemplateAnalysis {
	out := &TemplateAnalysis{
		LoopVars:    map[shape.Identifier]string{},
		ObjectAttrs: map[shape.Identifier][]string{},
		Skeleton:    map[string]interface{}{},
	}

	externals := map[shape.Identifier]bool{}
	internals := map[shape.Identifier]bool{}
	attrs := map[shape.Identifier]map[string]bool{}

	for _, r := range results {
		if r == nil {
			continue
		}
		for _, v := range r.ExternalVars {
			externals[v] = true
		}
		for _, v := range r.InternalVars {
			internals[v] = true
		}
		for t, iter := range r.LoopVars {
			out.LoopVars[t] = iter
		}
		for root, paths := range r.ObjectAttrs {
			set := attrs[root]
			if set == nil {
				set = map[string]bool{}
				attrs[root] = set
			}
			for _, p := range paths {
				set[p] = true
			}
		}
		deepMerge(out.Skeleton, r.Skeleton)
		out.Notes = append(out.Notes, r.Notes...)
	}

	out.ExternalVars = shape.SortedIdentifiers(externals)
	out.InternalVars = shape.SortedIdentifiers(internals)
	for root, set := range attrs {
		list := make([]string, 0, len(set))
		for p := range set {
			list = append(list, p)
		}
		sort.Strings(list)
		out.ObjectAttrs[root] = list
	}
	return out
}
