package analyzer

import (
	"sort"

	"github.com/viant/tshape/shape"
)

// synthesizer consumes the Tracker's frozen final state and produces a
// deterministic JSON value describing the expected render context.
type synthesizer struct {
	state *tracker
}

// loopGroup collects every induction variable that iterates the same
// canonical (root, suffix) pair: when two loop variables iterate the same
// canonical iterable, their attribute observations are merged.
type loopGroup struct {
	suffix []string
	vars   []shape.Identifier
}

// groupsFor returns, for a given canonical root, the loop groups keyed by
// the dotted suffix of the resolved iterable path (empty suffix means the
// root itself is the iterated collection).
func (s *synthesizer) groupsFor(root shape.Identifier) map[string]*loopGroup {
	groups := map[string]*loopGroup{}
	for t, iterPath := range s.state.state.LoopVars {
		resolved := s.resolvePath(iterPath)
		if resolved == nil || resolved.Root() != root {
			continue
		}
		key := shape.Path(resolved.Suffix()).String()
		g := groups[key]
		if g == nil {
			g = &loopGroup{suffix: resolved.Suffix()}
			groups[key] = g
		}
		g.vars = append(g.vars, t)
	}
	return groups
}

// resolvePath re-homes a raw canonicalized Path onto its alias-resolved
// canonical root; attribute re-homing happens here, at synthesis time, not
// at observation time. A nil input (anonymous/unresolvable iterable) stays
// nil.
func (s *synthesizer) resolvePath(p shape.Path) shape.Path {
	if p == nil {
		return nil
	}
	root := s.state.resolveAliasChain(p.Root())
	out := make(shape.Path, 0, len(p))
	out = append(out, string(root))
	out = append(out, p.Suffix()...)
	return out
}

// attrSuffixes returns every attribute suffix ([]string, never empty)
// observed on any identifier whose alias chain resolves to root, so
// attributes seen through an alias are re-homed onto root here.
func (s *synthesizer) attrSuffixes(root shape.Identifier) [][]string {
	var out [][]string
	for rawRoot, paths := range s.state.state.ObjectAttrs {
		if s.state.resolveAliasChain(rawRoot) != root {
			continue
		}
		for _, p := range paths {
			out = append(out, append([]string{}, p.Suffix()...))
		}
	}
	return out
}

// objectFor builds the JSON object describing id's own shape: its observed
// attribute paths plus any nested loop whose iterable resolves to id with a
// non-empty suffix (e.g. `for tag in m.tags` nests "tags" under m's object).
func (s *synthesizer) objectFor(id shape.Identifier) map[string]interface{} {
	result := map[string]interface{}{}

	groups := s.groupsFor(id)
	var suffixKeys []string
	for k := range groups {
		suffixKeys = append(suffixKeys, k)
	}
	sort.Strings(suffixKeys)
	for _, key := range suffixKeys {
		g := groups[key]
		if len(g.suffix) == 0 {
			// handled by the caller (direct iteration of id itself); a
			// nested identifier iterating itself with no suffix has no
			// stable representation within its parent's object and is
			// intentionally omitted here.
			continue
		}
		elem := s.mergeObjects(g.vars)
		insertArray(result, g.suffix, elem)
	}

	for _, suffix := range s.attrSuffixes(id) {
		if len(suffix) == 0 {
			continue
		}
		insertLeafIfAbsent(result, suffix)
	}

	return result
}

// mergeObjects deep-merges the objectFor result of each induction variable
// sharing an iterable.
func (s *synthesizer) mergeObjects(vars []shape.Identifier) map[string]interface{} {
	merged := map[string]interface{}{}
	for _, v := range vars {
		deepMerge(merged, s.objectFor(v))
	}
	return merged
}

// Synthesize builds the root JSON object, with one entry per External
// identifier.
func (s *synthesizer) Synthesize() map[string]interface{} {
	root := map[string]interface{}{}
	for _, r := range shape.SortedIdentifiers(s.state.state.ExternalVars) {
		groups := s.groupsFor(r)
		if g, ok := groups[""]; ok {
			root[string(r)] = []interface{}{s.mergeObjects(g.vars)}
			continue
		}
		obj := s.objectFor(r)
		if len(obj) > 0 {
			root[string(r)] = obj
			continue
		}
		root[string(r)] = "" // scalar leaf default
	}
	return root
}

// insertLeafIfAbsent writes an empty-string leaf at the given path, never
// clobbering a richer value (e.g. an array) already placed there by a loop.
func insertLeafIfAbsent(m map[string]interface{}, path []string) {
	for len(path) > 1 {
		next, ok := m[path[0]].(map[string]interface{})
		if !ok {
			if _, exists := m[path[0]]; exists {
				return // path collides with a non-object value; drop silently
			}
			next = map[string]interface{}{}
			m[path[0]] = next
		}
		m = next
		path = path[1:]
	}
	if _, exists := m[path[0]]; !exists {
		m[path[0]] = ""
	}
}

// insertArray writes an array-of-one-element at the given path.
func insertArray(m map[string]interface{}, path []string, elem map[string]interface{}) {
	for len(path) > 1 {
		next, ok := m[path[0]].(map[string]interface{})
		if !ok {
			next = map[string]interface{}{}
			m[path[0]] = next
		}
		m = next
		path = path[1:]
	}
	m[path[0]] = []interface{}{elem}
}

// deepMerge merges src into dst, combining nested objects key by key. A
// leaf yields to an object or array at the same key.
func deepMerge(dst, src map[string]interface{}) {
	for k, v := range src {
		existing, ok := dst[k]
		if !ok {
			dst[k] = v
			continue
		}
		existingObj, eok := existing.(map[string]interface{})
		srcObj, sok := v.(map[string]interface{})
		if eok && sok {
			deepMerge(existingObj, srcObj)
			continue
		}
		_, existingLeaf := existing.(string)
		_, srcLeaf := v.(string)
		if existingLeaf && !srcLeaf {
			dst[k] = v
			continue
		}
		// otherwise keep the existing value (first-touch-ish tie-break)
	}
}
