package analyzer

import "github.com/viant/tshape/shape"

// tracker implements the four operations the Walker invokes against a
// shape.TrackerState: observe_read, observe_set, observe_loop, and
// alias-chain resolution.
type tracker struct {
	state *shape.TrackerState
}

func newTracker() *tracker {
	return &tracker{state: shape.NewTrackerState()}
}

// observeRead implements observe_read: a path's root is classified External
// on first touch unless already classified otherwise.
func (t *tracker) observeRead(path shape.Path) {
	if len(path) == 0 {
		return
	}
	root := path.Root()
	if !t.state.Classified(root) {
		t.state.ExternalVars[root] = true
	}
	t.state.RecordAttr(path)
}

// rhsInfo distinguishes a `set x = y` bare-identifier RHS (aliasing) from
// any more complex RHS expression.
type rhsInfo struct {
	bare   bool
	source shape.Identifier
}

func bareIdent(source shape.Identifier) rhsInfo { return rhsInfo{bare: true, source: source} }
func complexRhs() rhsInfo                       { return rhsInfo{} }

// observeSet implements observe_set.
func (t *tracker) observeSet(target shape.Identifier, rhs rhsInfo) {
	if t.state.Classified(target) {
		// first-touch wins; attribute observations on the RHS are produced
		// separately by the Walker's read traversal.
		return
	}
	if !rhs.bare {
		t.state.InternalVars[target] = true
		return
	}
	// tentatively record the alias edge, then check for a cycle
	t.state.Aliases[target] = rhs.source
	if t.resolveAliasChain(rhs.source) == target {
		delete(t.state.Aliases, target)
		t.state.InternalVars[target] = true
	}
	// emit an implicit read of the source so it gets classified too
	t.observeRead(shape.Path{string(rhs.source)})
}

// observeLoop implements observe_loop. iterPath may be nil when the
// iterable is a complex (non-canonicalizable) expression.
func (t *tracker) observeLoop(target shape.Identifier, iterPath shape.Path) {
	if iterPath != nil {
		t.observeRead(iterPath)
	}
	if t.state.Classified(target) {
		return
	}
	t.state.LoopVars[target] = iterPath
}

// resolveAliasChain implements resolve_alias_chain, following aliases to
// the canonical root with a visited-set cycle guard.
func (t *tracker) resolveAliasChain(name shape.Identifier) shape.Identifier {
	visited := map[shape.Identifier]bool{}
	cur := name
	for {
		next, ok := t.state.Aliases[cur]
		if !ok {
			return cur
		}
		if visited[cur] {
			// defense in depth: the cycle guard in observeSet should make
			// this unreachable.
			return cur
		}
		visited[cur] = true
		cur = next
	}
}
