package analyzer

import (
	"github.com/viant/tshape/ast"
	"github.com/viant/tshape/shape"
)

// walker performs a depth-first, pre-order traversal that feeds every
// expression and statement into the tracker in first-touch, left-to-right,
// document order.
type walker struct {
	tracker  *tracker
	maxDepth int
	strict   bool
	notes    []string
}

func (w *walker) walkTemplate(t *ast.Template) error {
	return w.walkBody(t.Body, 0)
}

func (w *walker) walkBody(body []ast.Node, depth int) error {
	if depth > w.maxDepth {
		return NewAnalysisError(0, "max recursion depth exceeded")
	}
	for _, n := range body {
		if err := w.walkStmt(n, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// walkStmt dispatches a single top-level/body node by kind.
func (w *walker) walkStmt(n ast.Node, depth int) error {
	switch s := n.(type) {
	case *ast.EmitExpression:
		return w.readExpr(s.Expr, depth)

	case *ast.If:
		if err := w.readExpr(s.Test, depth); err != nil {
			return err
		}
		if err := w.walkBody(s.Consequence.Body, depth); err != nil {
			return err
		}
		if s.Alternative == nil {
			return nil
		}
		switch alt := s.Alternative.(type) {
		case *ast.Block:
			return w.walkBody(alt.Body, depth)
		default:
			return w.walkStmt(alt, depth)
		}

	case *ast.For:
		return w.walkFor(s, depth)

	case *ast.Set:
		return w.walkSet(s, depth)

	case *ast.ScopedSet:
		if err := w.walkBody(s.Body.Body, depth); err != nil {
			return err
		}
		w.tracker.observeSet(shape.Identifier(s.Target.Name), complexRhs())
		return nil

	case *ast.With:
		if err := w.readExpr(s.Value, depth); err != nil {
			return err
		}
		target := shape.Identifier(s.Target.Name)
		if ident, ok := s.Value.(*ast.Identifier); ok {
			w.tracker.observeSet(target, bareIdent(shape.Identifier(ident.Name)))
		} else {
			w.tracker.observeSet(target, complexRhs())
		}
		return w.walkBody(s.Body.Body, depth)

	case *ast.Block:
		return w.walkBody(s.Body, depth)

	default:
		// any other node reached as a statement is analyzed as a read
		return w.readExpr(n, depth)
	}
}

func (w *walker) walkFor(s *ast.For, depth int) error {
	iterPath := canonicalize(s.Iter)
	if iterPath == nil {
		if err := w.readExpr(s.Iter, depth); err != nil {
			return err
		}
		if w.strict {
			w.notes = append(w.notes, "for-loop iterable could not be canonicalized")
		}
	} else {
		// observeLoop records the read of iterPath itself; a[b]-style
		// subscript-by-variable indices within it still need a separate read.
		for _, idx := range variableIndices(s.Iter) {
			if err := w.readExpr(idx, depth); err != nil {
				return err
			}
		}
	}

	switch target := s.Target.(type) {
	case *ast.Identifier:
		w.tracker.observeLoop(shape.Identifier(target.Name), iterPath)
	case *ast.TupleTarget:
		// `for k, v in mapping`: both names bind to the same iterable path;
		// neither has a stable single-element identity on its own, so both
		// are recorded against it.
		for _, name := range target.Names {
			w.tracker.observeLoop(shape.Identifier(name.Name), iterPath)
		}
	}

	if s.Filter != nil {
		if err := w.readExpr(s.Filter, depth); err != nil {
			return err
		}
	}
	if err := w.walkBody(s.Body.Body, depth); err != nil {
		return err
	}
	if s.Else != nil {
		return w.walkBody(s.Else.Body, depth)
	}
	return nil
}

func (w *walker) walkSet(s *ast.Set, depth int) error {
	// rhs is always analyzed as a read context first, before classifying target
	if err := w.readExpr(s.Rhs, depth); err != nil {
		return err
	}
	target := shape.Identifier(s.Target.Name)
	if ident, ok := s.Rhs.(*ast.Identifier); ok {
		w.tracker.observeSet(target, bareIdent(shape.Identifier(ident.Name)))
	} else {
		w.tracker.observeSet(target, complexRhs())
	}
	return nil
}

// readExpr analyzes n as a read context: if it canonicalizes to a Path,
// report the read; otherwise recurse structurally into its sub-expressions,
// left to right.
func (w *walker) readExpr(n ast.Node, depth int) error {
	if depth > w.maxDepth {
		return NewAnalysisError(0, "max recursion depth exceeded")
	}
	if n == nil {
		return nil
	}
	if path := canonicalize(n); path != nil {
		w.tracker.observeRead(path)
		for _, idx := range variableIndices(n) {
			if err := w.readExpr(idx, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	switch e := n.(type) {
	case *ast.Identifier:
		// only reachable for the synthetic "loop" root, which canonicalize
		// rejects by design; contributes nothing further.
		return nil
	case *ast.Literal:
		return nil // literals contribute nothing
	case *ast.BinaryExpr:
		if err := w.readExpr(e.Left, depth+1); err != nil {
			return err
		}
		return w.readExpr(e.Right, depth+1)
	case *ast.UnaryExpr:
		return w.readExpr(e.Operand, depth+1)
	case *ast.CondExpr:
		if err := w.readExpr(e.Cond, depth+1); err != nil {
			return err
		}
		if err := w.readExpr(e.Then, depth+1); err != nil {
			return err
		}
		return w.readExpr(e.Else, depth+1)
	case *ast.MacroCall:
		// the callable (macro/function name) is not itself a context read;
		// only argument expressions are analyzed as reads.
		return w.readArgs(e.Args, depth)
	case *ast.FilterApplication:
		if err := w.readExpr(e.Expr, depth+1); err != nil {
			return err
		}
		return w.readArgs(e.Args, depth)
	case *ast.Test:
		if err := w.readExpr(e.Expr, depth+1); err != nil {
			return err
		}
		return w.readArgs(e.Args, depth)
	case *ast.Attribute:
		// canonicalize failed (e.g. base is a call/filter result); still
		// recurse into the base so its own reads are captured.
		return w.readExpr(e.Base, depth+1)
	case *ast.Subscript:
		if err := w.readExpr(e.Base, depth+1); err != nil {
			return err
		}
		if !e.IsStr && !e.IsInt {
			return w.readExpr(e.Index, depth+1)
		}
		return nil
	}
	return NewAnalysisError(int(n.Position()), "unrecognized node in read context")
}

func (w *walker) readArgs(args []ast.Node, depth int) error {
	for _, a := range args {
		if err := w.readExpr(a, depth+1); err != nil {
			return err
		}
	}
	return nil
}
