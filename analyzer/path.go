package analyzer

import (
	"github.com/viant/tshape/ast"
	"github.com/viant/tshape/shape"
)

// canonicalize implements the Path Canonicalizer: given an access-expression
// subtree, return a canonical Path or nil meaning "not a simple accessor".
// It is pure — no Tracker side effects.
func canonicalize(n ast.Node) shape.Path {
	switch e := n.(type) {
	case *ast.Identifier:
		if e.Name == "loop" {
			// the loop.* namespace is Jinja-intrinsic, never external
			return nil
		}
		return shape.Path{e.Name}

	case *ast.Attribute:
		base := canonicalize(e.Base)
		if base == nil {
			return nil
		}
		return append(base, e.Name)

	case *ast.Subscript:
		base := canonicalize(e.Base)
		if base == nil {
			return nil
		}
		switch {
		case e.IsStr:
			// obj['key'] -> obj.key normalization
			if lit, ok := e.Index.(*ast.Literal); ok {
				return append(base, lit.Value)
			}
			return base
		case e.IsInt:
			// array indices do not differentiate shape
			return base
		default:
			// subscript-by-variable: base's path is unchanged; the Walker
			// separately analyzes the index expression as a read
			return base
		}
	}
	// literal, call, filter, arithmetic, or anything else at the base
	return nil
}

// variableIndices walks the same Attribute/Subscript chain canonicalize does
// and collects the index expressions of any subscript-by-variable nodes
// found along it: a[b] contributes a read of b but does not extend a's path,
// so those index expressions need a separate pass through readExpr even when
// the chain as a whole canonicalizes.
func variableIndices(n ast.Node) []ast.Node {
	switch e := n.(type) {
	case *ast.Attribute:
		return variableIndices(e.Base)
	case *ast.Subscript:
		idx := variableIndices(e.Base)
		if !e.IsStr && !e.IsInt {
			idx = append(idx, e.Index)
		}
		return idx
	}
	return nil
}
