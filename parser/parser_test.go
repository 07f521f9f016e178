package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/tshape/ast"
	"github.com/viant/tshape/parser"
)

func TestParse_EmitExpression(t *testing.T) {
	tmpl, err := parser.Parse([]byte(`{{ user.name }}`))
	require.NoError(t, err)
	require.Len(t, tmpl.Body, 1)
	emit, ok := tmpl.Body[0].(*ast.EmitExpression)
	require.True(t, ok)
	attr, ok := emit.Expr.(*ast.Attribute)
	require.True(t, ok)
	assert.Equal(t, "name", attr.Name)
	ident, ok := attr.Base.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "user", ident.Name)
}

func TestParse_ForWithFilterAndTupleTarget(t *testing.T) {
	tmpl, err := parser.Parse([]byte(`{% for k, v in mapping if k %}{{ v }}{% endfor %}`))
	require.NoError(t, err)
	require.Len(t, tmpl.Body, 1)
	forStmt, ok := tmpl.Body[0].(*ast.For)
	require.True(t, ok)
	tuple, ok := forStmt.Target.(*ast.TupleTarget)
	require.True(t, ok)
	require.Len(t, tuple.Names, 2)
	assert.Equal(t, "k", tuple.Names[0].Name)
	assert.Equal(t, "v", tuple.Names[1].Name)
	assert.NotNil(t, forStmt.Filter)
}

func TestParse_SetAndScopedSet(t *testing.T) {
	tmpl, err := parser.Parse([]byte(`{% set x = 1 %}{% set y %}body{% endset %}`))
	require.NoError(t, err)
	require.Len(t, tmpl.Body, 2)
	_, ok := tmpl.Body[0].(*ast.Set)
	assert.True(t, ok)
	_, ok = tmpl.Body[1].(*ast.ScopedSet)
	assert.True(t, ok)
}

func TestParse_UnclosedTagIsError(t *testing.T) {
	_, err := parser.Parse([]byte(`{% if x %}no end`))
	assert.Error(t, err)
}

func TestParse_StringAndIntSubscript(t *testing.T) {
	tmpl, err := parser.Parse([]byte(`{{ a['k'] }}{{ a[0] }}`))
	require.NoError(t, err)
	require.Len(t, tmpl.Body, 2)

	sub1 := tmpl.Body[0].(*ast.EmitExpression).Expr.(*ast.Subscript)
	assert.True(t, sub1.IsStr)
	assert.False(t, sub1.IsInt)

	sub2 := tmpl.Body[1].(*ast.EmitExpression).Expr.(*ast.Subscript)
	assert.True(t, sub2.IsInt)
	assert.False(t, sub2.IsStr)
}
