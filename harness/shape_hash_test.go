package harness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/tshape/harness"
)

func TestShapeHash_DeterministicRegardlessOfKeyOrder(t *testing.T) {
	a := map[string]interface{}{"name": "", "user": map[string]interface{}{"id": ""}}
	b := map[string]interface{}{"user": map[string]interface{}{"id": ""}, "name": ""}

	hashA, err := harness.ShapeHash(a)
	require.NoError(t, err)
	hashB, err := harness.ShapeHash(b)
	require.NoError(t, err)
	assert.Equal(t, hashA, hashB)
}

func TestShapeHash_DifferentShapesDiffer(t *testing.T) {
	a := map[string]interface{}{"name": ""}
	b := map[string]interface{}{"title": ""}

	hashA, err := harness.ShapeHash(a)
	require.NoError(t, err)
	hashB, err := harness.ShapeHash(b)
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashB)
}
