package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/tshape/analyzer"
	"github.com/viant/tshape/shape"
)

func TestAnalyze_EndToEndScenarios(t *testing.T) {
	testCases := []struct {
		description string
		template    string
		external    []shape.Identifier
		internal    []shape.Identifier
		skeleton    map[string]interface{}
	}{
		{
			description: "simple read",
			template:    `{{ name }}`,
			external:    []shape.Identifier{"name"},
			internal:    []shape.Identifier{},
			skeleton:    map[string]interface{}{"name": ""},
		},
		{
			description: "attribute chain",
			template:    `{{ user.address.city }}`,
			external:    []shape.Identifier{"user"},
			internal:    []shape.Identifier{},
			skeleton: map[string]interface{}{
				"user": map[string]interface{}{
					"address": map[string]interface{}{"city": ""},
				},
			},
		},
		{
			description: "alias and loop",
			template:    `{% set loop_messages = messages %}{% for message in loop_messages %}{{ message['role'] }}{{ message['content']|trim }}{% endfor %}{% if add_generation_prompt %}{{ bos_token }}{% endif %}`,
			external:    []shape.Identifier{"add_generation_prompt", "bos_token", "messages"},
			internal:    []shape.Identifier{},
			skeleton: map[string]interface{}{
				"add_generation_prompt": "",
				"bos_token":             "",
				"messages": []interface{}{
					map[string]interface{}{"role": "", "content": ""},
				},
			},
		},
		{
			description: "string vs integer subscript",
			template:    `{{ a['k'] }}{{ a[0] }}`,
			external:    []shape.Identifier{"a"},
			internal:    []shape.Identifier{},
			skeleton: map[string]interface{}{
				"a": map[string]interface{}{"k": ""},
			},
		},
		{
			description: "complex set",
			template:    `{% set s = x + y %}{{ s }}`,
			external:    []shape.Identifier{"x", "y"},
			internal:    []shape.Identifier{"s"},
			skeleton:    map[string]interface{}{"x": "", "y": ""},
		},
		{
			description: "nested loop",
			template:    `{% for m in messages %}{% for tag in m.tags %}{{ tag.name }}{% endfor %}{% endfor %}`,
			external:    []shape.Identifier{"messages"},
			internal:    []shape.Identifier{},
			skeleton: map[string]interface{}{
				"messages": []interface{}{
					map[string]interface{}{
						"tags": []interface{}{
							map[string]interface{}{"name": ""},
						},
					},
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			result, err := analyzer.New().Analyze(tc.template)
			require.NoError(t, err)
			assert.Equal(t, tc.external, result.ExternalVars)
			assert.Equal(t, tc.internal, result.InternalVars)
			assert.Equal(t, tc.skeleton, result.Skeleton)
		})
	}
}

func TestAnalyze_EmptyTemplateProducesEmptyBuckets(t *testing.T) {
	result, err := analyzer.New().Analyze(`plain text, no expressions`)
	require.NoError(t, err)
	assert.Empty(t, result.ExternalVars)
	assert.Empty(t, result.InternalVars)
	assert.Empty(t, result.LoopVars)
	assert.Equal(t, map[string]interface{}{}, result.Skeleton)
}

func TestAnalyze_LoopNamespaceDropped(t *testing.T) {
	result, err := analyzer.New().Analyze(`{% for item in items %}{{ loop.index }}{{ item }}{% endfor %}`)
	require.NoError(t, err)
	assert.Equal(t, []shape.Identifier{"items"}, result.ExternalVars)
	assert.NotContains(t, result.ExternalVars, shape.Identifier("loop"))
}

func TestAnalyze_SelfAliasIsNoOp(t *testing.T) {
	result, err := analyzer.New().Analyze(`{% set x = x %}{{ x }}`)
	require.NoError(t, err)
	assert.Equal(t, []shape.Identifier{"x"}, result.ExternalVars)
	assert.Empty(t, result.InternalVars)
}

func TestAnalyze_ParseErrorSurfacesVerbatim(t *testing.T) {
	_, err := analyzer.New().Analyze(`{% if x %}unclosed`)
	require.Error(t, err)
	var parseErr *analyzer.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestAnalyze_WithStrictRecordsNoteOnUncanonicalizableIterable(t *testing.T) {
	result, err := analyzer.New(analyzer.WithStrict(true)).Analyze(`{% for x in (a + b) %}{{ x }}{% endfor %}`)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Notes)
}

func TestAnalyze_SubscriptByVariableReadsIndex(t *testing.T) {
	result, err := analyzer.New().Analyze(`{{ a[b] }}`)
	require.NoError(t, err)
	assert.Equal(t, []shape.Identifier{"a", "b"}, result.ExternalVars)
	assert.Equal(t, map[string]interface{}{"a": "", "b": ""}, result.Skeleton)
}

func TestAnalyze_SubscriptByVariableInForIterableReadsIndex(t *testing.T) {
	result, err := analyzer.New().Analyze(`{% for x in a[b] %}{{ x }}{% endfor %}`)
	require.NoError(t, err)
	assert.Equal(t, []shape.Identifier{"a", "b"}, result.ExternalVars)
}

func TestAnalyze_ObjectAttrsPathsStartWithRoot(t *testing.T) {
	result, err := analyzer.New().Analyze(`{{ user.address.city }}{{ a['k'] }}`)
	require.NoError(t, err)
	assert.Equal(t, []string{"user.address.city"}, result.ObjectAttrs["user"])
	assert.Equal(t, []string{"a.k"}, result.ObjectAttrs["a"])
}
