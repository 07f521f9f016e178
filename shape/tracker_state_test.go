package shape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/tshape/shape"
)

func TestTrackerState_ClassifiedAndKindOf(t *testing.T) {
	s := shape.NewTrackerState()
	s.ExternalVars["user"] = true
	s.InternalVars["total"] = true
	s.Aliases["lm"] = "messages"
	s.LoopVars["item"] = shape.Path{"items"}

	assert.True(t, s.Classified("user"))
	assert.True(t, s.Classified("total"))
	assert.True(t, s.Classified("lm"))
	assert.True(t, s.Classified("item"))
	assert.False(t, s.Classified("unknown"))

	assert.Equal(t, shape.External, s.KindOf("user"))
	assert.Equal(t, shape.Internal, s.KindOf("total"))
	assert.Equal(t, shape.Alias, s.KindOf("lm"))
	assert.Equal(t, shape.LoopVar, s.KindOf("item"))
	assert.Equal(t, shape.Kind(""), s.KindOf("unknown"))
}

func TestTrackerState_RecordAttrIgnoresBarePaths(t *testing.T) {
	s := shape.NewTrackerState()
	s.RecordAttr(shape.Path{"user"})
	assert.Empty(t, s.ObjectAttrs)

	s.RecordAttr(shape.Path{"user", "address", "city"})
	s.RecordAttr(shape.Path{"user", "address", "city"}) // duplicate, de-duplicated by dotted string
	assert.Len(t, s.ObjectAttrs["user"], 1)
	assert.Equal(t, shape.Path{"user", "address", "city"}, s.ObjectAttrs["user"]["user.address.city"])
}

func TestSortedIdentifiers(t *testing.T) {
	set := map[shape.Identifier]bool{"zeta": true, "alpha": true, "mid": true}
	assert.Equal(t, []shape.Identifier{"alpha", "mid", "zeta"}, shape.SortedIdentifiers(set))
}

func TestPath_RootSuffixString(t *testing.T) {
	p := shape.Path{"user", "address", "city"}
	assert.Equal(t, shape.Identifier("user"), p.Root())
	assert.Equal(t, []string{"address", "city"}, p.Suffix())
	assert.Equal(t, "user.address.city", p.String())

	bare := shape.Path{"user"}
	assert.Nil(t, bare.Suffix())
}
