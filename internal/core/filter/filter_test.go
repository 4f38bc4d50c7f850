package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilters_Excludes(t *testing.T) {
	f := Default()

	assert.True(t, f.Excludes("ReactDevOverlay"))
	assert.True(t, f.Excludes("RemixBrowser"))
	assert.False(t, f.Excludes("App"))
	assert.False(t, f.Excludes(""))

	// Router shapes stay visible so their path props can be extracted.
	assert.False(t, f.Excludes("Router"))
	assert.False(t, f.Excludes("RenderedRoute"))
}

func TestFilters_None(t *testing.T) {
	f := None()
	for _, n := range DefaultNextJS {
		assert.False(t, f.Excludes(n), n)
	}
}

func TestSet(t *testing.T) {
	s := NewSet("b", "", "a", "b")
	assert.Equal(t, []string{"a", "b"}, s.Names())
	assert.True(t, s.Has("a"))

	var empty Set
	assert.False(t, empty.Has("a"))
	assert.Empty(t, empty.Names())
}
