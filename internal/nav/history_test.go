package nav

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestMemoryHistory_StartsAtRoot(t *testing.T) {
	h := NewMemoryHistory(nil)
	assert.Equal(t, "/", h.Current().String())
	assert.Equal(t, 1, h.Len())
}

func TestMemoryHistory_PushAndBack(t *testing.T) {
	h := NewMemoryHistory(mustURL(t, "/"))
	h.Push(mustURL(t, "/?videoId=1"))
	h.Push(mustURL(t, "/?videoId=2"))

	assert.Equal(t, "/?videoId=2", h.Current().String())
	assert.Equal(t, 3, h.Len())

	require.True(t, h.Back())
	assert.Equal(t, "/?videoId=1", h.Current().String())

	require.True(t, h.Back())
	assert.Equal(t, "/", h.Current().String())
	assert.False(t, h.Back())
}

func TestMemoryHistory_ForwardAfterBack(t *testing.T) {
	h := NewMemoryHistory(mustURL(t, "/"))
	h.Push(mustURL(t, "/?videoId=1"))

	require.True(t, h.Back())
	require.True(t, h.Forward())
	assert.Equal(t, "/?videoId=1", h.Current().String())
	assert.False(t, h.Forward())
}

func TestMemoryHistory_PushDiscardsForwardEntries(t *testing.T) {
	h := NewMemoryHistory(mustURL(t, "/"))
	h.Push(mustURL(t, "/?videoId=1"))
	h.Push(mustURL(t, "/?videoId=2"))

	require.True(t, h.Back())
	h.Push(mustURL(t, "/?videoId=3"))

	assert.Equal(t, "/?videoId=3", h.Current().String())
	assert.Equal(t, 3, h.Len())
	assert.False(t, h.Forward())
}

func TestMemoryHistory_ReplaceKeepsStackSize(t *testing.T) {
	h := NewMemoryHistory(mustURL(t, "/"))
	h.Replace(mustURL(t, "/?videoId=9"))

	assert.Equal(t, "/?videoId=9", h.Current().String())
	assert.Equal(t, 1, h.Len())
}

func TestMemoryHistory_CurrentReturnsCopy(t *testing.T) {
	h := NewMemoryHistory(mustURL(t, "/"))
	u := h.Current()
	u.RawQuery = "videoId=mutated"

	assert.Equal(t, "/", h.Current().String())
}
