package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitMarker_Found(t *testing.T) {
	marker := []byte(PromptMarker)
	buf := append([]byte("output\n"), append(marker, []byte("rest")...)...)

	before, rest, found := splitMarker(buf, marker)

	assert.True(t, found)
	assert.Equal(t, []byte("output\n"), before)
	assert.Equal(t, []byte("rest"), rest)
}

func TestSplitMarker_NotFound(t *testing.T) {
	_, _, found := splitMarker([]byte("still running"), []byte(PromptMarker))
	assert.False(t, found)
}

func TestSplitMarker_MarkerAtStart(t *testing.T) {
	before, rest, found := splitMarker([]byte(PromptMarker), []byte(PromptMarker))

	assert.True(t, found)
	assert.Empty(t, before)
	assert.Empty(t, rest)
}
