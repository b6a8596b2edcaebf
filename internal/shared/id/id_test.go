package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSessionID_Prefix(t *testing.T) {
	sid := NewSessionID()
	assert.True(t, strings.HasPrefix(sid.String(), "sess_"))
}

func TestNewCommandID_Prefix(t *testing.T) {
	cid := NewCommandID()
	assert.True(t, strings.HasPrefix(cid.String(), "cmd_"))
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[SessionID]bool)
	for i := 0; i < 100; i++ {
		sid := NewSessionID()
		assert.False(t, seen[sid], "duplicate id %s", sid)
		seen[sid] = true
	}
}
