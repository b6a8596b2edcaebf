// Package id provides prefixed ULID generation for sessions and commands.
//
// ULIDs are lexicographically sortable, so session and command identifiers
// order by creation time in logs without extra timestamps.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// SessionID identifies a shell session.
type SessionID string

// CommandID identifies a single submitted command within a session.
type CommandID string

const (
	sessionPrefix = "sess"
	commandPrefix = "cmd"
)

// Generator generates ULIDs with prefixes.
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator backed by crypto/rand.
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator(rand.Reader)
	})
	return defaultGenerator
}

// NewGenerator creates a generator with the given entropy source. Tests
// can pass a deterministic reader.
func NewGenerator(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a new prefixed ULID string.
func (g *Generator) Generate(prefix string) string {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	u := ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
	return fmt.Sprintf("%s_%s", prefix, u.String())
}

// NewSessionID generates a new session identifier.
func NewSessionID() SessionID {
	return SessionID(Default().Generate(sessionPrefix))
}

// NewCommandID generates a new command identifier.
func NewCommandID() CommandID {
	return CommandID(Default().Generate(commandPrefix))
}

func (id SessionID) String() string { return string(id) }
func (id CommandID) String() string { return string(id) }
