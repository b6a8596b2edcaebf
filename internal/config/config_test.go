package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "/bin/bash", cfg.Shell.Path)
	assert.Equal(t, 5*time.Second, cfg.Shell.Timeout)
	assert.Equal(t, 160, cfg.Term.Width)
	assert.Equal(t, 500, cfg.Term.Height)
	assert.Equal(t, 2048, cfg.Tokens.Budget)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("COMMAND_TIMEOUT", "500ms")
	t.Setenv("TERM_WIDTH", "80")
	t.Setenv("TOKEN_BUDGET", "1024")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.Shell.Timeout)
	assert.Equal(t, 80, cfg.Term.Width)
	assert.Equal(t, 1024, cfg.Tokens.Budget)
}

func TestLoad_DefaultsWhenUnset(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/bin/bash", cfg.Shell.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "", cfg.Metrics.Addr)
}
