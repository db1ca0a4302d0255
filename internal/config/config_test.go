package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Len(t, cfg.Players, 4)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 10000, cfg.MaxTurns)
	assert.Equal(t, "data/boardwalk.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.APIPort)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boardwalk.yaml")
	yaml := `players:
  - Alice
  - Bob
seed: 7
max_turns: 500
api_port: 8080
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, cfg.Players)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 500, cfg.MaxTurns)
	assert.Equal(t, 8080, cfg.APIPort)
	assert.Equal(t, "data/boardwalk.db", cfg.DBPath, "unset keys keep defaults")
}

func TestLoadRejectsTooFewPlayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boardwalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("players: [Solo]\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "at least 2 players")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
