package gatherbot

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/disgoorg/gather-bot/gatherbot/config"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[log]
level = "debug"

[bot]
token = "file-token"
dev_guilds = [123456789012345678]

[store]
backend = "redis"

[redis]
addr = "localhost:6379"
hash = "economy"
`

func TestLoadConfig_FileThenEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	t.Setenv("GATHER_BOT_TOKEN", "env-token")
	t.Setenv("GATHER_REDIS_DB", "3")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
	assert.Equal(t, "env-token", cfg.Bot.Token)
	assert.Equal(t, []snowflake.ID{123456789012345678}, cfg.Bot.DevGuilds)
	assert.Equal(t, config.BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "economy", cfg.Redis.Hash)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, config.DefaultStorePath, cfg.Store.Path)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GATHER_STORE_PATH", "/tmp/accounts.json")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, config.BackendFile, cfg.Store.Backend)
	assert.Equal(t, "/tmp/accounts.json", cfg.Store.Path)
	assert.Equal(t, 10, cfg.DB.PoolSize)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[bot\ntoken ="), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
