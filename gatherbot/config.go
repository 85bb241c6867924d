package gatherbot

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/disgoorg/gather-bot/gatherbot/config"
	"github.com/disgoorg/gather-bot/gatherbot/database"
	"github.com/disgoorg/gather-bot/gatherbot/store"
	"github.com/disgoorg/snowflake/v2"
	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is prepended to every environment override, e.g. GATHER_BOT_TOKEN.
const EnvPrefix = "GATHER_"

// LoadConfig reads the TOML file at path and then applies environment
// overrides. A missing file is not an error so the bot can run from the
// environment alone.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	file, err := os.Open(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Warn("Config file not found, using environment only",
			slog.String("type", "sys"),
			slog.String("path", path))
	case err != nil:
		return nil, fmt.Errorf("failed to open config: %w", err)
	default:
		defer file.Close()
		if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	}

	if err = env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

type Config struct {
	Log   LogConfig         `toml:"log" envPrefix:"LOG_"`
	Bot   BotConfig         `toml:"bot" envPrefix:"BOT_"`
	Store StoreConfig       `toml:"store" envPrefix:"STORE_"`
	DB    database.DBConfig `toml:"db" envPrefix:"DB_"`
	Mongo store.MongoConfig `toml:"mongo" envPrefix:"MONGO_"`
	Redis store.RedisConfig `toml:"redis" envPrefix:"REDIS_"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token" env:"TOKEN"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level" env:"LEVEL"`
	Format    string     `toml:"format" env:"FORMAT"`
	AddSource bool       `toml:"add_source" env:"ADD_SOURCE"`
}

// StoreConfig selects the durable backend behind the account store.
type StoreConfig struct {
	Backend string `toml:"backend" env:"BACKEND"`
	Path    string `toml:"path" env:"PATH"`
}

func (c *Config) applyDefaults() {
	if c.Store.Backend == "" {
		c.Store.Backend = config.BackendFile
	}
	if c.Store.Path == "" {
		c.Store.Path = config.DefaultStorePath
	}
	if c.DB.PoolSize == 0 {
		c.DB.PoolSize = 10
	}
}
