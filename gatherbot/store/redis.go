package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/config"
	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Addr     string `toml:"addr" env:"ADDR"`
	Password string `toml:"password" env:"PASSWORD"`
	DB       int    `toml:"db" env:"DB"`
	Hash     string `toml:"hash" env:"HASH"`
}

// RedisBackend keeps every account as one field of a single hash.
type RedisBackend struct {
	client *redis.Client
	hash   string
}

func NewRedisBackend(ctx context.Context, cfg RedisConfig) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return newRedisBackend(client, cfg.Hash), nil
}

func newRedisBackend(client *redis.Client, hash string) *RedisBackend {
	if hash == "" {
		hash = config.DefaultRedisHash
	}
	return &RedisBackend{client: client, hash: hash}
}

func (r *RedisBackend) LoadAll(ctx context.Context) (map[account.Key]*account.Account, error) {
	fields, err := r.client.HGetAll(ctx, r.hash).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read hash %s: %w", r.hash, err)
	}

	out := make(map[account.Key]*account.Account, len(fields))
	for raw, data := range fields {
		key, a, err := decode(raw, []byte(data))
		if err != nil {
			slog.Warn("Skipping unreadable account",
				slog.String("type", "db"),
				slog.String("key", raw),
				slog.Any("error", err))
			continue
		}
		out[key] = a
	}
	return out, nil
}

func (r *RedisBackend) Save(ctx context.Context, key account.Key, acct *account.Account) error {
	data, err := encode(acct)
	if err != nil {
		return err
	}
	if err := r.client.HSet(ctx, r.hash, key.String(), data).Err(); err != nil {
		return fmt.Errorf("failed to write account %s: %w", key, err)
	}
	return nil
}

func (r *RedisBackend) Close(_ context.Context) error {
	return r.client.Close()
}
