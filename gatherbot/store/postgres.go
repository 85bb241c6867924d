package store

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/config"
	"github.com/disgoorg/gather-bot/gatherbot/database"
	"github.com/disgoorg/gather-bot/gatherbot/database/models"
	"github.com/disgoorg/gather-bot/gatherbot/database/repositories"
	lru "github.com/hashicorp/golang-lru"
)

// PostgresBackend upserts one accounts row per Save. An LRU of the last
// written payloads lets it skip writes that would not change the row.
type PostgresBackend struct {
	repo  repositories.AccountRepository
	cache *lru.Cache
	close func()
}

func NewPostgresBackend(db *database.DB) *PostgresBackend {
	return newPostgresBackend(repositories.NewAccountRepository(db.BunDB()), db.Close)
}

func newPostgresBackend(repo repositories.AccountRepository, closeFn func()) *PostgresBackend {
	cache, _ := lru.New(config.AccountCacheSize)
	return &PostgresBackend{repo: repo, cache: cache, close: closeFn}
}

func (p *PostgresBackend) LoadAll(ctx context.Context) (map[account.Key]*account.Account, error) {
	rows, err := p.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[account.Key]*account.Account, len(rows))
	for _, row := range rows {
		key, a, err := decode(row.Key, row.Data)
		if err != nil {
			slog.Warn("Skipping unreadable account",
				slog.String("type", "db"),
				slog.String("key", row.Key),
				slog.Any("error", err))
			continue
		}
		out[key] = a
		p.cache.Add(row.Key, []byte(row.Data))
	}
	return out, nil
}

func (p *PostgresBackend) Save(ctx context.Context, key account.Key, acct *account.Account) error {
	data, err := encode(acct)
	if err != nil {
		return err
	}

	k := key.String()
	if cached, ok := p.cache.Get(k); ok && bytes.Equal(cached.([]byte), data) {
		return nil
	}

	row := &models.Account{
		Key:       k,
		GuildID:   key.GuildID.String(),
		UserID:    key.UserID.String(),
		Data:      data,
		CreatedAt: acct.CreatedAt,
	}
	if err := p.repo.Upsert(ctx, row); err != nil {
		p.cache.Remove(k)
		return err
	}
	p.cache.Add(k, data)
	return nil
}

func (p *PostgresBackend) Close(_ context.Context) error {
	p.cache.Purge()
	if p.close != nil {
		p.close()
	}
	return nil
}
