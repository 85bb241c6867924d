package repositories

import (
	"context"
	"log/slog"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/config"
	"github.com/disgoorg/gather-bot/gatherbot/database/models"
	"github.com/uptrace/bun"
)

type AccountRepository interface {
	Upsert(ctx context.Context, account *models.Account) error
	GetByKey(ctx context.Context, key string) (*models.Account, error)
	GetAll(ctx context.Context) ([]*models.Account, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type accountRepository struct {
	*BaseRepository
}

func NewAccountRepository(db *bun.DB) AccountRepository {
	return &accountRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *accountRepository) Upsert(ctx context.Context, account *models.Account) error {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	now := time.Now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	_, err := r.db.NewInsert().
		Model(account).
		On("CONFLICT (key) DO UPDATE").
		Set("data = EXCLUDED.data").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to upsert account",
			slog.String("type", "db"),
			slog.String("operation", "Upsert"),
			slog.String("key", account.Key),
			slog.Any("error", err))
		return r.HandleErrorWithID("upsert", "account", account.Key, err)
	}
	return nil
}

func (r *accountRepository) GetByKey(ctx context.Context, key string) (*models.Account, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	account := new(models.Account)
	err := r.db.NewSelect().
		Model(account).
		Where("key = ?", key).
		Scan(ctx)
	if err != nil {
		return nil, r.HandleErrorWithID("get", "account", key, err)
	}
	return account, nil
}

func (r *accountRepository) GetAll(ctx context.Context) ([]*models.Account, error) {
	ctx, cancel := r.WithCustomTimeout(ctx, config.BatchQueryTimeout)
	defer cancel()

	var accounts []*models.Account
	err := r.db.NewSelect().
		Model(&accounts).
		Order("key ASC").
		Scan(ctx)
	if err != nil {
		return nil, r.HandleError("get_all", "account", err)
	}

	slog.Debug("Loaded accounts",
		slog.String("type", "db"),
		slog.String("operation", "GetAll"),
		slog.Int("count", len(accounts)))
	return accounts, nil
}

func (r *accountRepository) Count(ctx context.Context) (int, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	count, err := r.db.NewSelect().Model((*models.Account)(nil)).Count(ctx)
	return count, r.HandleError("count", "account", err)
}

func (r *accountRepository) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	res, err := r.db.NewDelete().
		Model((*models.Account)(nil)).
		Where("TRUE").
		Exec(ctx)
	if err != nil {
		return 0, r.HandleError("delete_all", "account", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
