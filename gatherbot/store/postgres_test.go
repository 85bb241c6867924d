package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
	"github.com/disgoorg/gather-bot/gatherbot/database/models"
	"github.com/disgoorg/gather-bot/gatherbot/database/repositories/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPostgresBackend_SkipsUnchangedWrites(t *testing.T) {
	ctx := context.Background()
	repo := mock.NewMockAccountRepository(gomock.NewController(t))
	backend := newPostgresBackend(repo, nil)

	a := account.New(catalog.Default(), testNow)
	a.Coins = 10

	repo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, row *models.Account) error {
			assert.Equal(t, keyA.String(), row.Key)
			assert.Equal(t, "100", row.GuildID)
			assert.Equal(t, "1", row.UserID)
			return nil
		}).
		Times(2)

	require.NoError(t, backend.Save(ctx, keyA, a))
	require.NoError(t, backend.Save(ctx, keyA, a))

	a.Coins = 11
	require.NoError(t, backend.Save(ctx, keyA, a))
}

func TestPostgresBackend_FailedWriteIsRetried(t *testing.T) {
	ctx := context.Background()
	repo := mock.NewMockAccountRepository(gomock.NewController(t))
	backend := newPostgresBackend(repo, nil)
	a := account.New(catalog.Default(), testNow)

	gomock.InOrder(
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("conn reset")),
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil),
	)

	require.NoError(t, backend.Save(ctx, keyA, a))
	a.Coins = 5
	require.Error(t, backend.Save(ctx, keyA, a))
	require.NoError(t, backend.Save(ctx, keyA, a))
}

func TestPostgresBackend_LoadAllPrimesCache(t *testing.T) {
	ctx := context.Background()
	repo := mock.NewMockAccountRepository(gomock.NewController(t))
	backend := newPostgresBackend(repo, nil)

	a := account.New(catalog.Default(), testNow)
	a.Coins = 300
	data, err := json.Marshal(a)
	require.NoError(t, err)

	repo.EXPECT().GetAll(gomock.Any()).Return([]*models.Account{
		{Key: keyA.String(), Data: data},
		{Key: "garbage", Data: json.RawMessage(`{}`)},
	}, nil)

	loaded, err := backend.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, int64(300), loaded[keyA].Coins)

	// identical payload, no Upsert expected
	require.NoError(t, backend.Save(ctx, keyA, loaded[keyA]))
}
