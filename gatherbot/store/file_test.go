package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBackend_MissingFileIsEmpty(t *testing.T) {
	backend := NewFileBackend(filepath.Join(t.TempDir(), "accounts.json"))
	loaded, err := backend.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFileBackend_RoundTripsWholeMapping(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "accounts.json")
	backend := NewFileBackend(path)
	_, err := backend.LoadAll(ctx)
	require.NoError(t, err)

	a := account.New(catalog.Default(), testNow)
	a.Coins = 500
	a.Prestige = 2
	petID := int64(1)
	a.Pets = []*account.Pet{{ID: 1, Type: "turtle", Hunger: 80, Level: 1, Boost: catalog.Boost{Type: catalog.BoostCoins, Value: 1.05}}}
	a.EquippedPetID = &petID
	a.LastAction[account.ActivityFish] = testNow

	b := account.New(catalog.Default(), testNow)
	b.Coins = 9

	require.NoError(t, backend.Save(ctx, keyA, a))
	require.NoError(t, backend.Save(ctx, keyB, b))

	loaded, err := NewFileBackend(path).LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	got := loaded[keyA]
	assert.Equal(t, int64(500), got.Coins)
	assert.Equal(t, 2, got.Prestige)
	require.NotNil(t, got.EquippedPet())
	assert.Equal(t, "turtle", got.EquippedPet().Type)
	assert.True(t, got.LastAction[account.ActivityFish].Equal(testNow))
	assert.Equal(t, int64(9), loaded[keyB].Coins)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files left behind")
}

func TestFileBackend_KeepsUnreadableEntries(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "accounts.json")
	seed := map[string]json.RawMessage{
		"not-a-key": json.RawMessage(`{"coins": 5}`),
	}
	data, err := json.Marshal(seed)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	backend := NewFileBackend(path)
	loaded, err := backend.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	require.NoError(t, backend.Save(ctx, keyA, account.New(catalog.Default(), testNow)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Contains(t, onDisk, "not-a-key")
	assert.Contains(t, onDisk, keyA.String())
}

func TestFileBackend_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))

	_, err := NewFileBackend(path).LoadAll(context.Background())
	assert.Error(t, err)
}
