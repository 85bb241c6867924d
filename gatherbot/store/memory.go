package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/disgoorg/gather-bot/gatherbot/account"
)

// MemoryBackend keeps encoded accounts in process memory. Nothing survives a
// restart.
type MemoryBackend struct {
	mu   sync.Mutex
	docs map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[string][]byte)}
}

func (m *MemoryBackend) LoadAll(_ context.Context) (map[account.Key]*account.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[account.Key]*account.Account, len(m.docs))
	for raw, data := range m.docs {
		key, a, err := decode(raw, data)
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

func (m *MemoryBackend) Save(_ context.Context, key account.Key, acct *account.Account) error {
	data, err := encode(acct)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.docs[key.String()] = data
	m.mu.Unlock()
	return nil
}

func (m *MemoryBackend) Close(_ context.Context) error {
	return nil
}
