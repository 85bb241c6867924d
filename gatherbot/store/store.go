// Package store keeps every account in memory and writes each mutation
// through to a durable Backend.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
)

// Backend is the durable side of the store. LoadAll runs once at startup;
// Save is called after every mutation of a single account.
type Backend interface {
	LoadAll(ctx context.Context) (map[account.Key]*account.Account, error)
	Save(ctx context.Context, key account.Key, acct *account.Account) error
	Close(ctx context.Context) error
}

// Store is the in-memory authority for account state. It does not serialize
// operations on a single account; callers hold a per-account lock around
// GetOrCreate, mutation and Persist.
type Store struct {
	backend Backend
	catalog *catalog.Catalog

	mu       sync.RWMutex
	accounts map[account.Key]*account.Account
}

func Open(ctx context.Context, backend Backend, cat *catalog.Catalog) (*Store, error) {
	start := time.Now()
	accounts, err := backend.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	if accounts == nil {
		accounts = make(map[account.Key]*account.Account)
	}
	for _, a := range accounts {
		a.Normalize(cat)
	}

	slog.Info("Account store loaded",
		slog.String("type", "db"),
		slog.Int("accounts", len(accounts)),
		slog.Duration("took", time.Since(start)))

	return &Store{
		backend:  backend,
		catalog:  cat,
		accounts: accounts,
	}, nil
}

// GetOrCreate returns the account for key, creating it in its default state
// when absent. Creation alone is not persisted.
func (s *Store) GetOrCreate(key account.Key, now time.Time) (*account.Account, bool) {
	s.mu.RLock()
	a, ok := s.accounts[key]
	s.mu.RUnlock()
	if ok {
		return a, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok = s.accounts[key]; ok {
		return a, false
	}
	a = account.New(s.catalog, now)
	s.accounts[key] = a
	return a, true
}

func (s *Store) Get(key account.Key) (*account.Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[key]
	return a, ok
}

// Persist writes the account's current state through to the backend. A
// failure leaves the in-memory state as is.
func (s *Store) Persist(ctx context.Context, key account.Key) error {
	a, ok := s.Get(key)
	if !ok {
		return fmt.Errorf("account %s is not loaded", key)
	}
	if err := s.backend.Save(ctx, key, a); err != nil {
		slog.Error("Failed to persist account",
			slog.String("type", "db"),
			slog.String("account", key.String()),
			slog.Any("error", err))
		return fmt.Errorf("failed to persist account %s: %w", key, err)
	}
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

func (s *Store) Close(ctx context.Context) error {
	return s.backend.Close(ctx)
}
