package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// CopyAll loads every account from src and saves it into dst using up to
// workers concurrent writers. It stops at the first failed save and reports
// how many accounts were written before that.
func CopyAll(ctx context.Context, src, dst Backend, workers, logEvery int) (int, error) {
	accounts, err := src.LoadAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load source accounts: %w", err)
	}

	slog.Info("Copying accounts",
		slog.String("type", "db"),
		slog.Int("accounts", len(accounts)),
		slog.Int("workers", workers))

	var copied atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for key, acct := range accounts {
		key, acct := key, acct
		g.Go(func() error {
			if err := dst.Save(gctx, key, acct); err != nil {
				return fmt.Errorf("failed to copy account %s: %w", key, err)
			}
			if n := copied.Add(1); logEvery > 0 && n%int64(logEvery) == 0 {
				slog.Info("Copy progress",
					slog.String("type", "db"),
					slog.Int64("copied", n),
					slog.Int("total", len(accounts)))
			}
			return nil
		})
	}

	err = g.Wait()
	return int(copied.Load()), err
}
