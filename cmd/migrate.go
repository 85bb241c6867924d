package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot"
	"github.com/disgoorg/gather-bot/gatherbot/config"
	"github.com/disgoorg/gather-bot/gatherbot/database"
	"github.com/disgoorg/gather-bot/gatherbot/database/repositories"
	"github.com/disgoorg/gather-bot/gatherbot/store"
	"github.com/spf13/cobra"
)

var (
	migrateFrom    string
	migrateTo      string
	migrateWorkers int
	migrateReset   bool
)

var migrateCMD = &cobra.Command{
	Use:   "migrate",
	Short: "copy every account from one store backend to another",
	Example: "  gather-admin migrate --from file --to postgres\n" +
		"  gather-admin migrate --from mongo --to redis --workers 8",
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateFrom == migrateTo {
			return fmt.Errorf("source and destination are both %q", migrateFrom)
		}

		cfg, err := gatherbot.LoadConfig(configPath)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		start := time.Now()

		src, err := gatherbot.OpenBackend(ctx, migrateFrom, *cfg)
		if err != nil {
			return fmt.Errorf("failed to open source %s: %w", migrateFrom, err)
		}
		defer closeBackend(src, migrateFrom)

		dst, repo, err := openDestination(ctx, migrateTo, *cfg)
		if err != nil {
			return fmt.Errorf("failed to open destination %s: %w", migrateTo, err)
		}
		defer closeBackend(dst, migrateTo)

		if migrateReset {
			if repo == nil {
				return fmt.Errorf("--reset is only supported for the %s backend", config.BackendPostgres)
			}
			deleted, err := repo.DeleteAll(ctx)
			if err != nil {
				return err
			}
			slog.Warn("Cleared destination accounts",
				slog.String("type", "db"),
				slog.Int64("deleted", deleted))
		}

		copied, err := store.CopyAll(ctx, src, dst, migrateWorkers, config.MigrateBatchSize)
		if err != nil {
			return fmt.Errorf("migration stopped after %d accounts: %w", copied, err)
		}

		attrs := []any{
			slog.String("type", "db"),
			slog.String("from", migrateFrom),
			slog.String("to", migrateTo),
			slog.Int("copied", copied),
			slog.Duration("took", time.Since(start)),
		}
		if repo != nil {
			total, err := repo.Count(ctx)
			if err != nil {
				return err
			}
			attrs = append(attrs, slog.Int("destination_total", total))
		}
		slog.Info("Migration completed successfully", attrs...)
		return nil
	},
}

func init() {
	migrateCMD.Flags().StringVar(&migrateFrom, "from", config.BackendFile, "source backend (file, postgres, mongo, redis)")
	migrateCMD.Flags().StringVar(&migrateTo, "to", config.BackendPostgres, "destination backend (file, postgres, mongo, redis)")
	migrateCMD.Flags().IntVar(&migrateWorkers, "workers", config.MigrateWorkers, "concurrent writers")
	migrateCMD.Flags().BoolVar(&migrateReset, "reset", false, "delete every destination account first (postgres only)")
	rootCmd.AddCommand(migrateCMD)
}

// openDestination opens the target backend. For postgres it also returns the
// account repository so the command can reset and count rows.
func openDestination(ctx context.Context, name string, cfg gatherbot.Config) (store.Backend, repositories.AccountRepository, error) {
	if name != config.BackendPostgres {
		backend, err := gatherbot.OpenBackend(ctx, name, cfg)
		return backend, nil, err
	}

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	if err = db.InitializeSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return store.NewPostgresBackend(db), repositories.NewAccountRepository(db.BunDB()), nil
}

func closeBackend(b store.Backend, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), config.PersistTimeout)
	defer cancel()
	if err := b.Close(ctx); err != nil {
		slog.Error("Failed to close backend",
			slog.String("type", "db"),
			slog.String("backend", name),
			slog.Any("error", err))
	}
}
