package gatherbot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
	"github.com/disgoorg/gather-bot/gatherbot/config"
	"github.com/disgoorg/gather-bot/gatherbot/database"
	"github.com/disgoorg/gather-bot/gatherbot/economy"
	"github.com/disgoorg/gather-bot/gatherbot/store"
	"github.com/disgoorg/paginator"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:       cfg,
		Paginator: paginator.New(),
		Catalog:   catalog.Default(),
		Version:   version,
		Commit:    commit,
	}
}

type Bot struct {
	Cfg       Config
	Client    bot.Client
	Paginator *paginator.Manager
	Version   string
	Commit    string
	Catalog   *catalog.Catalog
	Store     *store.Store
	Engine    *economy.Engine
}

// OpenStore loads every account from the configured backend and builds the
// engine on top of it.
func (b *Bot) OpenStore(ctx context.Context) error {
	backend, err := OpenBackend(ctx, b.Cfg.Store.Backend, b.Cfg)
	if err != nil {
		return err
	}

	st, err := store.Open(ctx, backend, b.Catalog)
	if err != nil {
		_ = backend.Close(ctx)
		return err
	}

	b.Store = st
	b.Engine = economy.New(b.Catalog, st)
	return nil
}

// OpenBackend connects the named durable backend using the matching section
// of cfg.
func OpenBackend(ctx context.Context, name string, cfg Config) (store.Backend, error) {
	switch name {
	case config.BackendFile:
		return store.NewFileBackend(cfg.Store.Path), nil
	case config.BackendMemory:
		return store.NewMemoryBackend(), nil
	case config.BackendPostgres:
		db, err := database.New(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		if err = db.InitializeSchema(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
		return store.NewPostgresBackend(db), nil
	case config.BackendMongo:
		return store.NewMongoBackend(ctx, cfg.Mongo)
	case config.BackendRedis:
		return store.NewRedisBackend(ctx, cfg.Redis)
	default:
		return nil, fmt.Errorf("unknown store backend %q", name)
	}
}

func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds)),
		bot.WithEventListeners(b.Paginator),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

func (b *Bot) OnReady(_ *events.Ready) {
	slog.Info("GatherBot is now ready",
		slog.String("type", "sys"),
		slog.String("version", b.Version),
		slog.String("commit", b.Commit),
		slog.Int("accounts", b.Store.Len()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithPlayingActivity("/fish"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.String("type", "sys"), slog.Any("error", err))
	}
}

// Close disconnects from the gateway and releases the store backend.
func (b *Bot) Close(ctx context.Context) {
	if b.Client != nil {
		b.Client.Close(ctx)
	}
	if b.Store != nil {
		if err := b.Store.Close(ctx); err != nil {
			slog.Error("Failed to close account store", slog.String("type", "db"), slog.Any("error", err))
		}
	}
}
