package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoConfig struct {
	URI        string `toml:"uri" env:"URI"`
	Database   string `toml:"database" env:"DATABASE"`
	Collection string `toml:"collection" env:"COLLECTION"`
}

type mongoAccount struct {
	Key       string    `bson:"_id"`
	GuildID   string    `bson:"guild_id"`
	UserID    string    `bson:"user_id"`
	Data      string    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoBackend stores one document per account, keyed by the account key.
type MongoBackend struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoBackend(ctx context.Context, cfg MongoConfig) (*MongoBackend, error) {
	if cfg.Database == "" {
		cfg.Database = config.DefaultMongoDatabase
	}
	if cfg.Collection == "" {
		cfg.Collection = config.DefaultMongoAccounts
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &MongoBackend{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

func (m *MongoBackend) LoadAll(ctx context.Context) (map[account.Key]*account.Account, error) {
	cur, err := m.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	var docs []mongoAccount
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}

	out := make(map[account.Key]*account.Account, len(docs))
	for _, doc := range docs {
		key, a, err := decode(doc.Key, []byte(doc.Data))
		if err != nil {
			slog.Warn("Skipping unreadable account",
				slog.String("type", "db"),
				slog.String("key", doc.Key),
				slog.Any("error", err))
			continue
		}
		out[key] = a
	}
	return out, nil
}

func (m *MongoBackend) Save(ctx context.Context, key account.Key, acct *account.Account) error {
	data, err := encode(acct)
	if err != nil {
		return err
	}
	doc := mongoAccount{
		Key:       key.String(),
		GuildID:   key.GuildID.String(),
		UserID:    key.UserID.String(),
		Data:      string(data),
		UpdatedAt: acct.UpdatedAt,
	}
	_, err = m.coll.ReplaceOne(ctx, bson.M{"_id": doc.Key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert account %s: %w", doc.Key, err)
	}
	return nil
}

func (m *MongoBackend) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
