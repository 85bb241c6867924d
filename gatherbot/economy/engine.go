// Package economy runs the player-facing actions: gathering, the fixed-table
// activities, pets, the shop and prestige. Every action for one account runs
// under that account's lock; different accounts never wait on each other.
package economy

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
	"github.com/disgoorg/gather-bot/gatherbot/economy/rewards"
	"github.com/disgoorg/gather-bot/gatherbot/leveling"
	"github.com/disgoorg/gather-bot/gatherbot/store"
)

type Engine struct {
	catalog *catalog.Catalog
	store   *store.Store
	roller  *rewards.Roller
	skills  *leveling.SkillStrategy
	pets    *leveling.PetStrategy
	locks   *accountLocks
	now     func() time.Time
}

type Option func(*Engine)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithSource replaces the randomness behind every roll.
func WithSource(src rewards.Source) Option {
	return func(e *Engine) {
		e.roller = rewards.NewRoller(e.catalog, src)
	}
}

func WithLeveling(cfg *leveling.Config) Option {
	return func(e *Engine) {
		e.skills = leveling.NewSkillStrategy(cfg)
		e.pets = leveling.NewPetStrategy(cfg)
	}
}

func New(cat *catalog.Catalog, st *store.Store, opts ...Option) *Engine {
	cfg := leveling.NewDefaultConfig()
	e := &Engine{
		catalog: cat,
		store:   st,
		roller:  rewards.NewRoller(cat, nil),
		skills:  leveling.NewSkillStrategy(cfg),
		pets:    leveling.NewPetStrategy(cfg),
		locks:   newAccountLocks(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// withAccount runs fn under the account's lock. fn reports whether it mutated
// the account; mutations are persisted before withAccount returns, and a
// failed write is returned as the error.
func (e *Engine) withAccount(ctx context.Context, key account.Key, op string, fn func(a *account.Account, now time.Time) bool) error {
	unlock := e.locks.lock(key)
	defer unlock()

	now := e.now()
	a, created := e.store.GetOrCreate(key, now)
	if created {
		slog.Debug("Account created",
			slog.String("type", "eco"),
			slog.String("account", key.String()))
	}

	if !fn(a, now) {
		return nil
	}
	a.UpdatedAt = now

	if err := e.store.Persist(ctx, key); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	slog.Debug("Account updated",
		slog.String("type", "eco"),
		slog.String("operation", op),
		slog.String("account", key.String()),
		slog.Int64("coins", a.Coins))
	return nil
}

// grantSkillXP credits xp to a skill and reports the level change.
func (e *Engine) grantSkillXP(a *account.Account, d catalog.Domain, xp int64) leveling.SkillResult {
	return e.skills.AddXP(a.Skill(d), xp)
}
