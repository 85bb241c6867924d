// Package effects applies consumable multipliers to accounts.
package effects

import (
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
)

// Product multiplies every effect of the given type, in list order. An empty
// match yields 1.
func Product(active []account.ActiveEffect, t catalog.EffectType) float64 {
	product := 1.0
	for _, e := range active {
		if e.Type == t {
			product *= e.Multiplier
		}
	}
	return product
}

// Activate starts a consumable on the account. Effects of the same type stack
// multiplicatively.
func Activate(a *account.Account, c catalog.ConsumableEffect, now time.Time) account.ActiveEffect {
	effect := account.ActiveEffect{
		Type:       c.EffectType,
		Multiplier: c.Multiplier,
		Expiry:     now.Add(c.Duration()),
	}
	a.ActiveEffects = append(a.ActiveEffects, effect)
	return effect
}

// Remaining returns how long each running effect has left, pruning first.
func Remaining(a *account.Account, now time.Time) []time.Duration {
	active := a.EffectsAt(now)
	out := make([]time.Duration, len(active))
	for i, e := range active {
		out[i] = e.Expiry.Sub(now)
	}
	return out
}
