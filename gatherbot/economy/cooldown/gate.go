// Package cooldown gates activities on the time since their last accepted use.
package cooldown

import (
	"fmt"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/account"
)

type Unit int

const (
	Seconds Unit = iota
	Minutes
	Hours
)

func (u Unit) Duration() time.Duration {
	switch u {
	case Minutes:
		return time.Minute
	case Hours:
		return time.Hour
	default:
		return time.Second
	}
}

func (u Unit) label(n int64) string {
	var word string
	switch u {
	case Minutes:
		word = "minute"
	case Hours:
		word = "hour"
	default:
		word = "second"
	}
	if n != 1 {
		word += "s"
	}
	return fmt.Sprintf("%d %s", n, word)
}

// Scaled divides a base cooldown by prestige+1.
func Scaled(base time.Duration, prestige int) time.Duration {
	if prestige < 0 {
		prestige = 0
	}
	return base / time.Duration(prestige+1)
}

type Decision struct {
	Allowed   bool
	Remaining time.Duration
	// Wait is Remaining rounded up to whole Units.
	Wait int64
	Unit Unit
}

// String renders the wait, e.g. "7 seconds".
func (d Decision) String() string {
	return d.Unit.label(d.Wait)
}

// Check rejects when now-last is still inside the cooldown. A clock that
// moved backwards counts as inside the window.
func Check(last, now time.Time, cooldown time.Duration, unit Unit) Decision {
	if last.IsZero() {
		return Decision{Allowed: true, Unit: unit}
	}
	elapsed := now.Sub(last)
	if elapsed >= cooldown {
		return Decision{Allowed: true, Unit: unit}
	}
	remaining := cooldown - elapsed
	step := unit.Duration()
	wait := int64((remaining + step - 1) / step)
	return Decision{Remaining: remaining, Wait: wait, Unit: unit}
}

// Rule is one activity's cooldown policy.
type Rule struct {
	Activity account.Activity
	Base     time.Duration
	Unit     Unit
	// PrestigeScaled divides Base by prestige+1.
	PrestigeScaled bool
}

func (r Rule) Effective(prestige int) time.Duration {
	if r.PrestigeScaled {
		return Scaled(r.Base, prestige)
	}
	return r.Base
}

func (r Rule) Check(a *account.Account, now time.Time) Decision {
	return Check(a.LastAction[r.Activity], now, r.Effective(a.Prestige), r.Unit)
}

// Admit checks the rule and, when allowed, stamps the activity with now. The
// stamp is never undone by later failures.
func (r Rule) Admit(a *account.Account, now time.Time) Decision {
	d := r.Check(a, now)
	if d.Allowed {
		a.LastAction[r.Activity] = now
	}
	return d
}
