// Package yield turns a base reward into the coins and xp actually paid out.
//
// Every stage floors its own result before the next multiplier is applied,
// so the order below is part of the contract:
//
//  1. coins = floor(value × tool multiplier × prestige bonus)
//  2. coins = floor(coins × pet boost), coin pets with hunger > 0 only
//  3. coins = floor(coins × product of coin effects)
//  4. xp    = floor(xp × tool multiplier), then floor(xp × product of xp effects)
package yield

import (
	"math"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
	"github.com/disgoorg/gather-bot/gatherbot/economy/effects"
)

type Input struct {
	Value          int64
	XP             int64
	ToolMultiplier float64
	PrestigeBonus  float64
	// Pet is the equipped pet, nil when none.
	Pet *account.Pet
	// Effects must already be pruned of expired entries.
	Effects []account.ActiveEffect
}

type Yield struct {
	Coins int64
	XP    int64
	// BaseCoins is the stage 1 amount, before pet and effects.
	BaseCoins int64
	// PetBoosted reports whether stage 2 applied.
	PetBoosted       bool
	CoinEffectFactor float64
	XPEffectFactor   float64
}

func Calculate(in Input) Yield {
	toolMult := in.ToolMultiplier
	if toolMult == 0 {
		toolMult = 1
	}
	prestige := in.PrestigeBonus
	if prestige == 0 {
		prestige = 1
	}

	var y Yield
	coins := floor(float64(in.Value) * toolMult * prestige)
	y.BaseCoins = coins

	if p := in.Pet; p != nil && p.Hunger > 0 && p.Boost.Type == catalog.BoostCoins {
		coins = floor(float64(coins) * p.Boost.Value)
		y.PetBoosted = true
	}

	y.CoinEffectFactor = effects.Product(in.Effects, catalog.EffectCoins)
	coins = floor(float64(coins) * y.CoinEffectFactor)

	xp := floor(float64(in.XP) * toolMult)
	y.XPEffectFactor = effects.Product(in.Effects, catalog.EffectXP)
	xp = floor(float64(xp) * y.XPEffectFactor)

	y.Coins = coins
	y.XP = xp
	return y
}

func floor(v float64) int64 {
	return int64(math.Floor(v))
}
