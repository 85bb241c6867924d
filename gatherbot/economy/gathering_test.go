package economy

import (
	"context"
	"testing"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
)

func TestPerformFish_BasicRod(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// common band, first common fish
	f.src.push([]float64{0}, []int{0})
	res, err := f.engine.PerformFish(ctx, alice)
	if err != nil {
		t.Fatalf("PerformFish() error = %v", err)
	}
	if !res.Success {
		t.Fatalf("PerformFish() = %+v", res)
	}
	if res.Resource.Name != "Sardine" || res.Rarity != catalog.Common {
		t.Errorf("rolled %s (%s), want Sardine (common)", res.Resource.Name, res.Rarity)
	}
	if res.Yield.Coins != 10 || res.Yield.XP != 5 {
		t.Errorf("yield = %d coins %d xp, want 10 and 5", res.Yield.Coins, res.Yield.XP)
	}

	a := f.account(alice)
	if a.Coins != 10 || a.Skill(catalog.Fishing).XP != 5 || a.Inventory[catalog.Fishing]["Sardine"] != 1 {
		t.Errorf("account after fish: coins %d xp %d sardines %d", a.Coins, a.Skill(catalog.Fishing).XP, a.Inventory[catalog.Fishing]["Sardine"])
	}
	if res.PetHunger != -1 {
		t.Errorf("PetHunger = %d without a pet", res.PetHunger)
	}

	f.clock.Advance(5 * time.Second)
	res, _ = f.engine.PerformFish(ctx, alice)
	if res.Success {
		t.Fatal("second fish inside the cooldown succeeded")
	}
	if res.Message != "You can fish again in 5 seconds." {
		t.Errorf("cooldown message = %q", res.Message)
	}
	if a.Coins != 10 {
		t.Errorf("rejected fish changed coins to %d", a.Coins)
	}

	f.clock.Advance(5 * time.Second)
	if res, _ = f.engine.PerformFish(ctx, alice); !res.Success {
		t.Errorf("fish after the cooldown = %+v", res)
	}
}

func TestGather_PrestigeScalesCooldownAndCoins(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.account(alice).Prestige = 1

	res, _ := f.engine.PerformFish(ctx, alice)
	if !res.Success {
		t.Fatalf("PerformFish() = %+v", res)
	}
	// floor(10 × 1.0 × 1.1)
	if res.Yield.Coins != 11 {
		t.Errorf("coins = %d, want 11", res.Yield.Coins)
	}

	f.clock.Advance(5 * time.Second)
	if res, _ = f.engine.PerformFish(ctx, alice); !res.Success {
		t.Errorf("fish after the halved cooldown = %+v", res)
	}
}

func TestGather_DomainsHaveSeparateCooldowns(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	fish, _ := f.engine.PerformFish(ctx, alice)
	mine, _ := f.engine.PerformMine(ctx, alice)
	farm, _ := f.engine.PerformFarm(ctx, alice)
	if !fish.Success || !mine.Success || !farm.Success {
		t.Fatalf("fish %v mine %v farm %v", fish.Success, mine.Success, farm.Success)
	}
	if mine.Resource.Name != "Stone" || farm.Resource.Name != "Wheat" {
		t.Errorf("mine rolled %s, farm rolled %s", mine.Resource.Name, farm.Resource.Name)
	}
	if got := f.account(alice).Inventory[catalog.Mining]["Stone"]; got != 1 {
		t.Errorf("stone count = %d", got)
	}
}

func TestGather_PetBoostAndHunger(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.account(alice)
	id := int64(1)
	a.Pets = []*account.Pet{{ID: 1, Type: "phoenix", Level: 1, Hunger: 1, Boost: catalog.Boost{Type: catalog.BoostCoins, Value: 1.5}}}
	a.EquippedPetID = &id

	res, _ := f.engine.PerformFish(ctx, alice)
	if !res.Yield.PetBoosted || res.Yield.Coins != 15 {
		t.Errorf("yield = %+v, want pet boosted 15 coins", res.Yield)
	}
	if res.PetHunger != 0 {
		t.Errorf("hunger = %d, want 0", res.PetHunger)
	}

	// a starving pet gives nothing and hunger stays at zero
	f.clock.Advance(10 * time.Second)
	res, _ = f.engine.PerformFish(ctx, alice)
	if res.Yield.PetBoosted || res.Yield.Coins != 10 || a.Pets[0].Hunger != 0 {
		t.Errorf("starving pet: yield %+v hunger %d", res.Yield, a.Pets[0].Hunger)
	}
}

func TestGather_SkillLevelsUp(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.account(alice).Skill(catalog.Mining).XP = 99

	res, _ := f.engine.PerformMine(ctx, alice)
	if !res.Skill.LeveledUp() || res.Skill.NewLevel != 2 {
		t.Errorf("skill result = %+v, want level 2", res.Skill)
	}
	// Stone gives 4 xp: 99 + 4 - 100
	if res.Skill.CurrentXP != 3 {
		t.Errorf("carried xp = %d, want 3", res.Skill.CurrentXP)
	}
}
