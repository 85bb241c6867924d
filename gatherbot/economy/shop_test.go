package economy

import (
	"context"
	"testing"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/catalog"
)

func TestBuyTool(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.account(alice).Coins = 2_500

	res, _ := f.engine.BuyTool(ctx, alice, "sturdy_rod")
	if !res.Success || res.Balance != 0 {
		t.Fatalf("BuyTool() = %+v", res)
	}
	a := f.account(alice)
	if a.EquippedTools[catalog.Fishing] != "sturdy_rod" || !a.OwnsTool(catalog.Fishing, "sturdy_rod") {
		t.Errorf("tools after purchase: equipped %v owned %v", a.EquippedTools, a.OwnedTools)
	}

	a.Coins = 10_000
	if res, _ = f.engine.BuyTool(ctx, alice, "sturdy_rod"); res.Success {
		t.Error("bought the same tool twice")
	}
	if res, _ = f.engine.BuyTool(ctx, alice, "laser_rod"); res.Success {
		t.Error("bought an unknown tool")
	}
	if res, _ = f.engine.BuyTool(ctx, alice, "abyssal_rod"); res.Success {
		t.Error("bought a tool without enough coins")
	}
	if a.Coins != 10_000 {
		t.Errorf("failed purchases changed coins to %d", a.Coins)
	}
}

func TestEquipTool(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.account(alice).Coins = 3_000
	f.engine.BuyTool(ctx, alice, "iron_pickaxe")

	if res, _ := f.engine.EquipTool(ctx, alice, "diamond_pickaxe"); res.Success {
		t.Error("equipped a tool that is not owned")
	}
	res, _ := f.engine.EquipTool(ctx, alice, "basic_pickaxe")
	if !res.Success || f.account(alice).EquippedTools[catalog.Mining] != "basic_pickaxe" {
		t.Errorf("EquipTool() = %+v", res)
	}
}

func TestBetterToolChangesCooldown(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.account(alice).Coins = 12_000
	f.engine.BuyTool(ctx, alice, "carbon_rod")

	// power 6: common band is 72 wide, multiplier 1.5
	f.src.push([]float64{0.5}, []int{0})
	res, _ := f.engine.PerformFish(ctx, alice)
	if !res.Success || res.Yield.Coins != 15 || res.Yield.XP != 7 {
		t.Fatalf("PerformFish() = %+v", res)
	}

	f.clock.Advance(8 * time.Second)
	if res, _ = f.engine.PerformFish(ctx, alice); !res.Success {
		t.Errorf("carbon rod cooldown not applied: %s", res.Message)
	}
}

func TestUseConsumable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.account(alice).Coins = 1_000

	res, _ := f.engine.UseConsumable(ctx, alice, "coin_potion")
	if !res.Success || res.Balance != 0 || !res.Effect.Expiry.Equal(t0.Add(30*time.Minute)) {
		t.Fatalf("UseConsumable() = %+v", res)
	}
	if res, _ = f.engine.UseConsumable(ctx, alice, "coin_potion"); res.Success {
		t.Error("bought a potion without coins")
	}

	fish, _ := f.engine.PerformFish(ctx, alice)
	if fish.Yield.Coins != 15 {
		t.Errorf("potion fish = %d coins, want 15", fish.Yield.Coins)
	}

	f.clock.Advance(30 * time.Minute)
	fish, _ = f.engine.PerformFish(ctx, alice)
	if fish.Yield.Coins != 10 {
		t.Errorf("fish after expiry = %d coins, want 10", fish.Yield.Coins)
	}
	if n := len(f.account(alice).ActiveEffects); n != 0 {
		t.Errorf("%d expired effects kept", n)
	}
}
