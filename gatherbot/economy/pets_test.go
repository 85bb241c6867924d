package economy

import (
	"context"
	"testing"
)

func TestHatchPet_CommonEgg(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.account(alice).Coins = 500

	res, err := f.engine.HatchPet(ctx, alice, "common_egg")
	if err != nil {
		t.Fatalf("HatchPet() error = %v", err)
	}
	if !res.Success || res.Pet.Type != "turtle" || !res.Equipped {
		t.Fatalf("HatchPet() = %+v", res)
	}

	a := f.account(alice)
	if a.Coins != 0 {
		t.Errorf("coins = %d, want 0", a.Coins)
	}
	if a.EquippedPet() == nil || a.EquippedPet().ID != res.Pet.ID {
		t.Error("hatched pet was not equipped")
	}
	if res.Pet.Level != 1 || res.Pet.XP != 0 || res.Pet.Hunger != 80 {
		t.Errorf("new pet = %+v", res.Pet)
	}

	res, _ = f.engine.HatchPet(ctx, alice, "common_egg")
	if res.Success {
		t.Error("hatch without coins succeeded")
	}
}

func TestHatchPet_DoesNotStealEquip(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.account(alice).Coins = 1000

	first, _ := f.engine.HatchPet(ctx, alice, "common_egg")
	f.src.push(nil, []int{2})
	second, _ := f.engine.HatchPet(ctx, alice, "common_egg")
	if second.Equipped || second.Pet.Type != "hamster" {
		t.Errorf("second hatch = %+v", second)
	}
	if second.Pet.ID != first.Pet.ID+1 {
		t.Errorf("pet ids %d then %d", first.Pet.ID, second.Pet.ID)
	}
	if got := *f.account(alice).EquippedPetID; got != first.Pet.ID {
		t.Errorf("equipped id = %d, want %d", got, first.Pet.ID)
	}
}

func TestHatchPet_UnknownEgg(t *testing.T) {
	f := newFixture(t)
	f.account(alice).Coins = 100_000
	res, _ := f.engine.HatchPet(context.Background(), alice, "dino_egg")
	if res.Success || f.account(alice).Coins != 100_000 {
		t.Errorf("HatchPet(unknown) = %+v", res)
	}
}

func TestFeedPet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.account(alice).Coins = 600
	hatch, _ := f.engine.HatchPet(ctx, alice, "common_egg")
	id := hatch.Pet.ID

	res, _ := f.engine.FeedPet(ctx, alice, id)
	if !res.Success || res.Pet.Hunger != 100 || res.Pet.XP != 10 || res.Balance != 50 {
		t.Fatalf("FeedPet() = %+v", res)
	}

	// full pets are turned away without charging
	res, _ = f.engine.FeedPet(ctx, alice, id)
	if res.Success || f.account(alice).Coins != 50 {
		t.Errorf("feeding a full pet = %+v, coins %d", res, f.account(alice).Coins)
	}

	if res, _ = f.engine.FeedPet(ctx, alice, 99); res.Success {
		t.Error("fed a pet that does not exist")
	}
}

func TestFeedPet_LevelUp(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.account(alice).Coins = 550
	hatch, _ := f.engine.HatchPet(ctx, alice, "common_egg")

	pet := f.account(alice).FindPet(hatch.Pet.ID)
	pet.XP = 95
	pet.Hunger = 10

	res, _ := f.engine.FeedPet(ctx, alice, pet.ID)
	if !res.Growth.LeveledUp || res.Pet.Level != 2 || res.Pet.XP != 0 {
		t.Errorf("FeedPet() growth = %+v", res.Growth)
	}
	if res.Pet.Hunger != 40 {
		t.Errorf("hunger = %d, want 40", res.Pet.Hunger)
	}
}

func TestFeedPet_NotEnoughCoins(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.account(alice).Coins = 520
	hatch, _ := f.engine.HatchPet(ctx, alice, "common_egg")
	f.account(alice).FindPet(hatch.Pet.ID).Hunger = 10

	res, _ := f.engine.FeedPet(ctx, alice, hatch.Pet.ID)
	if res.Success || f.account(alice).Coins != 20 {
		t.Errorf("FeedPet() = %+v", res)
	}
}

func TestEquipAndViewPets(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.account(alice).Coins = 1000
	first, _ := f.engine.HatchPet(ctx, alice, "common_egg")
	f.src.push(nil, []int{1})
	second, _ := f.engine.HatchPet(ctx, alice, "common_egg")

	if res, _ := f.engine.EquipPet(ctx, alice, 42); res.Success {
		t.Error("equipped a missing pet")
	}
	res, _ := f.engine.EquipPet(ctx, alice, second.Pet.ID)
	if !res.Success || res.Pet.Type != "rabbit" {
		t.Fatalf("EquipPet() = %+v", res)
	}

	view, _ := f.engine.ViewPets(ctx, bob)
	if len(view.Pets) != 0 || view.EquippedPetID != nil {
		t.Errorf("bob's pets = %+v", view)
	}

	view, _ = f.engine.ViewPets(ctx, alice)
	if len(view.Pets) != 2 || view.Pets[0].ID != first.Pet.ID || view.Coins != 0 {
		t.Fatalf("ViewPets() = %+v", view)
	}
	if view.EquippedPetID == nil || *view.EquippedPetID != second.Pet.ID {
		t.Errorf("equipped id = %v", view.EquippedPetID)
	}

	// the view is a copy
	view.Pets[0].Hunger = 0
	if f.account(alice).FindPet(first.Pet.ID).Hunger == 0 {
		t.Error("ViewPets leaked the live pet")
	}
}
