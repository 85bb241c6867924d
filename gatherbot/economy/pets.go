package economy

import (
	"context"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/account"
)

// HatchPet buys an egg and hatches one of its species at random. The first
// pet hatched while none is equipped becomes the equipped pet.
func (e *Engine) HatchPet(ctx context.Context, key account.Key, eggID string) (HatchResult, error) {
	var res HatchResult
	err := e.withAccount(ctx, key, "hatch", func(a *account.Account, now time.Time) bool {
		egg, found := e.catalog.Egg(eggID)
		if !found || len(egg.AllowedSpecies) == 0 {
			res.Result = fail("Unknown egg %q.", eggID)
			return false
		}
		if a.Coins < egg.Price {
			res.Result = fail("You need %d coins to buy a %s, you have %d.", egg.Price, egg.Name, a.Coins)
			return false
		}
		species, found := e.catalog.Species(egg.AllowedSpecies[e.roller.Pick(len(egg.AllowedSpecies))])
		if !found {
			res.Result = fail("The %s failed to hatch.", egg.Name)
			return false
		}

		a.Coins -= egg.Price
		a.PetIDCounter++
		pet := &account.Pet{
			ID:     a.PetIDCounter,
			Type:   species.ID,
			Boost:  species.Boost,
			Hunger: species.BaseHunger,
			Level:  1,
		}
		a.Pets = append(a.Pets, pet)
		if a.EquippedPetID == nil {
			id := pet.ID
			a.EquippedPetID = &id
			res.Equipped = true
		}

		res.Pet = *pet
		res.Species = species
		res.Balance = a.Coins
		res.Result = ok("Your %s hatched into a %s %s!", egg.Name, species.Emoji, species.Name)
		return true
	})
	return res, err
}

// FeedPet charges the feeding fee, restores hunger and grants pet xp. A pet
// that is already full is turned away without charging.
func (e *Engine) FeedPet(ctx context.Context, key account.Key, petID int64) (FeedResult, error) {
	var res FeedResult
	err := e.withAccount(ctx, key, "feed", func(a *account.Account, now time.Time) bool {
		pet := a.FindPet(petID)
		if pet == nil {
			res.Result = fail("You don't have a pet with id %d.", petID)
			return false
		}
		if a.Coins < feedFee {
			res.Result = fail("Feeding costs %d coins, you have %d.", feedFee, a.Coins)
			return false
		}
		if pet.Hunger >= maxHunger {
			res.Result = fail("Your %s is already full.", pet.Type)
			return false
		}

		a.Coins -= feedFee
		pet.Hunger = min(pet.Hunger+feedHunger, maxHunger)
		growth := e.pets.Feed(pet)

		res.Pet = *pet
		res.Growth = growth
		res.Balance = a.Coins
		if growth.LeveledUp {
			res.Result = ok("You fed your %s. It grew to level %d!", pet.Type, growth.NewLevel)
		} else {
			res.Result = ok("You fed your %s. Hunger is now %d/%d.", pet.Type, pet.Hunger, maxHunger)
		}
		return true
	})
	return res, err
}

// EquipPet switches the equipped pet. Hunger and level are not checked.
func (e *Engine) EquipPet(ctx context.Context, key account.Key, petID int64) (EquipPetResult, error) {
	var res EquipPetResult
	err := e.withAccount(ctx, key, "equip_pet", func(a *account.Account, now time.Time) bool {
		pet := a.FindPet(petID)
		if pet == nil {
			res.Result = fail("You don't have a pet with id %d.", petID)
			return false
		}
		id := pet.ID
		a.EquippedPetID = &id
		res.Pet = *pet
		res.Result = ok("Your %s is now equipped.", pet.Type)
		return true
	})
	return res, err
}

func (e *Engine) ViewPets(ctx context.Context, key account.Key) (PetsView, error) {
	var res PetsView
	err := e.withAccount(ctx, key, "view_pets", func(a *account.Account, now time.Time) bool {
		res.Pets = make([]account.Pet, 0, len(a.Pets))
		for _, p := range a.Pets {
			res.Pets = append(res.Pets, *p)
		}
		if a.EquippedPetID != nil {
			id := *a.EquippedPetID
			res.EquippedPetID = &id
		}
		res.Coins = a.Coins
		res.Result = ok("You have %d pet(s).", len(res.Pets))
		return false
	})
	return res, err
}
