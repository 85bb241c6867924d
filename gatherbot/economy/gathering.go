package economy

import (
	"context"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
	"github.com/disgoorg/gather-bot/gatherbot/economy/yield"
)

var pastTense = map[catalog.Domain]string{
	catalog.Fishing: "caught",
	catalog.Mining:  "mined",
	catalog.Farming: "harvested",
}

func (e *Engine) PerformFish(ctx context.Context, key account.Key) (GatherResult, error) {
	return e.gather(ctx, key, catalog.Fishing, "fish")
}

func (e *Engine) PerformMine(ctx context.Context, key account.Key) (GatherResult, error) {
	return e.gather(ctx, key, catalog.Mining, "mine")
}

func (e *Engine) PerformFarm(ctx context.Context, key account.Key) (GatherResult, error) {
	return e.gather(ctx, key, catalog.Farming, "farm")
}

func (e *Engine) gather(ctx context.Context, key account.Key, d catalog.Domain, verb string) (GatherResult, error) {
	var res GatherResult
	err := e.withAccount(ctx, key, verb, func(a *account.Account, now time.Time) bool {
		tool, found := e.catalog.Tool(a.EquippedTools[d])
		if !found {
			tool = e.catalog.StarterTool(d)
		}

		decision := gatherRule(d, tool).Admit(a, now)
		if !decision.Allowed {
			res.Result = onCooldown(verb, decision)
			return false
		}

		rarity := e.roller.RollRarity(tool.Power)
		resource := e.roller.RollResource(d, rarity)

		pet := a.EquippedPet()
		y := yield.Calculate(yield.Input{
			Value:          resource.Value,
			XP:             resource.XP,
			ToolMultiplier: tool.Multiplier,
			PrestigeBonus:  a.PrestigeBonus(),
			Pet:            pet,
			Effects:        a.EffectsAt(now),
		})

		a.AddItem(d, resource.Name, 1)
		a.Coins += y.Coins
		res.Skill = e.grantSkillXP(a, d, y.XP)

		res.PetHunger = -1
		if pet != nil {
			if pet.Hunger > 0 {
				pet.Hunger--
			}
			res.PetHunger = pet.Hunger
		}

		res.Result = ok("You %s %s %s (%s) worth %d coins and %d xp.", pastTense[d], resource.Emoji, resource.Name, rarity, y.Coins, y.XP)
		res.Domain = d
		res.Tool = tool
		res.Rarity = rarity
		res.Resource = resource
		res.Yield = y
		res.Balance = a.Coins
		return true
	})
	return res, err
}
