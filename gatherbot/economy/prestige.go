package economy

import (
	"context"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
	"github.com/disgoorg/gather-bot/gatherbot/economy/cooldown"
)

func prestigeRequirements(current int) (level int, coins int64) {
	next := current + 1
	return prestigeLevelStep * next, prestigeCoinStep * int64(next)
}

// Prestige trades coins, skills, inventories and tools for a permanent tier.
// Pets, active effects and cooldown stamps carry over.
func (e *Engine) Prestige(ctx context.Context, key account.Key) (PrestigeResult, error) {
	var res PrestigeResult
	err := e.withAccount(ctx, key, "prestige", func(a *account.Account, now time.Time) bool {
		level, coins := prestigeRequirements(a.Prestige)
		res.RequiredLevel = level
		res.RequiredCoins = coins
		res.Prestige = a.Prestige
		res.Bonus = a.PrestigeBonus()

		for _, d := range catalog.SkillDomains {
			if a.Skill(d).Level < level {
				res.Result = fail("Every skill must reach level %d to prestige; %s is level %d.", level, d, a.Skill(d).Level)
				return false
			}
		}
		if a.Coins < coins {
			res.Result = fail("You need %d coins to prestige, you have %d.", coins, a.Coins)
			return false
		}

		a.Prestige++
		a.Coins = 0
		a.Skills = nil
		a.Inventory = nil
		a.EquippedTools = nil
		a.OwnedTools = nil
		a.Normalize(e.catalog)

		res.Prestige = a.Prestige
		res.Bonus = a.PrestigeBonus()
		res.RequiredLevel, res.RequiredCoins = prestigeRequirements(a.Prestige)
		res.Result = ok("You reached prestige %d! Coin bonus is now %.1fx and gathering cooldowns are divided by %d.", a.Prestige, res.Bonus, a.Prestige+1)
		return true
	})
	return res, err
}

func (e *Engine) Profile(ctx context.Context, key account.Key) (ProfileView, error) {
	var res ProfileView
	err := e.withAccount(ctx, key, "profile", func(a *account.Account, now time.Time) bool {
		res.Coins = a.Coins
		res.Prestige = a.Prestige
		res.PrestigeBonus = a.PrestigeBonus()
		res.DailyStreak = a.DailyStreak

		for _, d := range catalog.SkillDomains {
			s := a.Skill(d)
			res.Skills = append(res.Skills, SkillView{
				Domain:    d,
				Level:     s.Level,
				XP:        s.XP,
				Threshold: e.skills.Threshold(s.Level),
			})
		}

		res.Inventory = make(map[catalog.Domain]map[string]int64, len(a.Inventory))
		for d, items := range a.Inventory {
			copied := make(map[string]int64, len(items))
			for name, n := range items {
				copied[name] = n
			}
			res.Inventory[d] = copied
		}

		res.Tools = make(map[catalog.Domain]catalog.Tool, len(catalog.GatheringDomains))
		var rules []cooldown.Rule
		for _, d := range catalog.GatheringDomains {
			tool, found := e.catalog.Tool(a.EquippedTools[d])
			if !found {
				tool = e.catalog.StarterTool(d)
			}
			res.Tools[d] = tool
			rules = append(rules, gatherRule(d, tool))
		}
		rules = append(rules, fixedRules...)
		for _, r := range rules {
			d := r.Check(a, now)
			view := CooldownView{Activity: r.Activity, Ready: d.Allowed}
			if !d.Allowed {
				view.Wait = d.String()
			}
			res.Cooldowns = append(res.Cooldowns, view)
		}

		for _, effect := range a.EffectsAt(now) {
			res.Effects = append(res.Effects, EffectView{
				Type:       effect.Type,
				Multiplier: effect.Multiplier,
				Remaining:  effect.Expiry.Sub(now),
			})
		}

		if pet := a.EquippedPet(); pet != nil {
			copied := *pet
			res.EquippedPet = &copied
		}
		res.PetCount = len(a.Pets)
		res.Result = ok("Profile loaded.")
		return false
	})
	return res, err
}
