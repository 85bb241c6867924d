package economy

import (
	"context"
	"time"

	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/economy/effects"
)

// BuyTool purchases a tool and equips it straight away.
func (e *Engine) BuyTool(ctx context.Context, key account.Key, toolID string) (ToolResult, error) {
	var res ToolResult
	err := e.withAccount(ctx, key, "buy_tool", func(a *account.Account, now time.Time) bool {
		tool, found := e.catalog.Tool(toolID)
		if !found {
			res.Result = fail("Unknown tool %q.", toolID)
			return false
		}
		if a.OwnsTool(tool.Domain, tool.ID) {
			res.Result = fail("You already own a %s.", tool.Name)
			return false
		}
		if a.Coins < tool.Price {
			res.Result = fail("A %s costs %d coins, you have %d.", tool.Name, tool.Price, a.Coins)
			return false
		}

		a.Coins -= tool.Price
		a.OwnedTools[tool.Domain] = append(a.OwnedTools[tool.Domain], tool.ID)
		a.EquippedTools[tool.Domain] = tool.ID

		res.Tool = tool
		res.Balance = a.Coins
		res.Result = ok("You bought and equipped a %s for %d coins.", tool.Name, tool.Price)
		return true
	})
	return res, err
}

func (e *Engine) EquipTool(ctx context.Context, key account.Key, toolID string) (ToolResult, error) {
	var res ToolResult
	err := e.withAccount(ctx, key, "equip_tool", func(a *account.Account, now time.Time) bool {
		tool, found := e.catalog.Tool(toolID)
		if !found {
			res.Result = fail("Unknown tool %q.", toolID)
			return false
		}
		if !a.OwnsTool(tool.Domain, tool.ID) {
			res.Result = fail("You don't own a %s.", tool.Name)
			return false
		}
		if a.EquippedTools[tool.Domain] == tool.ID {
			res.Tool = tool
			res.Balance = a.Coins
			res.Result = ok("Your %s is already equipped.", tool.Name)
			return false
		}

		a.EquippedTools[tool.Domain] = tool.ID
		res.Tool = tool
		res.Balance = a.Coins
		res.Result = ok("You equipped your %s.", tool.Name)
		return true
	})
	return res, err
}

// UseConsumable buys a consumable and starts its effect at once. Effects of
// the same type stack multiplicatively.
func (e *Engine) UseConsumable(ctx context.Context, key account.Key, consumableID string) (ConsumableResult, error) {
	var res ConsumableResult
	err := e.withAccount(ctx, key, "use_consumable", func(a *account.Account, now time.Time) bool {
		c, found := e.catalog.Consumable(consumableID)
		if !found {
			res.Result = fail("Unknown consumable %q.", consumableID)
			return false
		}
		if a.Coins < c.Price {
			res.Result = fail("A %s costs %d coins, you have %d.", c.Name, c.Price, a.Coins)
			return false
		}

		a.Coins -= c.Price
		a.EffectsAt(now)
		effect := effects.Activate(a, c, now)

		res.Consumable = c
		res.Effect = effect
		res.Balance = a.Coins
		res.Result = ok("%s active: %gx %s for %s.", c.Name, c.Multiplier, c.EffectType, c.Duration())
		return true
	})
	return res, err
}
