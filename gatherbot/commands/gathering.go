package commands

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/gather-bot/gatherbot"
	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/economy"
	"github.com/disgoorg/gather-bot/gatherbot/leveling"
	"github.com/disgoorg/gather-bot/gatherbot/utils"
)

var Fish = discord.SlashCommandCreate{
	Name:        "fish",
	Description: "🎣 Cast your rod and see what bites",
}

var Mine = discord.SlashCommandCreate{
	Name:        "mine",
	Description: "⛏️ Dig for ores and gems",
}

var Farm = discord.SlashCommandCreate{
	Name:        "farm",
	Description: "🌾 Harvest your crops",
}

type gatherFunc func(*economy.Engine, context.Context, account.Key) (economy.GatherResult, error)

func FishHandler(b *gatherbot.Bot) handler.CommandHandler {
	return gatherHandler(b, "fish", (*economy.Engine).PerformFish)
}

func MineHandler(b *gatherbot.Bot) handler.CommandHandler {
	return gatherHandler(b, "mine", (*economy.Engine).PerformMine)
}

func FarmHandler(b *gatherbot.Bot) handler.CommandHandler {
	return gatherHandler(b, "farm", (*economy.Engine).PerformFarm)
}

func gatherHandler(b *gatherbot.Bot, action string, perform gatherFunc) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return withKey(e, func(ctx context.Context, key account.Key) error {
			res, err := perform(b.Engine, ctx, key)
			if err != nil {
				return storeFailure(e, action, key, err)
			}
			return utils.EH.RespondResult(e, res.Result, func(embed *discord.EmbedBuilder) {
				embed.
					SetTitle(fmt.Sprintf("%s %s", domainEmoji[res.Domain], utils.Title(string(res.Domain)))).
					SetColor(rarityColor(res.Rarity)).
					AddField("Rarity", utils.Title(string(res.Rarity)), true).
					AddField("Tool", res.Tool.Name, true).
					AddField("Balance", utils.FormatCoins(res.Balance), true)
				addSkillField(embed, res.Skill)
				if res.PetHunger >= 0 {
					pet := fmt.Sprintf("Hunger %d", res.PetHunger)
					if res.Yield.PetBoosted {
						pet += ", coin boost applied"
					}
					embed.AddField("Pet", pet, true)
				}
			})
		})
	}
}

func addSkillField(embed *discord.EmbedBuilder, s leveling.SkillResult) {
	value := fmt.Sprintf("Level %d %s %s/%s",
		s.NewLevel,
		utils.ProgressBar(s.CurrentXP, s.NextThreshold, 10),
		utils.FormatNumber(s.CurrentXP),
		utils.FormatNumber(s.NextThreshold))
	if s.LeveledUp() {
		value = fmt.Sprintf("🎉 +%d level(s)! %s", s.LevelsGained, value)
	}
	embed.AddField("Skill", value, false)
}
