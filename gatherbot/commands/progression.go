package commands

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/gather-bot/gatherbot"
	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
	"github.com/disgoorg/gather-bot/gatherbot/config"
	"github.com/disgoorg/gather-bot/gatherbot/economy"
	"github.com/disgoorg/gather-bot/gatherbot/utils"
)

const inventoryPreview = 5

var Prestige = discord.SlashCommandCreate{
	Name:        "prestige",
	Description: "⭐ Reset your progress for a permanent bonus",
}

var Profile = discord.SlashCommandCreate{
	Name:        "profile",
	Description: "👤 Show your coins, skills, tools and cooldowns",
}

func PrestigeHandler(b *gatherbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return withKey(e, func(ctx context.Context, key account.Key) error {
			res, err := b.Engine.Prestige(ctx, key)
			if err != nil {
				return storeFailure(e, "prestige", key, err)
			}
			if !res.Success {
				return e.CreateMessage(discord.MessageCreate{
					Embeds: []discord.Embed{discord.NewEmbedBuilder().
						SetTitle("⭐ Not ready to prestige").
						SetDescription(res.Message).
						SetColor(config.WarningColor).
						AddField("Required level", fmt.Sprintf("%d in every skill", res.RequiredLevel), true).
						AddField("Required coins", utils.FormatCoins(res.RequiredCoins), true).
						Build()},
				})
			}
			return utils.EH.RespondResult(e, res.Result, func(embed *discord.EmbedBuilder) {
				embed.
					SetTitle(fmt.Sprintf("⭐ Prestige %d", res.Prestige)).
					SetColor(config.RarityLegendaryColor).
					AddField("Next tier", fmt.Sprintf("Level %d and %s", res.RequiredLevel, utils.FormatCoins(res.RequiredCoins)), false)
			})
		})
	}
}

func ProfileHandler(b *gatherbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return withKey(e, func(ctx context.Context, key account.Key) error {
			view, err := b.Engine.Profile(ctx, key)
			if err != nil {
				return storeFailure(e, "load your profile", key, err)
			}
			embed := profileEmbed(b.Catalog, view).
				SetTitle(fmt.Sprintf("👤 %s", e.User().Username)).
				SetThumbnail(e.User().EffectiveAvatarURL())
			return e.CreateMessage(discord.MessageCreate{
				Embeds: []discord.Embed{embed.Build()},
			})
		})
	}
}

func profileEmbed(cat *catalog.Catalog, view economy.ProfileView) *discord.EmbedBuilder {
	embed := discord.NewEmbedBuilder().
		SetColor(config.EmbedDefaultColor).
		AddField("Coins", utils.FormatCoins(view.Coins), true).
		AddField("Prestige", fmt.Sprintf("%d (%s coins)", view.Prestige, utils.FormatMultiplier(view.PrestigeBonus)), true).
		AddField("Daily streak", fmt.Sprintf("🔥 %d", view.DailyStreak), true)

	var skills strings.Builder
	for _, s := range view.Skills {
		fmt.Fprintf(&skills, "%s **%s** Lv.%d %s %s/%s\n",
			domainEmoji[s.Domain], utils.Title(string(s.Domain)), s.Level,
			utils.ProgressBar(s.XP, s.Threshold, 8), utils.FormatNumber(s.XP), utils.FormatNumber(s.Threshold))
	}
	embed.AddField("Skills", skills.String(), false)

	var tools strings.Builder
	for _, d := range catalog.GatheringDomains {
		t := view.Tools[d]
		fmt.Fprintf(&tools, "%s %s\n", domainEmoji[d], t.Name)
	}
	embed.AddField("Tools", tools.String(), true)

	pet := "None"
	if view.EquippedPet != nil {
		pet = fmt.Sprintf("%s Lv.%d • hunger %d\n%d owned", speciesName(cat, view.EquippedPet.Type), view.EquippedPet.Level, view.EquippedPet.Hunger, view.PetCount)
	} else if view.PetCount > 0 {
		pet = fmt.Sprintf("None equipped, %d owned", view.PetCount)
	}
	embed.AddField("Pet", pet, true)

	if inv := inventorySummary(view.Inventory); inv != "" {
		embed.AddField("Inventory", inv, false)
	}

	if len(view.Effects) > 0 {
		var active strings.Builder
		for _, eff := range view.Effects {
			fmt.Fprintf(&active, "%s %s • %s left\n", utils.FormatMultiplier(eff.Multiplier), eff.Type, utils.FormatDuration(eff.Remaining))
		}
		embed.AddField("Active effects", active.String(), false)
	}

	var cooldowns strings.Builder
	for _, c := range view.Cooldowns {
		if c.Ready {
			fmt.Fprintf(&cooldowns, "✅ %s ", c.Activity)
		} else {
			fmt.Fprintf(&cooldowns, "⏳ %s (%s) ", c.Activity, c.Wait)
		}
	}
	embed.AddField("Cooldowns", strings.TrimSpace(cooldowns.String()), false)
	return embed
}

// inventorySummary lists the most plentiful items of each domain.
func inventorySummary(inv map[catalog.Domain]map[string]int64) string {
	type item struct {
		name  string
		count int64
	}

	var out strings.Builder
	for _, d := range catalog.GatheringDomains {
		items := make([]item, 0, len(inv[d]))
		for name, n := range inv[d] {
			if n > 0 {
				items = append(items, item{name, n})
			}
		}
		if len(items) == 0 {
			continue
		}
		slices.SortFunc(items, func(a, b item) int {
			if c := cmp.Compare(b.count, a.count); c != 0 {
				return c
			}
			return strings.Compare(a.name, b.name)
		})

		parts := make([]string, 0, inventoryPreview)
		for _, it := range items[:min(len(items), inventoryPreview)] {
			parts = append(parts, fmt.Sprintf("%s ×%s", it.name, utils.FormatNumber(it.count)))
		}
		fmt.Fprintf(&out, "%s %s\n", domainEmoji[d], strings.Join(parts, ", "))
	}
	return out.String()
}
