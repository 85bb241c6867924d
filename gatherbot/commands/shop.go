package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/gather-bot/gatherbot"
	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
	"github.com/disgoorg/gather-bot/gatherbot/config"
	"github.com/disgoorg/gather-bot/gatherbot/utils"
)

var Shop = discord.SlashCommandCreate{
	Name:        "shop",
	Description: "🛒 Browse tools, effects and eggs",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "tools",
			Description: "Gathering tools for sale",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "effects",
			Description: "Consumables that boost coins or xp for a while",
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "eggs",
			Description: "Pet eggs, hatch them with /pet hatch",
		},
	},
}

var Buy = discord.SlashCommandCreate{
	Name:        "buy",
	Description: "💰 Buy something from the shop",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "tool",
			Description: "Buy and equip a gathering tool",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:         "tool",
					Description:  "Tool to buy",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "effect",
			Description: "Buy a consumable and activate it",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:         "effect",
					Description:  "Consumable to use",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
	},
}

var Equip = discord.SlashCommandCreate{
	Name:        "equip",
	Description: "🧰 Equip something you own",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "tool",
			Description: "Switch to a tool you own",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:         "tool",
					Description:  "Tool to equip",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
	},
}

func ShopHandler(b *gatherbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		if data.SubCommandName == nil {
			return utils.EH.CreateUserError(e, "Invalid subcommand")
		}

		var embed *discord.EmbedBuilder
		switch *data.SubCommandName {
		case "tools":
			embed = toolShopEmbed(b.Catalog)
		case "effects":
			embed = effectShopEmbed(b.Catalog)
		case "eggs":
			embed = eggShopEmbed(b.Catalog)
		default:
			return utils.EH.CreateUserError(e, "Invalid subcommand")
		}
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed.Build()},
		})
	}
}

func toolShopEmbed(cat *catalog.Catalog) *discord.EmbedBuilder {
	embed := discord.NewEmbedBuilder().
		SetTitle("🛒 Tool Shop").
		SetDescription("Buy with `/buy tool`. Better tools roll rarer finds, pay more and cool down faster.").
		SetColor(config.EmbedDefaultColor)
	for _, d := range catalog.GatheringDomains {
		var lines strings.Builder
		for _, t := range cat.ToolsFor(d) {
			price := utils.FormatCoins(t.Price)
			if t.Price == 0 {
				price = "starter"
			}
			fmt.Fprintf(&lines, "**%s** `%s` • %s • power %d • %s • %s cooldown\n",
				t.Name, t.ID, price, t.Power, utils.FormatMultiplier(t.Multiplier), utils.FormatDuration(t.Cooldown()))
		}
		embed.AddField(domainEmoji[d]+" "+utils.Title(string(d)), lines.String(), false)
	}
	return embed
}

func effectShopEmbed(cat *catalog.Catalog) *discord.EmbedBuilder {
	var lines strings.Builder
	for _, c := range cat.Consumables() {
		fmt.Fprintf(&lines, "**%s** `%s` • %s • %s %s for %s\n",
			c.Name, c.ID, utils.FormatCoins(c.Price), utils.FormatMultiplier(c.Multiplier), c.EffectType, utils.FormatDuration(c.Duration()))
	}
	return discord.NewEmbedBuilder().
		SetTitle("🧪 Effects").
		SetDescription(lines.String()).
		SetFooter("Buy with /buy effect. Effects of the same type stack.", "").
		SetColor(config.EmbedDefaultColor)
}

func eggShopEmbed(cat *catalog.Catalog) *discord.EmbedBuilder {
	var lines strings.Builder
	for _, egg := range cat.Eggs() {
		names := make([]string, 0, len(egg.AllowedSpecies))
		for _, id := range egg.AllowedSpecies {
			names = append(names, speciesName(cat, id))
		}
		fmt.Fprintf(&lines, "**%s** `%s` • %s • %s\n", egg.Name, egg.ID, utils.FormatCoins(egg.Price), strings.Join(names, ", "))
	}
	return discord.NewEmbedBuilder().
		SetTitle("🥚 Eggs").
		SetDescription(lines.String()).
		SetFooter("Hatch with /pet hatch.", "").
		SetColor(config.EmbedDefaultColor)
}

func BuyHandler(b *gatherbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		if data.SubCommandName == nil {
			return utils.EH.CreateUserError(e, "Invalid subcommand")
		}

		switch *data.SubCommandName {
		case "tool":
			toolID := strings.TrimSpace(data.String("tool"))
			return withKey(e, func(ctx context.Context, key account.Key) error {
				res, err := b.Engine.BuyTool(ctx, key, toolID)
				if err != nil {
					return storeFailure(e, "buy the tool", key, err)
				}
				return utils.EH.RespondResult(e, res.Result, func(embed *discord.EmbedBuilder) {
					embed.
						SetColor(rarityColor(res.Tool.Rarity)).
						AddField("Balance", utils.FormatCoins(res.Balance), true)
				})
			})
		case "effect":
			effectID := strings.TrimSpace(data.String("effect"))
			return withKey(e, func(ctx context.Context, key account.Key) error {
				res, err := b.Engine.UseConsumable(ctx, key, effectID)
				if err != nil {
					return storeFailure(e, "use the consumable", key, err)
				}
				return utils.EH.RespondResult(e, res.Result, func(embed *discord.EmbedBuilder) {
					embed.
						AddField("Expires", discord.FormattedTimestampMention(res.Effect.Expiry.Unix(), discord.TimestampStyleRelative), true).
						AddField("Balance", utils.FormatCoins(res.Balance), true)
				})
			})
		default:
			return utils.EH.CreateUserError(e, "Invalid subcommand")
		}
	}
}

func EquipHandler(b *gatherbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		toolID := strings.TrimSpace(e.SlashCommandInteractionData().String("tool"))
		return withKey(e, func(ctx context.Context, key account.Key) error {
			res, err := b.Engine.EquipTool(ctx, key, toolID)
			if err != nil {
				return storeFailure(e, "equip the tool", key, err)
			}
			return utils.EH.RespondResult(e, res.Result, func(embed *discord.EmbedBuilder) {
				embed.AddField("Cooldown", utils.FormatDuration(res.Tool.Cooldown()), true)
			})
		})
	}
}

// BuyAutocomplete serves both /buy and /equip: the focused option's name
// tells which catalog to search.
func BuyAutocomplete(b *gatherbot.Bot) handler.AutocompleteHandler {
	return func(e *handler.AutocompleteEvent) error {
		if query, ok := focusedString(e, "tool"); ok {
			return e.AutocompleteResult(choices(b.Catalog.SuggestTools(query)))
		}
		if query, ok := focusedString(e, "effect"); ok {
			return e.AutocompleteResult(choices(b.Catalog.SuggestConsumables(query)))
		}
		return e.AutocompleteResult([]discord.AutocompleteChoice{})
	}
}
