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
	"github.com/disgoorg/paginator"
)

var Pet = discord.SlashCommandCreate{
	Name:        "pet",
	Description: "🐾 Hatch, feed and manage your pets",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "hatch",
			Description: "Buy an egg and hatch it",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:         "egg",
					Description:  "Egg to hatch",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "feed",
			Description: "Feed a pet to restore hunger and grow it",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionInt{
					Name:        "pet",
					Description: "Pet id, see /pet view",
					Required:    true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "equip",
			Description: "Equip a pet so it boosts your actions",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionInt{
					Name:        "pet",
					Description: "Pet id, see /pet view",
					Required:    true,
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "view",
			Description: "List your pets",
		},
	},
}

func PetHandler(b *gatherbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		if data.SubCommandName == nil {
			return utils.EH.CreateUserError(e, "Invalid subcommand")
		}

		switch *data.SubCommandName {
		case "hatch":
			return hatchPet(b, e, strings.TrimSpace(data.String("egg")))
		case "feed":
			return feedPet(b, e, int64(data.Int("pet")))
		case "equip":
			return equipPet(b, e, int64(data.Int("pet")))
		case "view":
			return viewPets(b, e)
		default:
			return utils.EH.CreateUserError(e, "Invalid subcommand")
		}
	}
}

func hatchPet(b *gatherbot.Bot, e *handler.CommandEvent, eggID string) error {
	return withKey(e, func(ctx context.Context, key account.Key) error {
		res, err := b.Engine.HatchPet(ctx, key, eggID)
		if err != nil {
			return storeFailure(e, "hatch your egg", key, err)
		}
		return utils.EH.RespondResult(e, res.Result, func(embed *discord.EmbedBuilder) {
			embed.
				SetTitle("🥚 Egg Hatched!").
				SetColor(rarityColor(res.Species.Rarity)).
				AddField("Pet ID", fmt.Sprintf("#%d", res.Pet.ID), true).
				AddField("Boost", formatBoost(res.Pet.Boost), true).
				AddField("Balance", utils.FormatCoins(res.Balance), true)
			if res.Equipped {
				embed.SetFooterText("Equipped automatically")
			}
		})
	})
}

func feedPet(b *gatherbot.Bot, e *handler.CommandEvent, petID int64) error {
	return withKey(e, func(ctx context.Context, key account.Key) error {
		res, err := b.Engine.FeedPet(ctx, key, petID)
		if err != nil {
			return storeFailure(e, "feed your pet", key, err)
		}
		return utils.EH.RespondResult(e, res.Result, func(embed *discord.EmbedBuilder) {
			embed.
				SetTitle(fmt.Sprintf("🍖 %s #%d", speciesName(b.Catalog, res.Pet.Type), res.Pet.ID)).
				AddField("Hunger", fmt.Sprintf("%d", res.Pet.Hunger), true).
				AddField("Level", fmt.Sprintf("%d %s", res.Growth.NewLevel,
					utils.ProgressBar(res.Growth.CurrentXP, res.Growth.RequiredXP, 8)), true).
				AddField("Boost", formatBoost(res.Growth.BoostAfter), true).
				AddField("Balance", utils.FormatCoins(res.Balance), true)
		})
	})
}

func equipPet(b *gatherbot.Bot, e *handler.CommandEvent, petID int64) error {
	return withKey(e, func(ctx context.Context, key account.Key) error {
		res, err := b.Engine.EquipPet(ctx, key, petID)
		if err != nil {
			return storeFailure(e, "equip your pet", key, err)
		}
		return utils.EH.RespondResult(e, res.Result, func(embed *discord.EmbedBuilder) {
			embed.AddField("Boost", formatBoost(res.Pet.Boost), true)
		})
	})
}

func viewPets(b *gatherbot.Bot, e *handler.CommandEvent) error {
	return withKey(e, func(ctx context.Context, key account.Key) error {
		view, err := b.Engine.ViewPets(ctx, key)
		if err != nil {
			return storeFailure(e, "load your pets", key, err)
		}
		if len(view.Pets) == 0 {
			return utils.EH.CreateInfoEmbed(e, "You don't have any pets yet. Hatch one with `/pet hatch`.")
		}

		totalPages := (len(view.Pets) + config.PetsPerPage - 1) / config.PetsPerPage
		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				start := page * config.PetsPerPage
				end := min(start+config.PetsPerPage, len(view.Pets))

				var description strings.Builder
				for _, p := range view.Pets[start:end] {
					description.WriteString(formatPetLine(b.Catalog, p, view.EquippedPetID))
					description.WriteByte('\n')
				}

				embed.
					SetTitle(fmt.Sprintf("🐾 %s's Pets", e.User().Username)).
					SetDescription(description.String()).
					SetColor(config.EmbedDefaultColor).
					SetFooterText(fmt.Sprintf("Page %d/%d • %d pet(s) • %s", page+1, totalPages, len(view.Pets), utils.FormatCoins(view.Coins)))
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	})
}

func speciesName(cat *catalog.Catalog, id string) string {
	if species, ok := cat.Species(id); ok {
		return species.Emoji + " " + species.Name
	}
	return id
}

func formatPetLine(cat *catalog.Catalog, p account.Pet, equipped *int64) string {
	name := speciesName(cat, p.Type)
	line := fmt.Sprintf("`#%d` **%s** Lv.%d • hunger %d • %s", p.ID, name, p.Level, p.Hunger, formatBoost(p.Boost))
	if equipped != nil && *equipped == p.ID {
		line += " • ✅ equipped"
	}
	return line
}

func formatBoost(boost catalog.Boost) string {
	switch boost.Type {
	case catalog.BoostRarity:
		return "rarity " + utils.FormatPercent(boost.Value)
	case catalog.BoostCooldown:
		return "cooldown " + utils.FormatMultiplier(boost.Value)
	default:
		return string(boost.Type) + " " + utils.FormatMultiplier(boost.Value)
	}
}

func PetAutocomplete(b *gatherbot.Bot) handler.AutocompleteHandler {
	return func(e *handler.AutocompleteEvent) error {
		query, ok := focusedString(e, "egg")
		if !ok {
			return e.AutocompleteResult([]discord.AutocompleteChoice{})
		}
		return e.AutocompleteResult(choices(b.Catalog.SuggestEggs(query)))
	}
}
