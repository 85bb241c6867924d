package commands

import (
	"context"
	"log/slog"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/gather-bot/gatherbot"
	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/catalog"
	"github.com/disgoorg/gather-bot/gatherbot/config"
	"github.com/disgoorg/gather-bot/gatherbot/handlers"
	"github.com/disgoorg/gather-bot/gatherbot/utils"
)

var Commands = []discord.ApplicationCommandCreate{
	Fish,
	Mine,
	Farm,
	Work,
	Daily,
	Challenge,
	Vote,
	Beg,
	Crime,
	Search,
	Pet,
	Shop,
	Buy,
	Equip,
	Prestige,
	Profile,
}

// Register wires every slash command and autocomplete route onto h.
func Register(h handler.Router, b *gatherbot.Bot) {
	h.Command("/fish", handlers.WrapWithLogging("fish", FishHandler(b)))
	h.Command("/mine", handlers.WrapWithLogging("mine", MineHandler(b)))
	h.Command("/farm", handlers.WrapWithLogging("farm", FarmHandler(b)))

	h.Command("/work", handlers.WrapWithLogging("work", WorkHandler(b)))
	h.Command("/daily", handlers.WrapWithLogging("daily", DailyHandler(b)))
	h.Command("/challenge", handlers.WrapWithLogging("challenge", ChallengeHandler(b)))
	h.Command("/vote", handlers.WrapWithLogging("vote", VoteHandler(b)))
	h.Command("/beg", handlers.WrapWithLogging("beg", BegHandler(b)))
	h.Command("/crime", handlers.WrapWithLogging("crime", CrimeHandler(b)))
	h.Command("/search", handlers.WrapWithLogging("search", SearchHandler(b)))
	h.Autocomplete("/search", handlers.WrapAutocompleteWithRecover("search", SearchAutocomplete(b)))

	h.Command("/pet", handlers.WrapWithLogging("pet", PetHandler(b)))
	h.Autocomplete("/pet", handlers.WrapAutocompleteWithRecover("pet", PetAutocomplete(b)))

	h.Command("/shop", handlers.WrapWithLogging("shop", ShopHandler(b)))
	h.Command("/buy", handlers.WrapWithLogging("buy", BuyHandler(b)))
	h.Autocomplete("/buy", handlers.WrapAutocompleteWithRecover("buy", BuyAutocomplete(b)))
	h.Command("/equip", handlers.WrapWithLogging("equip", EquipHandler(b)))
	h.Autocomplete("/equip", handlers.WrapAutocompleteWithRecover("equip", BuyAutocomplete(b)))

	h.Command("/prestige", handlers.WrapWithLogging("prestige", PrestigeHandler(b)))
	h.Command("/profile", handlers.WrapWithLogging("profile", ProfileHandler(b)))
}

// accountKey scopes the caller's account to the guild the command ran in.
// Economy commands are guild-only, so a missing guild means a DM.
func accountKey(e *handler.CommandEvent) (account.Key, bool) {
	guildID := e.GuildID()
	if guildID == nil {
		return account.Key{}, false
	}
	return account.NewKey(*guildID, e.User().ID), true
}

func engineContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), config.PersistTimeout)
}

// withKey resolves the caller's account key and hands it to fn, replying
// with a user error outside of a guild.
func withKey(e *handler.CommandEvent, fn func(ctx context.Context, key account.Key) error) error {
	key, ok := accountKey(e)
	if !ok {
		return utils.EH.CreateUserError(e, "Economy commands can only be used in a server.")
	}
	ctx, cancel := engineContext()
	defer cancel()
	return fn(ctx, key)
}

// storeFailure logs an engine error and tells the user their action did not
// save.
func storeFailure(e *handler.CommandEvent, action string, key account.Key, err error) error {
	slog.Error("Economy action failed",
		slog.String("type", "db"),
		slog.String("action", action),
		slog.String("account", key.String()),
		slog.Any("error", err),
	)
	return utils.EH.HandleEngineError(e, action)
}

func rarityColor(r catalog.Rarity) int {
	switch r {
	case catalog.Rare:
		return config.RarityRareColor
	case catalog.Epic:
		return config.RarityEpicColor
	case catalog.Legendary:
		return config.RarityLegendaryColor
	case catalog.Mythic:
		return config.RarityMythicColor
	default:
		return config.RarityCommonColor
	}
}

var domainEmoji = map[catalog.Domain]string{
	catalog.Fishing: "🎣",
	catalog.Mining:  "⛏️",
	catalog.Farming: "🌾",
	catalog.Work:    "💼",
}

func choices(suggestions []catalog.Suggestion) []discord.AutocompleteChoice {
	out := make([]discord.AutocompleteChoice, 0, min(len(suggestions), config.MaxChoices))
	for _, s := range suggestions {
		if len(out) == config.MaxChoices {
			break
		}
		out = append(out, discord.AutocompleteChoiceString{Name: s.Name, Value: s.ID})
	}
	return out
}
