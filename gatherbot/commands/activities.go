package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/gather-bot/gatherbot"
	"github.com/disgoorg/gather-bot/gatherbot/account"
	"github.com/disgoorg/gather-bot/gatherbot/config"
	"github.com/disgoorg/gather-bot/gatherbot/utils"
)

var Work = discord.SlashCommandCreate{
	Name:        "work",
	Description: "💼 Work a shift for coins and work xp",
}

var Daily = discord.SlashCommandCreate{
	Name:        "daily",
	Description: "📅 Claim your daily reward and keep your streak going",
}

var Challenge = discord.SlashCommandCreate{
	Name:        "challenge",
	Description: "🏆 Take on a random challenge",
}

var Vote = discord.SlashCommandCreate{
	Name:        "vote",
	Description: "🗳️ Claim your vote reward",
}

var Beg = discord.SlashCommandCreate{
	Name:        "beg",
	Description: "🙏 Ask strangers for spare coins",
}

var Crime = discord.SlashCommandCreate{
	Name:        "crime",
	Description: "🦹 Commit a petty crime. You might get caught",
}

var Search = discord.SlashCommandCreate{
	Name:        "search",
	Description: "🔍 Search a location for loose coins",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:         "location",
			Description:  "Where to search",
			Required:     true,
			Autocomplete: true,
		},
	},
}

func WorkHandler(b *gatherbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return withKey(e, func(ctx context.Context, key account.Key) error {
			res, err := b.Engine.PerformWork(ctx, key)
			if err != nil {
				return storeFailure(e, "work", key, err)
			}
			return utils.EH.RespondResult(e, res.Result, func(embed *discord.EmbedBuilder) {
				embed.
					SetTitle("💼 Work").
					AddField("Job", res.Job.Name, true).
					AddField("Balance", utils.FormatCoins(res.Balance), true)
				addSkillField(embed, res.Skill)
			})
		})
	}
}

func DailyHandler(b *gatherbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return withKey(e, func(ctx context.Context, key account.Key) error {
			res, err := b.Engine.ClaimDaily(ctx, key)
			if err != nil {
				return storeFailure(e, "claim your daily reward", key, err)
			}
			return utils.EH.RespondResult(e, res.Result, func(embed *discord.EmbedBuilder) {
				embed.
					SetTitle("📅 Daily Reward Claimed!").
					AddField("Streak", fmt.Sprintf("🔥 %d", res.Streak), true).
					AddField("Streak Bonus", utils.FormatCoins(res.Bonus), true).
					AddField("Balance", utils.FormatCoins(res.Balance), true)
			})
		})
	}
}

func ChallengeHandler(b *gatherbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return withKey(e, func(ctx context.Context, key account.Key) error {
			res, err := b.Engine.PerformChallenge(ctx, key)
			if err != nil {
				return storeFailure(e, "complete the challenge", key, err)
			}
			return utils.EH.RespondResult(e, res.Result, func(embed *discord.EmbedBuilder) {
				embed.
					SetTitle("🏆 Challenge Complete").
					AddField("Tier", utils.Title(res.Challenge.Tier), true).
					AddField("Balance", utils.FormatCoins(res.Balance), true)
				addSkillField(embed, res.Skill)
			})
		})
	}
}

func VoteHandler(b *gatherbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return withKey(e, func(ctx context.Context, key account.Key) error {
			res, err := b.Engine.ClaimVoteReward(ctx, key)
			if err != nil {
				return storeFailure(e, "claim your vote reward", key, err)
			}
			return utils.EH.RespondResult(e, res.Result, func(embed *discord.EmbedBuilder) {
				embed.
					SetTitle("🗳️ Vote Reward").
					AddField("Balance", utils.FormatCoins(res.Balance), true)
				addSkillField(embed, res.Skill)
			})
		})
	}
}

func BegHandler(b *gatherbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return withKey(e, func(ctx context.Context, key account.Key) error {
			res, err := b.Engine.Beg(ctx, key)
			if err != nil {
				return storeFailure(e, "beg", key, err)
			}
			return utils.EH.RespondResult(e, res.Result, func(embed *discord.EmbedBuilder) {
				embed.AddField("Balance", utils.FormatCoins(res.Balance), true)
				if res.Coins == 0 {
					embed.SetColor(config.InfoColor)
				}
			})
		})
	}
}

func CrimeHandler(b *gatherbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return withKey(e, func(ctx context.Context, key account.Key) error {
			res, err := b.Engine.Crime(ctx, key)
			if err != nil {
				return storeFailure(e, "commit a crime", key, err)
			}
			return utils.EH.RespondResult(e, res.Result, func(embed *discord.EmbedBuilder) {
				embed.
					SetTitle("🦹 "+res.Crime.Name).
					AddField("Balance", utils.FormatCoins(res.Balance), true)
				if res.Caught {
					embed.SetColor(config.ErrorColor)
				}
			})
		})
	}
}

func SearchHandler(b *gatherbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		location := strings.TrimSpace(e.SlashCommandInteractionData().String("location"))
		return withKey(e, func(ctx context.Context, key account.Key) error {
			res, err := b.Engine.Search(ctx, key, location)
			if err != nil {
				return storeFailure(e, "search", key, err)
			}
			return utils.EH.RespondResult(e, res.Result, func(embed *discord.EmbedBuilder) {
				embed.
					SetTitle("🔍 "+res.Location.Name).
					AddField("Balance", utils.FormatCoins(res.Balance), true)
			})
		})
	}
}

func SearchAutocomplete(b *gatherbot.Bot) handler.AutocompleteHandler {
	return func(e *handler.AutocompleteEvent) error {
		query, ok := focusedString(e, "location")
		if !ok {
			return e.AutocompleteResult([]discord.AutocompleteChoice{})
		}
		return e.AutocompleteResult(choices(b.Catalog.SuggestLocations(query)))
	}
}

// focusedString returns the text typed so far into the focused option when
// that option is name.
func focusedString(e *handler.AutocompleteEvent, name string) (string, bool) {
	focused := e.Data.Focused()
	if focused.Name != name {
		return "", false
	}
	var s string
	if focused.Value != nil {
		if err := json.Unmarshal(focused.Value, &s); err != nil {
			return "", false
		}
	}
	return s, true
}
