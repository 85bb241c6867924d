package utils

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/gather-bot/gatherbot/config"
	"github.com/disgoorg/gather-bot/gatherbot/economy"
)

// ResponseHandler provides standardized response methods for commands
type ResponseHandler struct{}

var EH = &ResponseHandler{}

// ErrorType represents different categories of errors for consistent handling
type ErrorType int

const (
	// UserError - unknown ids, bad option values
	UserError ErrorType = iota
	// SystemError - storage failures, internal errors
	SystemError
	// NotFoundError - requested pet, tool or location doesn't exist
	NotFoundError
	// BusinessLogicError - cooldowns, not enough coins, game rule violations
	BusinessLogicError
)

func getErrorPrefix(errorType ErrorType) string {
	switch errorType {
	case UserError:
		return "⚠️"
	case SystemError:
		return "🔧"
	case NotFoundError:
		return "🔍"
	case BusinessLogicError:
		return "⏰"
	default:
		return "❌"
	}
}

func getErrorColor(errorType ErrorType) int {
	switch errorType {
	case UserError, BusinessLogicError:
		return config.WarningColor
	case NotFoundError:
		return config.InfoColor
	default:
		return config.ErrorColor
	}
}

// CreateErrorEmbed creates a standard error embed for command events
func (h *ResponseHandler) CreateErrorEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: message,
			Color:       config.ErrorColor,
		}},
	})
}

// CreateSuccessEmbed creates a standard success embed for command events
func (h *ResponseHandler) CreateSuccessEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: message,
			Color:       config.SuccessColor,
		}},
	})
}

func (h *ResponseHandler) CreateInfoEmbed(event *handler.CommandEvent, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: message,
			Color:       config.InfoColor,
		}},
	})
}

// CreateClassifiedError creates an error response with the prefix and color
// of its category.
func (h *ResponseHandler) CreateClassifiedError(event *handler.CommandEvent, errorType ErrorType, message string) error {
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{{
			Description: getErrorPrefix(errorType) + " " + message,
			Color:       getErrorColor(errorType),
		}},
	})
}

func (h *ResponseHandler) CreateUserError(event *handler.CommandEvent, message string) error {
	return h.CreateClassifiedError(event, UserError, message)
}

// CreateSystemError hides the underlying error from the user; callers log it.
func (h *ResponseHandler) CreateSystemError(event *handler.CommandEvent, message string) error {
	return h.CreateClassifiedError(event, SystemError, message)
}

func (h *ResponseHandler) CreateBusinessLogicError(event *handler.CommandEvent, message string) error {
	return h.CreateClassifiedError(event, BusinessLogicError, message)
}

// AutoClassifyError picks the error category from the message text.
func (h *ResponseHandler) AutoClassifyError(event *handler.CommandEvent, message string) error {
	return h.CreateClassifiedError(event, ClassifyMessage(message), message)
}

// ClassifyMessage maps an engine failure message onto an ErrorType.
func ClassifyMessage(message string) ErrorType {
	lowerMsg := strings.ToLower(message)

	switch {
	case strings.Contains(lowerMsg, "not found") ||
		strings.Contains(lowerMsg, "don't have a pet") ||
		strings.Contains(lowerMsg, "don't own"):
		return NotFoundError
	case strings.Contains(lowerMsg, "again in") ||
		strings.Contains(lowerMsg, "not enough") ||
		strings.Contains(lowerMsg, "already") ||
		strings.Contains(lowerMsg, "need") ||
		strings.Contains(lowerMsg, "costs") ||
		strings.Contains(lowerMsg, "must reach") ||
		strings.Contains(lowerMsg, "full"):
		return BusinessLogicError
	case strings.Contains(lowerMsg, "unknown") ||
		strings.Contains(lowerMsg, "invalid"):
		return UserError
	default:
		return SystemError
	}
}

// RespondResult replies to a failed engine result with a classified error
// embed, and to a successful one with the embed built by render.
func (h *ResponseHandler) RespondResult(event *handler.CommandEvent, r economy.Result, render func(embed *discord.EmbedBuilder)) error {
	if !r.Success {
		return h.AutoClassifyError(event, r.Message)
	}

	embed := discord.NewEmbedBuilder().
		SetDescription(r.Message).
		SetColor(config.SuccessColor)
	if render != nil {
		render(embed)
	}
	return event.CreateMessage(discord.MessageCreate{
		Embeds: []discord.Embed{embed.Build()},
	})
}

// HandleEngineError reports a storage failure without leaking its details.
func (h *ResponseHandler) HandleEngineError(event *handler.CommandEvent, action string) error {
	return h.CreateSystemError(event, fmt.Sprintf("Failed to %s. Please try again later.", action))
}
