package handler

import (
	"bugbot/internal/core/domain"
	"bugbot/internal/core/domain/command"
	"bugbot/internal/core/port"
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

type CommandHandler struct {
	commandRegistry port.CommandRegistry
	timeout         time.Duration
}

func NewCommandHandler(commandRegistry port.CommandRegistry, timeout time.Duration) *CommandHandler {
	return &CommandHandler{commandRegistry: commandRegistry, timeout: timeout}
}

// Handle dispatches an incoming message to its registered command handler.
// The handler runs detached so a slow command cannot block update intake.
func (c *CommandHandler) Handle(_ context.Context, _ *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	log.Debug().Str("message", update.Message.Text).Msg("received command")

	cmd := command.ParseCommand(update.Message.Text)

	commandHandler, err := c.commandRegistry.Get(cmd)
	if err != nil {
		log.Debug().Str("command", cmd).Msg("no handler for command")
		return
	}

	var userID int64
	var username string

	if update.Message.From != nil {
		userID = update.Message.From.ID
		username = getUserNameOrFirstName(update.Message.From)
	}

	message := &domain.Message{
		ID:       update.Message.ID,
		ChatID:   update.Message.Chat.ID,
		UserID:   userID,
		Username: username,
		Text:     update.Message.Text,
	}

	go func() {
		err := commandHandler.Respond(context.Background(), c.timeout, message)
		if err != nil {
			log.Err(err).Str("command", cmd).Msg("failed to respond to command")
		}
	}()
}

func getUserNameOrFirstName(user *models.User) string {
	if user.Username == "" {
		return user.FirstName
	}

	return user.Username
}
