package command

import (
	"bugbot/internal/core/domain"
	"bugbot/internal/core/port"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CallMeHandler lets users pick the nickname the bot addresses them by.
type CallMeHandler struct {
	nicknames  port.NicknameStore
	textSender port.TextSender
	command    string
}

func NewCallMeHandler(nicknames port.NicknameStore, textSender port.TextSender, command string) *CallMeHandler {
	return &CallMeHandler{nicknames: nicknames, textSender: textSender, command: command}
}

func (h *CallMeHandler) GetCommand() string {
	return h.command
}

func (h *CallMeHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	fields := strings.Fields(ParseCommandArgs(message.Text))

	var subcommand string
	if len(fields) > 0 {
		subcommand = strings.ToLower(fields[0])
	}

	var reply string
	switch subcommand {
	case "set":
		reply = h.setNickname(ctx, l, message.UserID, strings.Join(fields[1:], " "))
	case "clear":
		reply = h.clearNickname(ctx, l, message.UserID)
	default:
		l.Warn().Str("subcommand", subcommand).Msg("unknown subcommand")
		reply = fmt.Sprintf("Tell me what to call you with \"%s set <name>\", or use \"%s clear\".",
			h.command, h.command)
	}

	_, err := h.textSender.SendMessageReply(ctx, message, reply)
	if err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
		return err
	}

	return nil
}

func (h *CallMeHandler) setNickname(ctx context.Context, l zerolog.Logger, userID int64, nickname string) string {
	if nickname == "" {
		return fmt.Sprintf("Tell me what to call you with \"%s set <name>\".", h.command)
	}

	l.Info().Int64("userId", userID).Msg("updating nickname")

	if err := h.nicknames.Set(ctx, userID, nickname); err != nil {
		l.Error().Err(err).Msg("failed to update nickname")
		return "I'm sorry, but I was unable to update your nickname!"
	}

	return fmt.Sprintf("You got it, %s!", nickname)
}

func (h *CallMeHandler) clearNickname(ctx context.Context, l zerolog.Logger, userID int64) string {
	l.Info().Int64("userId", userID).Msg("clearing nickname")

	cleared, err := h.nicknames.Clear(ctx, userID)
	if err != nil {
		l.Error().Err(err).Msg("failed to clear nickname")
		return "I'm sorry, but I was unable to clear your nickname!"
	}

	if cleared == 0 {
		return "You don't have a nickname to clear!"
	}

	return "Cleared!"
}
