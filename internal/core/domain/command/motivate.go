package command

import (
	"bugbot/internal/core/domain"
	"bugbot/internal/core/port"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// MotivateHandler replies with a generated motivational message.
type MotivateHandler struct {
	generator  port.TextGenerator
	textSender port.TextSender
	command    string
}

func NewMotivateHandler(generator port.TextGenerator, textSender port.TextSender,
	command string) *MotivateHandler {
	return &MotivateHandler{generator: generator, textSender: textSender, command: command}
}

func (h *MotivateHandler) GetCommand() string {
	return h.command
}

func (h *MotivateHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	prompt := buildMotivationPrompt(ParseCommandArgs(message.Text))

	response, err := h.generator.GenerateFromPrompt(ctx, prompt)
	if err != nil {
		l.Error().Err(err).Msg("failed to generate motivation")

		_, err = h.textSender.SendMessageReply(ctx, message,
			"I'm sorry, but I was unable to generate a response... But I still believe in you!")
		if err != nil {
			l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
			return err
		}
		return nil
	}

	_, err = h.textSender.SendMessageReply(ctx, message, response)
	if err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
		return err
	}

	return nil
}

func buildMotivationPrompt(about string) string {
	if about != "" {
		return fmt.Sprintf(
			"Write me a strongly motivational message about %s that will make me believe in myself.", about)
	}

	return "Write me a strongly motivational message that will make me believe in myself."
}
