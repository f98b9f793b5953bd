package command

import (
	"bugbot/internal/core/domain"
	"bugbot/internal/core/port"
	"bugbot/internal/core/service"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type HelloHandler struct {
	resolver   *service.NameResolver
	textSender port.TextSender
	command    string
}

func NewHelloHandler(resolver *service.NameResolver, textSender port.TextSender, command string) *HelloHandler {
	return &HelloHandler{resolver: resolver, textSender: textSender, command: command}
}

func (h *HelloHandler) GetCommand() string {
	return h.command
}

func (h *HelloHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	reply := "Hello, whoever you are!"
	if name := h.resolver.Resolve(ctx, message.UserID, message.Username); name != "" {
		reply = fmt.Sprintf("Hello, %s!", name)
	}

	_, err := h.textSender.SendMessageReply(ctx, message, reply)
	if err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
		return err
	}

	return nil
}
