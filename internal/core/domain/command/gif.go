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

// gifSearchText is the fixed query for motivational GIFs.
const gifSearchText = "I believe in you"

type GifHandler struct {
	gifs       port.GifSearcher
	resolver   *service.NameResolver
	textSender port.TextSender
	command    string
}

func NewGifHandler(gifs port.GifSearcher, resolver *service.NameResolver, textSender port.TextSender,
	command string) *GifHandler {
	return &GifHandler{gifs: gifs, resolver: resolver, textSender: textSender, command: command}
}

func (h *GifHandler) GetCommand() string {
	return h.command
}

func (h *GifHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url, err := h.gifs.SearchGif(ctx, gifSearchText)
	if err != nil {
		l.Error().Err(err).Msg("failed to find a GIF")

		_, err = h.textSender.SendMessageReply(ctx, message,
			"I'm sorry, but I was unable to find a GIF for you... But I still believe in you!")
		if err != nil {
			l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
			return err
		}
		return nil
	}

	reply := fmt.Sprintf("You can do it!\n%s", url)
	if name := h.resolver.Resolve(ctx, message.UserID, message.Username); name != "" {
		reply = fmt.Sprintf("You can do it, %s!\n%s", name, url)
	}

	_, err = h.textSender.SendMessageReply(ctx, message, reply)
	if err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
		return err
	}

	return nil
}
