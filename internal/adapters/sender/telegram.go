package sender

import (
	"bugbot/internal/core/domain"
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

// TelegramSender sends chat replies and direct-message prompts. Button
// presses on prompts arrive as callback queries and are routed back to the
// goroutine awaiting them.
type TelegramSender struct {
	bot     *bot.Bot
	pending *pendingResponses
}

func NewTelegramSender(b *bot.Bot) *TelegramSender {
	return &TelegramSender{bot: b, pending: newPendingResponses()}
}

func (s *TelegramSender) SendMessageReply(ctx context.Context, message *domain.Message, text string) (int, error) {
	m, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: message.ChatID,
		Text:   text,
		ReplyParameters: &models.ReplyParameters{
			MessageID: message.ID,
			ChatID:    message.ChatID,
		},
	})
	if err != nil {
		return 0, err
	}

	return m.ID, nil
}

// SendPrompt delivers a direct message with one row of inline-keyboard
// buttons. On Telegram the user's private chat ID equals their user ID.
func (s *TelegramSender) SendPrompt(ctx context.Context, userID int64, text string,
	options []domain.ResponseOption) (domain.MessageHandle, error) {
	buttons := make([]models.InlineKeyboardButton, len(options))
	for i, option := range options {
		buttons[i] = models.InlineKeyboardButton{Text: option.Label, CallbackData: option.ID}
	}

	m, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: userID,
		Text:   text,
		ReplyMarkup: &models.InlineKeyboardMarkup{
			InlineKeyboard: [][]models.InlineKeyboardButton{buttons},
		},
	})
	if err != nil {
		return domain.MessageHandle{}, fmt.Errorf("%w: %w", domain.ErrDeliveryFailed, err)
	}

	return domain.MessageHandle{ChatID: userID, MessageID: m.ID}, nil
}

// AwaitResponse blocks until the target user presses a button on the prompt
// or the timeout elapses. Other users' presses never resolve the wait.
func (s *TelegramSender) AwaitResponse(ctx context.Context, handle domain.MessageHandle, userID int64,
	timeout time.Duration) (domain.Response, error) {
	wait := s.pending.add(handle, userID)
	defer s.pending.remove(handle)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case response := <-wait.ch:
		return response, nil
	case <-timer.C:
		return domain.Response{}, domain.ErrAwaitTimeout
	case <-ctx.Done():
		return domain.Response{}, ctx.Err()
	}
}

// Acknowledge replaces the prompt's text. Editing without a reply markup
// also drops the buttons.
func (s *TelegramSender) Acknowledge(ctx context.Context, handle domain.MessageHandle, text string) error {
	_, err := s.bot.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    handle.ChatID,
		MessageID: handle.MessageID,
		Text:      text,
	})

	return err
}

func (s *TelegramSender) LookupUsername(ctx context.Context, userID int64) (string, error) {
	chat, err := s.bot.GetChat(ctx, &bot.GetChatParams{ChatID: userID})
	if err != nil {
		return "", fmt.Errorf("looking up user %d: %w", userID, err)
	}

	if chat.Username != "" {
		return chat.Username, nil
	}

	return chat.FirstName, nil
}

// HandleCallback routes button presses on reminder prompts to the session
// waiting on them. Registered as the bot's callback query handler.
func (s *TelegramSender) HandleCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	query := update.CallbackQuery
	if query == nil || query.Message.Message == nil {
		return
	}

	handle := domain.MessageHandle{
		ChatID:    query.Message.Message.Chat.ID,
		MessageID: query.Message.Message.ID,
	}

	if !s.pending.resolve(handle, query.From.ID, query.Data) {
		log.Debug().
			Int64("userId", query.From.ID).
			Int("messageId", handle.MessageID).
			Msg("ignoring callback from non-target user or stale prompt")
	}

	// always answered, otherwise the client shows a spinner forever
	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{CallbackQueryID: query.ID})
	if err != nil {
		log.Warn().Err(err).Msg("failed to answer callback query")
	}
}
