package command

import (
	"bugbot/internal/core/domain"
	"bugbot/internal/core/port"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// BugMeHandler creates reminders. The poller keeps messaging the user about
// them until they confirm completion.
type BugMeHandler struct {
	reminders  port.ReminderStore
	textSender port.TextSender
	command    string
}

func NewBugMeHandler(reminders port.ReminderStore, textSender port.TextSender, command string) *BugMeHandler {
	return &BugMeHandler{reminders: reminders, textSender: textSender, command: command}
}

func (h *BugMeHandler) GetCommand() string {
	return h.command
}

func (h *BugMeHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Int("messageId", message.ID).
		Int64("chatId", message.ChatID).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	interval, what := parseBugMeArgs(ParseCommandArgs(message.Text))

	reminder, err := h.reminders.Create(ctx, message.UserID, what, interval)
	if errors.Is(err, domain.ErrIntervalOutOfRange) {
		_, err = h.textSender.SendMessageReply(ctx, message,
			fmt.Sprintf("That interval won't work, please pick one between %d and %d minutes.",
				domain.MinIntervalMinutes, domain.MaxIntervalMinutes))
		if err != nil {
			l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
			return err
		}
		return nil
	}
	if err != nil {
		l.Error().Err(err).Msg("failed to save reminder")

		_, err = h.textSender.SendMessageReply(ctx, message,
			"I'm sorry, but I was unable to save your reminder!")
		if err != nil {
			l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
		}
		return err
	}

	l.Info().Str("reminderId", reminder.ID).Int("intervalMinutes", interval).Msg("reminder added")

	_, err = h.textSender.SendMessageReply(ctx, message,
		fmt.Sprintf("Set reminder! I'll bug you about it every %d minutes.", reminder.IntervalMinutes))
	if err != nil {
		l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
		return err
	}

	return nil
}

// parseBugMeArgs splits "/bugme [interval] [what...]" arguments. A leading
// integer is the interval in minutes, everything else is the description.
func parseBugMeArgs(args string) (int, string) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return domain.DefaultIntervalMinutes, ""
	}

	if interval, err := strconv.Atoi(fields[0]); err == nil {
		return interval, strings.Join(fields[1:], " ")
	}

	return domain.DefaultIntervalMinutes, strings.Join(fields, " ")
}
