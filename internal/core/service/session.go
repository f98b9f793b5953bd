package service

import (
	"bugbot/internal/core/domain"
	"bugbot/internal/core/port"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ResponseTimeout is how long a session waits for the user to press a button.
const ResponseTimeout = 60 * time.Minute

const (
	OptionDone   = "done"
	OptionNotYet = "notYet"
)

const (
	ackDone   = "Awesome! I've cleared the reminder. Great job!"
	ackNotYet = "I believe in you! I'll remind you again in a bit."
)

// NotificationSession runs the notify-and-await protocol for one due
// reminder: deliver a prompt, mark the reminder notified, wait for the
// owner's response and apply the resulting store mutation. One session is
// bound to one reminder and ends in exactly one terminal state.
type NotificationSession struct {
	id       uuid.UUID
	reminder domain.Reminder
	store    port.ReminderStore
	sender   port.DirectSender
	names    *NameResolver
	timeout  time.Duration
	state    domain.SessionState
}

func NewNotificationSession(reminder domain.Reminder, store port.ReminderStore, sender port.DirectSender,
	names *NameResolver, timeout time.Duration) *NotificationSession {
	return &NotificationSession{
		id:       uuid.Must(uuid.NewV4()),
		reminder: reminder,
		store:    store,
		sender:   sender,
		names:    names,
		timeout:  timeout,
		state:    domain.SessionCreated,
	}
}

func (s *NotificationSession) State() domain.SessionState {
	return s.state
}

// Run drives the session to a terminal state and returns it.
func (s *NotificationSession) Run(ctx context.Context) domain.SessionState {
	l := log.With().
		Str("sessionId", s.id.String()).
		Str("reminderId", s.reminder.ID).
		Int64("userId", s.reminder.UserID).
		Logger()

	options := []domain.ResponseOption{
		{ID: OptionDone, Label: "Done!"},
		{ID: OptionNotYet, Label: "Not yet"},
	}

	handle, err := s.sender.SendPrompt(ctx, s.reminder.UserID, s.buildPrompt(ctx), options)
	if err != nil {
		// lastNotified is left alone, the reminder stays due and the
		// delivery is retried on the next scan.
		l.Error().Err(err).Msg("failed to deliver reminder prompt")
		s.state = domain.SessionDeliveryFailed
		return s.state
	}

	s.state = domain.SessionSent

	// Touch before awaiting so the next scan does not pick this reminder
	// up again while the session is still pending.
	if err := s.store.TouchNotified(ctx, s.reminder.ID, time.Now()); err != nil {
		l.Warn().Err(err).Msg("failed to update lastNotified")
	}

	response, err := s.sender.AwaitResponse(ctx, handle, s.reminder.UserID, s.timeout)
	if err != nil {
		if errors.Is(err, domain.ErrAwaitTimeout) {
			l.Info().Msg("no response before timeout, reminder will fire again after one more interval")
		} else {
			l.Error().Err(err).Msg("response wait failed")
		}
		s.state = domain.SessionTimedOut
		return s.state
	}

	s.resolve(ctx, l, handle, response)
	return s.state
}

func (s *NotificationSession) resolve(ctx context.Context, l zerolog.Logger,
	handle domain.MessageHandle, response domain.Response) {
	switch response.OptionID {
	case OptionDone:
		if err := s.store.Delete(ctx, s.reminder.ID); err != nil {
			// the reminder survives and nags again on the next scan
			l.Error().Err(err).Msg("failed to delete completed reminder")
		}
		s.acknowledge(ctx, l, handle, ackDone)
		s.state = domain.SessionDone
	case OptionNotYet:
		s.acknowledge(ctx, l, handle, ackNotYet)
		s.state = domain.SessionNotYetAcknowledged
	default:
		l.Warn().Str("option", response.OptionID).Msg("unknown response option")
		s.state = domain.SessionNotYetAcknowledged
	}
}

func (s *NotificationSession) acknowledge(ctx context.Context, l zerolog.Logger,
	handle domain.MessageHandle, text string) {
	if err := s.sender.Acknowledge(ctx, handle, text); err != nil {
		l.Warn().Err(err).Msg("failed to acknowledge response")
	}
}

func (s *NotificationSession) buildPrompt(ctx context.Context) string {
	task := "Have you completed the task yet?"
	if s.reminder.What != "" {
		task = fmt.Sprintf("Have you completed %q yet?", s.reminder.What)
	}

	name := s.names.Resolve(ctx, s.reminder.UserID, "")
	if name != "" {
		return fmt.Sprintf("Hey, %s! %s", name, task)
	}

	return task
}
