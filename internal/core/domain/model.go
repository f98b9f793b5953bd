package domain

import (
	"fmt"
	"time"
)

const (
	MinIntervalMinutes     = 1
	MaxIntervalMinutes     = 10080 // 7 days
	DefaultIntervalMinutes = 60
)

// Reminder is a persisted nag. The poller keeps prompting its owner until
// they confirm the task is done, which deletes the record.
type Reminder struct {
	ID              string
	UserID          int64
	What            string
	IntervalMinutes int
	LastNotified    time.Time
	Started         time.Time
}

// NextNotify returns the earliest time the reminder should fire again.
func (r *Reminder) NextNotify() time.Time {
	return r.LastNotified.Add(time.Duration(r.IntervalMinutes) * time.Minute)
}

// Due reports whether the reminder should fire at the given time. Hitting
// the boundary exactly counts as due.
func (r *Reminder) Due(now time.Time) bool {
	return !r.NextNotify().After(now)
}

// ValidateInterval checks a reminder interval against the allowed bounds.
func ValidateInterval(minutes int) error {
	if minutes < MinIntervalMinutes || minutes > MaxIntervalMinutes {
		return fmt.Errorf("%w: %d minutes, allowed range is [%d, %d]",
			ErrIntervalOutOfRange, minutes, MinIntervalMinutes, MaxIntervalMinutes)
	}

	return nil
}

type Nickname struct {
	UserID   int64
	Nickname string
}

type Message struct {
	ID       int
	ChatID   int64
	UserID   int64
	Username string
	Text     string
}

// ResponseOption is one interactive button attached to a direct message.
type ResponseOption struct {
	ID    string
	Label string
}

// MessageHandle identifies a delivered direct message so a later response
// can be matched back to it.
type MessageHandle struct {
	ChatID    int64
	MessageID int
}

// Response is a button press on a previously delivered direct message.
type Response struct {
	OptionID string
	UserID   int64
}

type SessionState string

const (
	SessionCreated            SessionState = "created"
	SessionSent               SessionState = "sent"
	SessionDone               SessionState = "done"
	SessionNotYetAcknowledged SessionState = "not_yet"
	SessionTimedOut           SessionState = "timed_out"
	SessionDeliveryFailed     SessionState = "delivery_failed"
)
