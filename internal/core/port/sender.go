package port

import (
	"bugbot/internal/core/domain"
	"context"
	"time"
)

type TextSender interface {
	// SendMessageReply sends a reply to a specified message with the given text and returns the sent message ID and
	// an error if any.
	SendMessageReply(ctx context.Context, message *domain.Message, text string) (int, error)
}

type DirectSender interface {
	// SendPrompt delivers a direct message to a user with interactive
	// response options attached.
	SendPrompt(ctx context.Context, userID int64, text string,
		options []domain.ResponseOption) (domain.MessageHandle, error)
	// AwaitResponse blocks until the target user presses one of the prompt's
	// options, or fails with domain.ErrAwaitTimeout once the timeout elapses.
	// Presses by any other user are ignored and do not resolve the wait.
	AwaitResponse(ctx context.Context, handle domain.MessageHandle, userID int64,
		timeout time.Duration) (domain.Response, error)
	// Acknowledge replaces a prompt's text and removes its options.
	Acknowledge(ctx context.Context, handle domain.MessageHandle, text string) error
}

type UserDirectory interface {
	// LookupUsername resolves a user's platform display name. Returns an
	// empty string when the user is unknown.
	LookupUsername(ctx context.Context, userID int64) (string, error)
}
