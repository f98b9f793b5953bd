package port

import (
	"bugbot/internal/core/domain"
	"context"
	"time"
)

type ReminderStore interface {
	// Create validates the interval bounds and persists a new reminder with
	// lastNotified and started set to the current time.
	Create(ctx context.Context, userID int64, what string, intervalMinutes int) (domain.Reminder, error)
	// FindDue returns every reminder whose lastNotified plus interval has
	// passed at the given time. A single call reflects one snapshot.
	FindDue(ctx context.Context, now time.Time) ([]domain.Reminder, error)
	// TouchNotified moves lastNotified forward to the given time. Touching a
	// reminder that no longer exists is not an error.
	TouchNotified(ctx context.Context, id string, now time.Time) error
	// Delete removes a reminder. Deleting an absent reminder is not an error.
	Delete(ctx context.Context, id string) error
}

type NicknameStore interface {
	// Set upserts the nickname for a user.
	Set(ctx context.Context, userID int64, nickname string) error
	// Clear removes any nickname for a user and returns how many records
	// were deleted.
	Clear(ctx context.Context, userID int64) (int64, error)
	// Get returns the user's nickname, or an empty string if none is set.
	Get(ctx context.Context, userID int64) (string, error)
}
