package service

import (
	"bugbot/internal/core/domain"
	"bugbot/internal/core/port"
	"context"
	"fmt"
	"time"
)

// DueScanner computes which persisted reminders are due at a point in time.
type DueScanner struct {
	store port.ReminderStore
}

func NewDueScanner(store port.ReminderStore) *DueScanner {
	return &DueScanner{store: store}
}

// Scan returns a single snapshot of the reminders due at the given time.
// An empty result is normal.
func (s *DueScanner) Scan(ctx context.Context, now time.Time) ([]domain.Reminder, error) {
	due, err := s.store.FindDue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("scanning for due reminders: %w", err)
	}

	return due, nil
}
