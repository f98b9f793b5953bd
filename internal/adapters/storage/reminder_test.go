package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDueFilter(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	want := bson.M{"$expr": bson.M{"$lte": bson.A{
		bson.M{"$add": bson.A{
			"$lastNotified",
			bson.M{"$multiply": bson.A{"$intervalMinutes", 60 * 1000}},
		}},
		primitive.NewDateTimeFromTime(now),
	}}}

	assert.Equal(t, want, dueFilter(now))
}

func TestReminderDocToDomain(t *testing.T) {
	oid := primitive.NewObjectID()
	notified := time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)
	started := time.Date(2024, 4, 30, 9, 0, 0, 0, time.UTC)

	doc := reminderDoc{
		ID:              oid,
		UserID:          42,
		What:            "water the plants",
		IntervalMinutes: 30,
		LastNotified:    notified,
		Started:         started,
	}

	reminder := doc.toDomain()

	assert.Equal(t, oid.Hex(), reminder.ID)
	assert.Equal(t, int64(42), reminder.UserID)
	assert.Equal(t, "water the plants", reminder.What)
	assert.Equal(t, 30, reminder.IntervalMinutes)
	assert.Equal(t, notified, reminder.LastNotified)
	assert.Equal(t, started, reminder.Started)
}
