package storage

import (
	"bugbot/internal/core/domain"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const millisecondsPerMinute = 60 * 1000

type reminderDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UserID          int64              `bson:"userID"`
	What            string             `bson:"what,omitempty"`
	IntervalMinutes int                `bson:"intervalMinutes"`
	LastNotified    time.Time          `bson:"lastNotified"`
	Started         time.Time          `bson:"started"`
}

func (d *reminderDoc) toDomain() domain.Reminder {
	return domain.Reminder{
		ID:              d.ID.Hex(),
		UserID:          d.UserID,
		What:            d.What,
		IntervalMinutes: d.IntervalMinutes,
		LastNotified:    d.LastNotified,
		Started:         d.Started,
	}
}

// ReminderStore persists reminders in the "reminders" collection.
type ReminderStore struct {
	collection *mongo.Collection
}

func NewReminderStore(db *mongo.Database) *ReminderStore {
	return &ReminderStore{collection: db.Collection("reminders")}
}

func (s *ReminderStore) Create(ctx context.Context, userID int64, what string,
	intervalMinutes int) (domain.Reminder, error) {
	if err := domain.ValidateInterval(intervalMinutes); err != nil {
		return domain.Reminder{}, err
	}

	now := time.Now().UTC()
	doc := reminderDoc{
		UserID:          userID,
		What:            what,
		IntervalMinutes: intervalMinutes,
		LastNotified:    now,
		Started:         now,
	}

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return domain.Reminder{}, storeError("inserting reminder", err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.Reminder{}, fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}

	doc.ID = id
	log.Debug().Str("reminderId", id.Hex()).Int64("userId", userID).Msg("reminder added")

	return doc.toDomain(), nil
}

func (s *ReminderStore) FindDue(ctx context.Context, now time.Time) ([]domain.Reminder, error) {
	cursor, err := s.collection.Find(ctx, dueFilter(now))
	if err != nil {
		return nil, storeError("querying due reminders", err)
	}

	var docs []reminderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, storeError("reading due reminders", err)
	}

	reminders := make([]domain.Reminder, len(docs))
	for i := range docs {
		reminders[i] = docs[i].toDomain()
	}

	return reminders, nil
}

// TouchNotified is a no-op when the reminder has been deleted concurrently.
func (s *ReminderStore) TouchNotified(ctx context.Context, id string, now time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid reminder ID %q: %w", id, err)
	}

	_, err = s.collection.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"lastNotified": now.UTC()}})
	if err != nil {
		return storeError("updating lastNotified", err)
	}

	return nil
}

// Delete is idempotent, removing an absent reminder is not an error.
func (s *ReminderStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid reminder ID %q: %w", id, err)
	}

	_, err = s.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return storeError("deleting reminder", err)
	}

	return nil
}

// dueFilter selects reminders whose lastNotified plus interval has passed.
// The boundary counts as due.
func dueFilter(now time.Time) bson.M {
	return bson.M{"$expr": bson.M{"$lte": bson.A{
		bson.M{"$add": bson.A{
			"$lastNotified",
			bson.M{"$multiply": bson.A{"$intervalMinutes", millisecondsPerMinute}},
		}},
		primitive.NewDateTimeFromTime(now.UTC()),
	}}}
}

func storeError(operation string, err error) error {
	return fmt.Errorf("%s: %w: %w", operation, domain.ErrStoreUnavailable, err)
}
