package storage

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type nicknameDoc struct {
	UserID   int64  `bson:"userID"`
	Nickname string `bson:"nickname"`
}

// NicknameStore persists user nicknames in the "nicknames" collection,
// one document per user.
type NicknameStore struct {
	collection *mongo.Collection
}

func NewNicknameStore(db *mongo.Database) *NicknameStore {
	return &NicknameStore{collection: db.Collection("nicknames")}
}

func (s *NicknameStore) Set(ctx context.Context, userID int64, nickname string) error {
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"userID": userID},
		bson.M{"$set": nicknameDoc{UserID: userID, Nickname: nickname}},
		options.Update().SetUpsert(true))
	if err != nil {
		return storeError("upserting nickname", err)
	}

	log.Debug().Int64("userId", userID).Msg("nickname updated")
	return nil
}

func (s *NicknameStore) Clear(ctx context.Context, userID int64) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, bson.M{"userID": userID})
	if err != nil {
		return 0, storeError("clearing nickname", err)
	}

	return result.DeletedCount, nil
}

func (s *NicknameStore) Get(ctx context.Context, userID int64) (string, error) {
	var doc nicknameDoc

	err := s.collection.FindOne(ctx, bson.M{"userID": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", storeError("fetching nickname", err)
	}

	return doc.Nickname, nil
}
