package service

import (
	"bugbot/internal/core/port"
	"context"

	"github.com/rs/zerolog/log"
)

// NameResolver picks the best display name for a user: a self-chosen
// nickname first, then the platform identity, then nothing.
type NameResolver struct {
	nicknames port.NicknameStore
	directory port.UserDirectory
}

func NewNameResolver(nicknames port.NicknameStore, directory port.UserDirectory) *NameResolver {
	return &NameResolver{nicknames: nicknames, directory: directory}
}

// Resolve never fails the caller. Lookup errors degrade to the next layer,
// and an empty result means no name could be found. platformName, when
// already known from an incoming message, avoids a directory lookup.
func (r *NameResolver) Resolve(ctx context.Context, userID int64, platformName string) string {
	nickname, err := r.nicknames.Get(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Int64("userId", userID).Msg("nickname lookup failed")
	} else if nickname != "" {
		return nickname
	}

	if platformName != "" {
		return platformName
	}

	username, err := r.directory.LookupUsername(ctx, userID)
	if err != nil {
		log.Warn().Err(err).Int64("userId", userID).Msg("username lookup failed")
		return ""
	}

	return username
}
