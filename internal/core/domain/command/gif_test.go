package command

import (
	"bugbot/internal/core/domain"
	"bugbot/internal/core/service"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGifReplyWithName(t *testing.T) {
	resolver := service.NewNameResolver(&MockNicknameStore{nickname: "boss"}, &MockUserDirectory{})
	sender := &MockTextSender{}

	h := NewGifHandler(&MockGifSearcher{url: "https://giphy.com/believe"}, resolver, sender, "/gif")

	err := h.Respond(context.Background(), time.Minute, &domain.Message{
		ChatID: 1, ID: 1, UserID: 42, Text: "/gif"})

	require.NoError(t, err)
	assert.Equal(t, "You can do it, boss!\nhttps://giphy.com/believe", sender.Message)
}

func TestGifReplyWithoutName(t *testing.T) {
	resolver := service.NewNameResolver(&MockNicknameStore{}, &MockUserDirectory{})
	sender := &MockTextSender{}

	h := NewGifHandler(&MockGifSearcher{url: "https://giphy.com/believe"}, resolver, sender, "/gif")

	err := h.Respond(context.Background(), time.Minute, &domain.Message{
		ChatID: 1, ID: 1, UserID: 42, Text: "/gif"})

	require.NoError(t, err)
	assert.Equal(t, "You can do it!\nhttps://giphy.com/believe", sender.Message)
}

func TestGifSearchFailure(t *testing.T) {
	resolver := service.NewNameResolver(&MockNicknameStore{}, &MockUserDirectory{})
	sender := &MockTextSender{}

	h := NewGifHandler(&MockGifSearcher{err: errors.New("api error")}, resolver, sender, "/gif")

	err := h.Respond(context.Background(), time.Minute, &domain.Message{
		ChatID: 1, ID: 1, UserID: 42, Text: "/gif"})

	require.NoError(t, err)
	assert.Equal(t,
		"I'm sorry, but I was unable to find a GIF for you... But I still believe in you!",
		sender.Message)
}
