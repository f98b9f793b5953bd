package command

import (
	"bugbot/internal/core/domain"
	"bugbot/internal/core/service"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelloWithNickname(t *testing.T) {
	resolver := service.NewNameResolver(&MockNicknameStore{nickname: "boss"}, &MockUserDirectory{})
	sender := &MockTextSender{}

	h := NewHelloHandler(resolver, sender, "/hello")

	err := h.Respond(context.Background(), time.Minute, &domain.Message{
		ChatID: 1, ID: 1, UserID: 42, Username: "jane", Text: "/hello"})

	require.NoError(t, err)
	assert.Equal(t, "Hello, boss!", sender.Message)
}

func TestHelloWithUsername(t *testing.T) {
	resolver := service.NewNameResolver(&MockNicknameStore{}, &MockUserDirectory{})
	sender := &MockTextSender{}

	h := NewHelloHandler(resolver, sender, "/hello")

	err := h.Respond(context.Background(), time.Minute, &domain.Message{
		ChatID: 1, ID: 1, UserID: 42, Username: "jane", Text: "/hello"})

	require.NoError(t, err)
	assert.Equal(t, "Hello, jane!", sender.Message)
}

func TestHelloWithoutAnyName(t *testing.T) {
	resolver := service.NewNameResolver(&MockNicknameStore{}, &MockUserDirectory{})
	sender := &MockTextSender{}

	h := NewHelloHandler(resolver, sender, "/hello")

	err := h.Respond(context.Background(), time.Minute, &domain.Message{
		ChatID: 1, ID: 1, UserID: 42, Text: "/hello"})

	require.NoError(t, err)
	assert.Equal(t, "Hello, whoever you are!", sender.Message)
}
