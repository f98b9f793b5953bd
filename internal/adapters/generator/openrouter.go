package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/revrost/go-openrouter"
)

const (
	motivationTemperature = 0.8
	motivationMaxTokens   = 100 // roughly 75 English words
)

// OpenRouter provides a wrapper for the OpenRouter chat completion API.
type OpenRouter struct {
	client *openrouter.Client
	model  string
}

func NewOpenRouter(apiKey, model string) *OpenRouter {
	return &OpenRouter{
		model: model,
		client: openrouter.NewClient(
			apiKey,
			openrouter.WithXTitle("bugbot"),
		),
	}
}

func (c *OpenRouter) GenerateFromPrompt(ctx context.Context, prompt string) (string, error) {
	ccr := openrouter.ChatCompletionRequest{
		Model: c.model,
		Messages: []openrouter.ChatCompletionMessage{
			{
				Role: openrouter.ChatMessageRoleUser,
				Content: openrouter.Content{
					Text: prompt,
				},
			},
		},
		Temperature: motivationTemperature,
		MaxTokens:   motivationMaxTokens,
	}

	resp, err := c.client.CreateChatCompletion(ctx, ccr)
	if err != nil {
		return "", fmt.Errorf("openrouter API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned from openrouter response")
	}

	return trimCompletion(resp.Choices[0].Message.Content.Text), nil
}

// trimCompletion strips padding whitespace and wrapping double-quotes, which
// make the reply feel like the bot is quoting someone else.
func trimCompletion(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, `"`)
	text = strings.TrimSuffix(text, `"`)

	return text
}
