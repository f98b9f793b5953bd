package port

import "context"

type TextGenerator interface {
	GenerateFromPrompt(ctx context.Context, prompt string) (string, error)
}

type GifSearcher interface {
	// SearchGif returns the URL of a GIF matching the query.
	SearchGif(ctx context.Context, query string) (string, error)
}
