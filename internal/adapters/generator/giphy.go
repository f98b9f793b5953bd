package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

const giphySearchLimit = 50

// Giphy provides a wrapper for the Giphy search API.
type Giphy struct {
	searchEndpoint string
	apiKey         string
}

func NewGiphy(searchEndpoint, apiKey string) *Giphy {
	return &Giphy{searchEndpoint: searchEndpoint, apiKey: apiKey}
}

type searchResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// SearchGif returns the URL of a random GIF matching the query.
func (g *Giphy) SearchGif(ctx context.Context, query string) (string, error) {
	endpoint, err := url.Parse(g.searchEndpoint)
	if err != nil {
		return "", fmt.Errorf("invalid Giphy endpoint: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("api_key", g.apiKey)
	params.Set("limit", fmt.Sprint(giphySearchLimit))
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", fmt.Errorf("error creating Giphy request: %w", err)
	}

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error executing Giphy request: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code from Giphy: %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("error reading Giphy response: %w", err)
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("error unmarshalling Giphy searchResponse: %w", err)
	}

	if len(result.Data) == 0 {
		return "", errors.New("no GIFs returned from Giphy response")
	}

	gifURL := result.Data[rand.IntN(len(result.Data))].URL
	log.Debug().Str("url", gifURL).Msg("Giphy searchResponse")

	return gifURL, nil
}
