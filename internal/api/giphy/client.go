package giphy

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"time"

	"github.com/omarshaarawi/roastbot/internal/config"
)

const (
	DefaultBaseURL = "https://api.giphy.com"

	PlaceholderPrefix = "https://via.placeholder.com/"
	NoKeyURL          = "https://via.placeholder.com/300x200.png?text=No+GIF+Available"
	NoResultsURL      = "https://via.placeholder.com/300x200.png?text=No+GIFs"
	FetchErrorURL     = "https://via.placeholder.com/300x200.png?text=GIF+Fetch+Error"
	ErrorURL          = "https://via.placeholder.com/300x200.png?text=GIF+Error"
)

type searchResponse struct {
	Data []struct {
		Images struct {
			Original struct {
				URL string `json:"url"`
			} `json:"original"`
		} `json:"images"`
	} `json:"data"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	pick       func(n int) int
}

func NewClient(cfg config.Giphy) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		pick:       rand.IntN,
	}
}

// SearchMedia returns a random GIF URL for query. It never fails: every
// problem maps to a placeholder image URL.
func (c *Client) SearchMedia(ctx context.Context, query string) string {
	if c.apiKey == "" {
		return NoKeyURL
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("q", query)
	params.Set("limit", "10")
	params.Set("offset", "0")
	params.Set("rating", "g")
	params.Set("lang", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/v1/gifs/search?%s", c.baseURL, params.Encode()), nil)
	if err != nil {
		slog.Warn("Error creating GIF request", "error", err)
		return ErrorURL
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("Error fetching GIF", "query", query, "error", err)
		return ErrorURL
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("Unexpected GIF search status", "query", query, "status", resp.StatusCode)
		return FetchErrorURL
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		slog.Warn("Error decoding GIF search", "query", query, "error", err)
		return ErrorURL
	}

	var gifs []string
	for _, d := range parsed.Data {
		if d.Images.Original.URL != "" {
			gifs = append(gifs, d.Images.Original.URL)
		}
	}
	if len(gifs) == 0 {
		return NoResultsURL
	}
	return gifs[c.pick(len(gifs))]
}
