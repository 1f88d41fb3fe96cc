package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/omarshaarawi/roastbot/internal/config"
)

const DefaultBaseURL = "https://lm-api-reads.fantasy.espn.com/apis/v3/games/ffl"

// View selects a slice of the league document. Several views can be combined
// in one request.
type View string

const (
	ViewSettings   View = "mSettings"
	ViewTeam       View = "mTeam"
	ViewScoreboard View = "mScoreboard"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	Config     config.ESPNAPI
}

func NewClient(cfg config.ESPNAPI) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		Config:     cfg,
	}
}

// GetLeague fetches the configured league's document with the given views.
// A non-nil filter is JSON encoded into the x-fantasy-filter header.
func (c *Client) GetLeague(ctx context.Context, views []View, filter any, result any) error {
	endpoint := fmt.Sprintf("%s/seasons/%s/segments/0/leagues/%s", c.baseURL, c.Config.Year, c.Config.LeagueID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	q := url.Values{}
	for _, v := range views {
		q.Add("view", string(v))
	}
	req.URL.RawQuery = q.Encode()

	if filter != nil {
		filterJSON, err := json.Marshal(filter)
		if err != nil {
			return fmt.Errorf("error marshalling filter: %w", err)
		}
		req.Header.Set("x-fantasy-filter", string(filterJSON))
	}

	// Public leagues need neither cookie.
	if c.Config.SWID != "" && c.Config.ESPNS2 != "" {
		req.AddCookie(&http.Cookie{Name: "SWID", Value: c.Config.SWID})
		req.AddCookie(&http.Cookie{Name: "espn_s2", Value: c.Config.ESPNS2})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return fmt.Errorf("unexpected status code %d from espn: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}
