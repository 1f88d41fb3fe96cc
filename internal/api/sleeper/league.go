package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/omarshaarawi/roastbot/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) FetchUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	endpoint := fmt.Sprintf("/v1/league/%s/users", a.client.Config.LeagueID)
	if err := a.client.Get(ctx, endpoint, &users); err != nil {
		return nil, fmt.Errorf("fetching league users: %w", err)
	}
	return users, nil
}

func (a *API) FetchRosters(ctx context.Context) ([]models.Roster, error) {
	var rosters []models.Roster
	endpoint := fmt.Sprintf("/v1/league/%s/rosters", a.client.Config.LeagueID)
	if err := a.client.Get(ctx, endpoint, &rosters); err != nil {
		return nil, fmt.Errorf("fetching league rosters: %w", err)
	}
	return rosters, nil
}

// FetchMatchups returns the week's matchup records. Entries that fail to
// decode are skipped so one bad record does not hide the rest of the week.
func (a *API) FetchMatchups(ctx context.Context, week int) ([]models.MatchupRecord, error) {
	var raw []json.RawMessage
	endpoint := fmt.Sprintf("/v1/league/%s/matchups/%d", a.client.Config.LeagueID, week)
	if err := a.client.Get(ctx, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("fetching matchups for week %d: %w", week, err)
	}

	records := make([]models.MatchupRecord, 0, len(raw))
	for i, r := range raw {
		var m models.MatchupRecord
		if err := json.Unmarshal(r, &m); err != nil {
			slog.Warn("Skipping malformed matchup record", "week", week, "index", i, "error", err)
			continue
		}
		records = append(records, m)
	}
	return records, nil
}

func (a *API) FetchAllPlayers(ctx context.Context) (map[string]models.PlayerDetail, error) {
	var players map[string]models.PlayerDetail
	if err := a.client.Get(ctx, "/v1/players/nfl", &players); err != nil {
		return nil, fmt.Errorf("fetching player data: %w", err)
	}

	for id, p := range players {
		if p.PlayerID == "" {
			p.PlayerID = id
			players[id] = p
		}
	}
	return players, nil
}

func (a *API) FetchState(ctx context.Context) (models.NFLState, error) {
	var state models.NFLState
	if err := a.client.Get(ctx, "/v1/state/nfl", &state); err != nil {
		return models.NFLState{}, fmt.Errorf("fetching nfl state: %w", err)
	}
	return state, nil
}
