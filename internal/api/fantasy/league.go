package fantasy

import (
	"context"
	"errors"

	"github.com/omarshaarawi/roastbot/internal/api/espn"
	"github.com/omarshaarawi/roastbot/internal/api/sleeper"
	"github.com/omarshaarawi/roastbot/internal/models"
)

var ErrESPNDisabled = errors.New("no ESPN league configured")

type API struct {
	sleeperAPI *sleeper.API
	espnAPI    *espn.API
}

// NewAPI wires the platform clients; espnAPI may be nil when only a Sleeper
// league is configured.
func NewAPI(sleeperAPI *sleeper.API, espnAPI *espn.API) *API {
	return &API{sleeperAPI: sleeperAPI, espnAPI: espnAPI}
}

func (a *API) FetchUsers(ctx context.Context) ([]models.User, error) {
	return a.sleeperAPI.FetchUsers(ctx)
}

func (a *API) FetchRosters(ctx context.Context) ([]models.Roster, error) {
	return a.sleeperAPI.FetchRosters(ctx)
}

func (a *API) FetchMatchups(ctx context.Context, week int) ([]models.MatchupRecord, error) {
	return a.sleeperAPI.FetchMatchups(ctx, week)
}

func (a *API) FetchAllPlayers(ctx context.Context) (map[string]models.PlayerDetail, error) {
	return a.sleeperAPI.FetchAllPlayers(ctx)
}

func (a *API) GetLeagueState(ctx context.Context) (*models.LeagueState, error) {
	state, err := a.sleeperAPI.FetchState(ctx)
	if err != nil {
		return nil, err
	}
	return &models.LeagueState{
		Season:     state.Season,
		SeasonType: state.SeasonType,
		Week:       state.Week,
	}, nil
}

func (a *API) ESPNEnabled() bool {
	return a.espnAPI != nil
}

func (a *API) GetESPNScoreboard(ctx context.Context, week int) ([]models.ESPNMatchup, error) {
	if a.espnAPI == nil {
		return nil, ErrESPNDisabled
	}
	return a.espnAPI.GetScoreboard(ctx, week)
}

func (a *API) GetESPNLeagueState(ctx context.Context) (*models.LeagueState, error) {
	if a.espnAPI == nil {
		return nil, ErrESPNDisabled
	}
	return a.espnAPI.GetLeagueState(ctx)
}
