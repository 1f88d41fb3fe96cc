package mockservice

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/omarshaarawi/roastbot/internal/models"
	"github.com/omarshaarawi/roastbot/internal/recap"
)

type LeagueAPI struct {
	mock.Mock
}

func (a *LeagueAPI) FetchUsers(ctx context.Context) ([]models.User, error) {
	args := a.Called(ctx)

	var res []models.User
	if args.Get(0) != nil {
		res = args.Get(0).([]models.User)
	}

	return res, args.Error(1)
}

func (a *LeagueAPI) FetchRosters(ctx context.Context) ([]models.Roster, error) {
	args := a.Called(ctx)

	var res []models.Roster
	if args.Get(0) != nil {
		res = args.Get(0).([]models.Roster)
	}

	return res, args.Error(1)
}

func (a *LeagueAPI) FetchMatchups(ctx context.Context, week int) ([]models.MatchupRecord, error) {
	args := a.Called(ctx, week)

	var res []models.MatchupRecord
	if args.Get(0) != nil {
		res = args.Get(0).([]models.MatchupRecord)
	}

	return res, args.Error(1)
}

func (a *LeagueAPI) FetchAllPlayers(ctx context.Context) (map[string]models.PlayerDetail, error) {
	args := a.Called(ctx)

	var res map[string]models.PlayerDetail
	if args.Get(0) != nil {
		res = args.Get(0).(map[string]models.PlayerDetail)
	}

	return res, args.Error(1)
}

func (a *LeagueAPI) GetLeagueState(ctx context.Context) (*models.LeagueState, error) {
	args := a.Called(ctx)

	var res *models.LeagueState
	if args.Get(0) != nil {
		res = args.Get(0).(*models.LeagueState)
	}

	return res, args.Error(1)
}

func (a *LeagueAPI) ESPNEnabled() bool {
	args := a.Called()
	return args.Bool(0)
}

func (a *LeagueAPI) GetESPNScoreboard(ctx context.Context, week int) ([]models.ESPNMatchup, error) {
	args := a.Called(ctx, week)

	var res []models.ESPNMatchup
	if args.Get(0) != nil {
		res = args.Get(0).([]models.ESPNMatchup)
	}

	return res, args.Error(1)
}

func (a *LeagueAPI) GetESPNLeagueState(ctx context.Context) (*models.LeagueState, error) {
	args := a.Called(ctx)

	var res *models.LeagueState
	if args.Get(0) != nil {
		res = args.Get(0).(*models.LeagueState)
	}

	return res, args.Error(1)
}

type Narrator struct {
	mock.Mock
}

func (n *Narrator) Generate(ctx context.Context, prompt recap.Prompt) (string, error) {
	args := n.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MediaSearcher struct {
	mock.Mock
}

func (m *MediaSearcher) SearchMedia(ctx context.Context, query string) string {
	args := m.Called(ctx, query)
	return args.String(0)
}
