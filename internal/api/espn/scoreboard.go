package espn

import (
	"context"
	"fmt"
	"math"

	"github.com/omarshaarawi/roastbot/internal/models"
)

const missingTeam = "N/A"

type scheduleFilter struct {
	Schedule struct {
		FilterMatchupPeriodIDs struct {
			Value []int `json:"value"`
		} `json:"filterMatchupPeriodIds"`
	} `json:"schedule"`
}

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) GetLeagueState(ctx context.Context) (*models.LeagueState, error) {
	var espnResponse models.LeagueResponse
	if err := a.client.GetLeague(ctx, []View{ViewSettings}, nil, &espnResponse); err != nil {
		return nil, fmt.Errorf("fetching league metadata: %w", err)
	}

	seasonType := "regular"
	if !espnResponse.Status.IsActive {
		seasonType = "off"
	}

	return &models.LeagueState{
		Season:     fmt.Sprintf("%d", espnResponse.SeasonID),
		SeasonType: seasonType,
		Week:       espnResponse.Status.CurrentMatchupPeriod,
	}, nil
}

// GetScoreboard returns the week's fixtures with team names and logos joined
// in. Byes come back with a missing side named "N/A".
func (a *API) GetScoreboard(ctx context.Context, week int) ([]models.ESPNMatchup, error) {
	var response struct {
		Teams    []models.ESPNTeam     `json:"teams"`
		Schedule []models.MatchupScore `json:"schedule"`
	}

	filter := scheduleFilter{}
	filter.Schedule.FilterMatchupPeriodIDs.Value = []int{week}

	if err := a.client.GetLeague(ctx, []View{ViewTeam, ViewScoreboard}, filter, &response); err != nil {
		return nil, fmt.Errorf("fetching scoreboard for week %d: %w", week, err)
	}

	teams := make(map[int]models.ESPNTeam, len(response.Teams))
	for _, t := range response.Teams {
		teams[t.ID] = t
	}

	var matchups []models.ESPNMatchup
	for _, match := range response.Schedule {
		// The filter header is advisory; older seasons ignore it.
		if match.MatchupPeriodID != 0 && match.MatchupPeriodID != week {
			continue
		}

		home, homeLogo, homeScore := side(teams, match.Home)
		away, awayLogo, awayScore := side(teams, match.Away)

		matchups = append(matchups, models.ESPNMatchup{
			HomeTeam:  home,
			AwayTeam:  away,
			HomeScore: homeScore,
			AwayScore: awayScore,
			HomeLogo:  homeLogo,
			AwayLogo:  awayLogo,
			IsPlayoff: match.PlayoffTierType != "" && match.PlayoffTierType != "NONE",
		})
	}
	return matchups, nil
}

func side(teams map[int]models.ESPNTeam, score *models.TeamScore) (string, string, float64) {
	if score == nil {
		return missingTeam, "", 0
	}
	name := missingTeam
	logo := ""
	if t, ok := teams[score.TeamID]; ok {
		name = t.DisplayName()
		logo = t.Logo
	}
	return name, logo, getScore(*score)
}

func getScore(teamScore models.TeamScore) float64 {
	score := teamScore.TotalPointsLive
	if score == 0 {
		score = teamScore.TotalPoints
	}
	return math.Round(score*100) / 100
}
