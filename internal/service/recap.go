package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/omarshaarawi/roastbot/internal/config"
	"github.com/omarshaarawi/roastbot/internal/models"
	"github.com/omarshaarawi/roastbot/internal/recap"
	"github.com/omarshaarawi/roastbot/internal/repository"
	"github.com/omarshaarawi/roastbot/internal/repository/memory"
)

const (
	RecapErrorPlaceholder     = "Error generating recap"
	RoastErrorPlaceholder     = "Error generating roast"
	ESPNRoastErrorPlaceholder = "Error generating roast."

	platformSleeper = "sleeper"
	platformESPN    = "espn"
)

var (
	ErrNoTeams     = errors.New("no team mapping available")
	ErrNoMatchups  = errors.New("no matchups found")
	ErrTeamMissing = errors.New("team not found")
)

type LeagueAPI interface {
	FetchUsers(ctx context.Context) ([]models.User, error)
	FetchRosters(ctx context.Context) ([]models.Roster, error)
	FetchMatchups(ctx context.Context, week int) ([]models.MatchupRecord, error)
	FetchAllPlayers(ctx context.Context) (map[string]models.PlayerDetail, error)
	GetLeagueState(ctx context.Context) (*models.LeagueState, error)
	ESPNEnabled() bool
	GetESPNScoreboard(ctx context.Context, week int) ([]models.ESPNMatchup, error)
	GetESPNLeagueState(ctx context.Context) (*models.LeagueState, error)
}

type Narrator interface {
	Generate(ctx context.Context, prompt recap.Prompt) (string, error)
}

type MediaSearcher interface {
	SearchMedia(ctx context.Context, query string) string
}

type RecapService struct {
	api      LeagueAPI
	players  repository.PlayerStore
	narrator Narrator
	media    MediaSearcher
	repo     *memory.Repository
	season   config.Season
	pick     func(n int) int
}

func NewRecapService(api LeagueAPI, players repository.PlayerStore, narrator Narrator, media MediaSearcher, repo *memory.Repository, season config.Season) *RecapService {
	if season.RecapConcurrency < 1 {
		season.RecapConcurrency = 1
	}
	return &RecapService{
		api:      api,
		players:  players,
		narrator: narrator,
		media:    media,
		repo:     repo,
		season:   season,
		pick:     rand.IntN,
	}
}

func (s *RecapService) ESPNEnabled() bool {
	return s.api.ESPNEnabled()
}

func (s *RecapService) GetLeagueState(ctx context.Context) (*models.LeagueState, error) {
	if state := s.repo.GetState(platformSleeper); state != nil {
		return state, nil
	}
	state, err := s.api.GetLeagueState(ctx)
	if err != nil {
		return nil, err
	}
	s.repo.SaveState(platformSleeper, state)
	slog.Info("Current week", "platform", platformSleeper, "week", state.Week)
	return state, nil
}

func (s *RecapService) GetCurrentWeek(ctx context.Context) (int, error) {
	state, err := s.GetLeagueState(ctx)
	if err != nil {
		return 0, err
	}
	return state.Week, nil
}

func (s *RecapService) GetESPNCurrentWeek(ctx context.Context) (int, error) {
	if state := s.repo.GetState(platformESPN); state != nil {
		return state.Week, nil
	}
	state, err := s.api.GetESPNLeagueState(ctx)
	if err != nil {
		return 0, err
	}
	s.repo.SaveState(platformESPN, state)
	slog.Info("Current week", "platform", platformESPN, "week", state.Week)
	return state.Week, nil
}

// teamDirectory fetches users and rosters and resolves them. A failure here
// ends the run; nothing downstream can work without teams.
func (s *RecapService) teamDirectory(ctx context.Context, players map[string]models.PlayerDetail) (recap.Directory, error) {
	users, err := s.api.FetchUsers(ctx)
	if err != nil {
		return recap.Directory{}, fmt.Errorf("error fetching league rosters or users: %w", err)
	}
	rosters, err := s.api.FetchRosters(ctx)
	if err != nil {
		return recap.Directory{}, fmt.Errorf("error fetching league rosters or users: %w", err)
	}

	dir := recap.ResolveTeams(users, rosters, players)
	if dir.Len() == 0 {
		return recap.Directory{}, ErrNoTeams
	}
	return dir, nil
}

// SeasonRecaps aggregates every configured week and generates one recap per
// team.
func (s *RecapService) SeasonRecaps(ctx context.Context) (*models.SeasonReport, error) {
	return s.Recaps(ctx, s.season.Weeks())
}

func (s *RecapService) Recaps(ctx context.Context, weeks []int) (*models.SeasonReport, error) {
	players, err := s.loadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	dir, err := s.teamDirectory(ctx, players)
	if err != nil {
		return nil, err
	}

	dir, failed := recap.AggregateWeeks(ctx, dir, weeks, s.api.FetchMatchups)

	report := &models.SeasonReport{Weeks: weeks}
	for _, f := range failed {
		report.FailedWeeks = append(report.FailedWeeks, f.Week)
	}

	report.Recaps, err = s.generateRecaps(ctx, dir.Teams())
	if err != nil {
		return nil, err
	}
	return report, nil
}

// generateRecaps runs after aggregation is complete, so teams can be recapped
// in parallel. Output keeps the directory order.
func (s *RecapService) generateRecaps(ctx context.Context, teams []models.Team) ([]models.Recap, error) {
	recaps := make([]models.Recap, len(teams))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.season.RecapConcurrency)
	for i, team := range teams {
		g.Go(func() error {
			recaps[i] = s.recapTeam(gctx, team)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return recaps, nil
}

func (s *RecapService) recapTeam(ctx context.Context, team models.Team) models.Recap {
	prompt := recap.SeasonRecapPrompt(team)
	if rendered, err := prompt.Render(); err == nil {
		slog.Debug("Generated recap prompt", "owner", team.OwnerName, "prompt", rendered)
	}

	r := models.Recap{
		RosterID:  team.RosterID,
		OwnerName: team.OwnerName,
		TeamName:  team.DisplayName,
		AvatarURL: team.AvatarURL(),
	}

	text, err := s.narrator.Generate(ctx, prompt)
	if err != nil {
		slog.Error("Error generating recap", "team", team.DisplayName, "error", err)
		r.Text = fmt.Sprintf("%s: %v", RecapErrorPlaceholder, err)
		r.Failed = true
	} else {
		r.Text = text
	}

	r.GIFURL = s.media.SearchMedia(ctx, recap.RecapGIFQuery)
	return r
}

// WeeklyRoasts roasts every Sleeper fixture of the given week.
func (s *RecapService) WeeklyRoasts(ctx context.Context, week int) ([]models.Roast, error) {
	dir, err := s.teamDirectory(ctx, nil)
	if err != nil {
		return nil, err
	}

	records, err := s.api.FetchMatchups(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("error fetching matchups for week %d: %w", week, err)
	}

	pairings := recap.PairMatchups(dir, records)
	if len(pairings) == 0 {
		return nil, fmt.Errorf("%w for week %d", ErrNoMatchups, week)
	}

	roasts := make([]models.Roast, 0, len(pairings))
	for _, p := range pairings {
		roast := models.Roast{MatchupID: p.MatchupID, Teams: p.Sides}

		text, err := s.narrator.Generate(ctx, recap.MatchupRoastPrompt(p))
		if err != nil {
			slog.Error("Error generating roast", "matchup", p.MatchupID, "error", err)
			roast.Text = fmt.Sprintf("%s: %v", RoastErrorPlaceholder, err)
			roast.Failed = true
		} else {
			roast.Text = text
		}

		query := recap.RoastGIFQueries[s.pick(len(recap.RoastGIFQueries))]
		roast.GIFURL = s.media.SearchMedia(ctx, query)
		roasts = append(roasts, roast)
	}
	return roasts, nil
}

// ESPNRoasts roasts every fixture on the ESPN scoreboard for week.
func (s *RecapService) ESPNRoasts(ctx context.Context, week int) ([]models.ESPNRoast, error) {
	matchups, err := s.api.GetESPNScoreboard(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("error fetching matchups: %w", err)
	}
	if len(matchups) == 0 {
		return nil, fmt.Errorf("%w for week %d", ErrNoMatchups, week)
	}

	roasts := make([]models.ESPNRoast, 0, len(matchups))
	for _, m := range matchups {
		roast := models.ESPNRoast{Matchup: m}
		text, err := s.narrator.Generate(ctx, recap.ESPNRoastPrompt(m))
		if err != nil {
			slog.Error("Error generating roast", "home", m.HomeTeam, "away", m.AwayTeam, "error", err)
			roast.Text = ESPNRoastErrorPlaceholder
			roast.Failed = true
		} else {
			roast.Text = text
		}
		roasts = append(roasts, roast)
	}
	return roasts, nil
}

// TeamReport finds a team by fuzzy name and aggregates its season to date.
func (s *RecapService) TeamReport(ctx context.Context, query string) (*models.TeamReport, error) {
	week, err := s.GetCurrentWeek(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching current week: %w", err)
	}

	players, err := s.loadPlayers(ctx)
	if err != nil {
		return nil, err
	}

	dir, err := s.teamDirectory(ctx, players)
	if err != nil {
		return nil, err
	}

	team, ok := recap.FindTeam(dir, query)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTeamMissing, query)
	}

	report := &models.TeamReport{}
	last := min(week, s.season.LastWeek)
	for w := s.season.FirstWeek; w <= last; w++ {
		report.Weeks = append(report.Weeks, w)
	}

	dir, failed := recap.AggregateWeeks(ctx, dir, report.Weeks, s.api.FetchMatchups)
	for _, f := range failed {
		report.FailedWeeks = append(report.FailedWeeks, f.Week)
	}
	report.Team, _ = dir.Team(team.RosterID)
	return report, nil
}
