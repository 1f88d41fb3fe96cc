package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/omarshaarawi/roastbot/internal/models"
)

// Publisher delivers finished reports to the league chat.
type Publisher interface {
	SendRoasts(ctx context.Context, week int) error
	SendRecaps(ctx context.Context) error
	SendESPNRoasts(ctx context.Context, week int) error
}

// LeagueWeeks reports where each platform's season is.
type LeagueWeeks interface {
	GetLeagueState(ctx context.Context) (*models.LeagueState, error)
	GetESPNCurrentWeek(ctx context.Context) (int, error)
	ESPNEnabled() bool
}

// SentTracker remembers one-off reports.
type SentTracker interface {
	WasSent(key string) bool
	MarkSent(key string)
}

type Scheduler struct {
	s         gocron.Scheduler
	league    LeagueWeeks
	publisher Publisher
	sent      SentTracker
	lastWeek  int
	timeout   time.Duration
}

func NewScheduler(league LeagueWeeks, publisher Publisher, sent SentTracker, lastWeek int) (*Scheduler, error) {
	location, err := time.LoadLocation("America/Chicago") // CDT
	if err != nil {
		slog.Error("Failed to load location", "error", err)
		location = time.UTC
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:         s,
		league:    league,
		publisher: publisher,
		sent:      sent,
		lastWeek:  lastWeek,
		timeout:   10 * time.Minute,
	}, nil
}

func (s *Scheduler) Start() error {
	var err error

	// Weekly roasts - Tuesday 7:30 CDT, after Monday night is final
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Tuesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendRoasts),
	)
	if err != nil {
		return fmt.Errorf("failed to create roasts job: %w", err)
	}

	// ESPN roasts - Tuesday 8:00 CDT
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Tuesday), gocron.NewAtTimes(gocron.NewAtTime(8, 0, 0))),
		gocron.NewTask(s.sendESPNRoasts),
	)
	if err != nil {
		return fmt.Errorf("failed to create ESPN roasts job: %w", err)
	}

	// Season recap - Wednesday 7:30 CDT, once the final week is done
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Wednesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
		gocron.NewTask(s.sendRecapsIfSeasonOver),
	)
	if err != nil {
		return fmt.Errorf("failed to create season recap job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

// completedWeek is the most recent week whose games are final. Sleeper only
// rolls the week over on Wednesday, so on Tuesday it is still the current one.
func completedWeek(state *models.LeagueState) int {
	if state.SeasonType != "regular" && state.SeasonType != "post" {
		return 0
	}
	return state.Week
}

func (s *Scheduler) sendRoasts() {
	ctx, cancel := s.context()
	defer cancel()

	state, err := s.league.GetLeagueState(ctx)
	if err != nil {
		slog.Error("Failed to get league state", "error", err)
		return
	}

	week := completedWeek(state)
	if week < 1 || week > s.lastWeek {
		slog.Info("Skipping roasts outside the season", "week", state.Week, "season_type", state.SeasonType)
		return
	}

	if err := s.publisher.SendRoasts(ctx, week); err != nil {
		slog.Error("Failed to send roasts", "week", week, "error", err)
	}
}

func (s *Scheduler) sendESPNRoasts() {
	if !s.league.ESPNEnabled() {
		return
	}

	ctx, cancel := s.context()
	defer cancel()

	// ESPN advances the matchup period as soon as Monday's games end.
	week, err := s.league.GetESPNCurrentWeek(ctx)
	if err != nil {
		slog.Error("Failed to get ESPN current week", "error", err)
		return
	}
	week--
	if week < 1 {
		return
	}

	if err := s.publisher.SendESPNRoasts(ctx, week); err != nil {
		slog.Error("Failed to send ESPN roasts", "week", week, "error", err)
	}
}

func (s *Scheduler) sendRecapsIfSeasonOver() {
	ctx, cancel := s.context()
	defer cancel()

	state, err := s.league.GetLeagueState(ctx)
	if err != nil {
		slog.Error("Failed to get league state", "error", err)
		return
	}

	if !seasonOver(state, s.lastWeek) {
		return
	}

	key := "recap-" + state.Season
	if s.sent.WasSent(key) {
		return
	}

	if err := s.publisher.SendRecaps(ctx); err != nil {
		slog.Error("Failed to send season recaps", "season", state.Season, "error", err)
		return
	}
	s.sent.MarkSent(key)
}

func seasonOver(state *models.LeagueState, lastWeek int) bool {
	return state.SeasonType == "post" || state.Week > lastWeek
}
