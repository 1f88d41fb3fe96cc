package scheduler

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/itbasis/go-clock"

	"github.com/omarshaarawi/roastbot/internal/models"
	"github.com/omarshaarawi/roastbot/internal/repository/memory"
)

type fakeLeague struct {
	state       *models.LeagueState
	espnWeek    int
	espnEnabled bool
}

func (f *fakeLeague) GetLeagueState(ctx context.Context) (*models.LeagueState, error) {
	if f.state == nil {
		return nil, errors.New("no state")
	}
	return f.state, nil
}

func (f *fakeLeague) GetESPNCurrentWeek(ctx context.Context) (int, error) {
	return f.espnWeek, nil
}

func (f *fakeLeague) ESPNEnabled() bool {
	return f.espnEnabled
}

type fakePublisher struct {
	roastWeeks []int
	espnWeeks  []int
	recaps     int
	recapErr   error
}

func (f *fakePublisher) SendRoasts(ctx context.Context, week int) error {
	f.roastWeeks = append(f.roastWeeks, week)
	return nil
}

func (f *fakePublisher) SendRecaps(ctx context.Context) error {
	f.recaps++
	return f.recapErr
}

func (f *fakePublisher) SendESPNRoasts(ctx context.Context, week int) error {
	f.espnWeeks = append(f.espnWeeks, week)
	return nil
}

func newTestScheduler(t *testing.T, league *fakeLeague, publisher *fakePublisher) *Scheduler {
	t.Helper()
	s, err := NewScheduler(league, publisher, memory.NewRepository(clock.NewMock()), 17)
	if err != nil {
		t.Fatalf("error creating scheduler: %v", err)
	}
	return s
}

func TestCompletedWeek(t *testing.T) {
	tests := []struct {
		seasonType string
		week       int
		expected   int
	}{
		{seasonType: "regular", week: 5, expected: 5},
		{seasonType: "post", week: 18, expected: 18},
		{seasonType: "pre", week: 1, expected: 0},
		{seasonType: "off", week: 1, expected: 0},
	}

	for _, tc := range tests {
		state := &models.LeagueState{SeasonType: tc.seasonType, Week: tc.week}
		if got := completedWeek(state); got != tc.expected {
			t.Errorf("%s week %d: expected %d, got %d", tc.seasonType, tc.week, tc.expected, got)
		}
	}
}

func TestSeasonOver(t *testing.T) {
	tests := []struct {
		state    models.LeagueState
		expected bool
	}{
		{state: models.LeagueState{SeasonType: "regular", Week: 17}, expected: false},
		{state: models.LeagueState{SeasonType: "regular", Week: 18}, expected: true},
		{state: models.LeagueState{SeasonType: "post", Week: 15}, expected: true},
		{state: models.LeagueState{SeasonType: "pre", Week: 1}, expected: false},
	}

	for _, tc := range tests {
		if got := seasonOver(&tc.state, 17); got != tc.expected {
			t.Errorf("%+v: expected %v, got %v", tc.state, tc.expected, got)
		}
	}
}

func TestSendRoasts(t *testing.T) {
	league := &fakeLeague{state: &models.LeagueState{Season: "2024", SeasonType: "regular", Week: 6}}
	publisher := &fakePublisher{}
	s := newTestScheduler(t, league, publisher)

	s.sendRoasts()

	league.state = &models.LeagueState{Season: "2024", SeasonType: "pre", Week: 1}
	s.sendRoasts()

	league.state = &models.LeagueState{Season: "2024", SeasonType: "post", Week: 18}
	s.sendRoasts()

	league.state = nil
	s.sendRoasts()

	if !reflect.DeepEqual(publisher.roastWeeks, []int{6}) {
		t.Errorf("expected roasts only for week 6, got %v", publisher.roastWeeks)
	}
}

func TestSendESPNRoasts(t *testing.T) {
	league := &fakeLeague{espnWeek: 7}
	publisher := &fakePublisher{}
	s := newTestScheduler(t, league, publisher)

	s.sendESPNRoasts()
	if len(publisher.espnWeeks) != 0 {
		t.Errorf("disabled ESPN should not publish, got %v", publisher.espnWeeks)
	}

	league.espnEnabled = true
	s.sendESPNRoasts()

	league.espnWeek = 1
	s.sendESPNRoasts()

	if !reflect.DeepEqual(publisher.espnWeeks, []int{6}) {
		t.Errorf("expected the previous matchup period only, got %v", publisher.espnWeeks)
	}
}

func TestSendRecapsIfSeasonOver(t *testing.T) {
	league := &fakeLeague{state: &models.LeagueState{Season: "2024", SeasonType: "regular", Week: 10}}
	publisher := &fakePublisher{recapErr: errors.New("telegram is down")}
	s := newTestScheduler(t, league, publisher)

	s.sendRecapsIfSeasonOver()
	if publisher.recaps != 0 {
		t.Fatalf("recaps should wait for the season to end")
	}

	league.state = &models.LeagueState{Season: "2024", SeasonType: "post", Week: 18}
	s.sendRecapsIfSeasonOver()
	if publisher.recaps != 1 {
		t.Fatalf("expected a recap attempt, got %d", publisher.recaps)
	}

	// a failed send is retried on the next run
	publisher.recapErr = nil
	s.sendRecapsIfSeasonOver()
	s.sendRecapsIfSeasonOver()
	if publisher.recaps != 2 {
		t.Errorf("expected one retry and then nothing, got %d attempts", publisher.recaps)
	}
}
