package service

import (
	"strings"
	"testing"

	"github.com/omarshaarawi/roastbot/internal/models"
)

func TestFormatSeasonReport(t *testing.T) {
	report := &models.SeasonReport{
		Weeks:       []int{1, 2, 3},
		FailedWeeks: []int{2, 3},
		Recaps: []models.Recap{
			{OwnerName: "alice", TeamName: "Stairway to Evans", Text: "Back-back-back!"},
			{OwnerName: "", TeamName: "Team 3", Text: "Error generating recap: boom", Failed: true},
		},
	}

	got := FormatSeasonReport(report)
	for _, want := range []string{
		"🔥 *Fantasy Football User Season Recaps*",
		"🏈 *Season Recap:* alice\nTeam: Stairway to Evans\n\nBack-back-back!",
		"🏈 *Season Recap:* Team 3\n\nError generating recap: boom",
		"⚠️ Missing data for weeks: 2, 3",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestFormatRoasts(t *testing.T) {
	roasts := []models.Roast{{
		MatchupID: 1,
		Teams: []models.MatchupSide{
			{TeamName: "alice", Points: 10050},
			{TeamName: "bob", Points: 9000},
		},
		Text: "Ouch.",
	}}

	got := FormatRoasts(4, roasts)
	if !strings.HasPrefix(got, "🏈🔥 *Week 4 Matchup Roasts*") {
		t.Errorf("unexpected header:\n%s", got)
	}
	if !strings.Contains(got, "*Matchup 1*\nalice (100.50) vs bob (90.00)\n\nOuch.") {
		t.Errorf("unexpected roast:\n%s", got)
	}
}

func TestFormatESPNRoasts(t *testing.T) {
	roasts := []models.ESPNRoast{{
		Matchup: models.ESPNMatchup{HomeTeam: "Puk Nukem", AwayTeam: "Jolly Roger", HomeScore: 101.25, AwayScore: 99, IsPlayoff: true},
		Text:    "Nuked",
	}}

	got := FormatESPNRoasts(ESPNWeekLabel(16), roasts)
	if !strings.Contains(got, "*Matchups for Playoff Round 1 (NFL Week 15 - NFL Week 16)*") {
		t.Errorf("unexpected header:\n%s", got)
	}
	if !strings.Contains(got, "*Matchup:* Puk Nukem (101.25) vs Jolly Roger (99.00) 🏆\n\nNuked") {
		t.Errorf("unexpected roast:\n%s", got)
	}
}

func TestESPNWeekLabel(t *testing.T) {
	tests := map[int]string{
		3:  "NFL Week 3",
		15: "NFL Week 15",
		16: "Playoff Round 1 (NFL Week 15 - NFL Week 16)",
		17: "NFL Week 17",
		18: "Playoff Round 2 (NFL Week 17 - NFL Week 18)",
	}
	for week, expected := range tests {
		if got := ESPNWeekLabel(week); got != expected {
			t.Errorf("week %d: expected %q, got %q", week, expected, got)
		}
	}
}

func TestFormatTeam(t *testing.T) {
	team := models.Team{
		DisplayName: "Stairway to Evans",
		OwnerName:   "alice",
		TotalPoints: 15050,
		Players: []models.TeamPlayer{
			{PlayerID: "B", Details: models.PlayerDetail{FullName: "Tyler Lockett", Position: "WR"}, Points: 10000},
			{PlayerID: "A", Details: models.PlayerDetail{FullName: "Jalen Hurts", Position: "QB"}, Points: 15050},
			{PlayerID: "Z", Details: models.UnknownPlayer},
			{PlayerID: "C", Details: models.PlayerDetail{FullName: "Bijan Robinson", Position: "RB"}, Points: 5000},
		},
	}

	expected := "📋 *Team:* Stairway to Evans\n" +
		"Owner: alice\n" +
		"Total Points: 150.50\n\n" +
		"*Top Players:*\n" +
		"1. QB Jalen Hurts - 150.50 pts\n" +
		"2. WR Tyler Lockett - 100.00 pts\n" +
		"3. RB Bijan Robinson - 50.00 pts\n"
	if got := FormatTeam(&models.TeamReport{Team: team, Weeks: []int{1, 2}}); got != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, got)
	}

	empty := FormatTeam(&models.TeamReport{Team: models.Team{DisplayName: "Team 3"}})
	if !strings.Contains(empty, "No players on this roster.") || strings.Contains(empty, "Owner:") {
		t.Errorf("unexpected empty team report:\n%s", empty)
	}

	partial := FormatTeam(&models.TeamReport{Team: team, Weeks: []int{1, 2, 3}, FailedWeeks: []int{2, 3}})
	if !strings.HasSuffix(partial, "3. RB Bijan Robinson - 50.00 pts\n\n⚠️ Missing data for weeks: 2, 3\n") {
		t.Errorf("expected failed weeks after the top players:\n%s", partial)
	}
}

func TestFormat_escapesOutsideText(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "recap",
			got:      FormatRecap(models.Recap{OwnerName: "mike_e", TeamName: "Mike_Evans", Text: "A *bold* season for [redacted]"}),
			expected: "🏈 *Season Recap:* mike\\_e\nTeam: Mike\\_Evans\n\nA \\*bold\\* season for \\[redacted]",
		},
		{
			name: "roast",
			got: FormatRoast(models.Roast{MatchupID: 2, Teams: []models.MatchupSide{
				{TeamName: "Mike_Evans", Points: 10000},
				{TeamName: "`drop table`", Points: 5000},
			}, Text: "ok"}),
			expected: "*Matchup 2*\nMike\\_Evans (100.00) vs \\`drop table\\` (50.00)\n\nok",
		},
		{
			name:     "espn roast",
			got:      FormatESPNRoast(models.ESPNRoast{Matchup: models.ESPNMatchup{HomeTeam: "Team_1", AwayTeam: "N/A"}, Text: "snake_case"}),
			expected: "*Matchup:* Team\\_1 (0.00) vs N/A (0.00)\n\nsnake\\_case",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, tc.got)
			}
		})
	}

	team := FormatTeam(&models.TeamReport{Team: models.Team{
		DisplayName: "Mike_Evans",
		Players:     []models.TeamPlayer{{PlayerID: "1", Details: models.PlayerDetail{FullName: "Ja'Marr_Chase", Position: "WR"}, Points: 100}},
	}})
	if !strings.HasPrefix(team, "📋 *Team:* Mike\\_Evans\n") || !strings.Contains(team, "1. WR Ja'Marr\\_Chase - 1.00 pts") {
		t.Errorf("unexpected team report:\n%s", team)
	}
}
