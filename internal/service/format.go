package service

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/omarshaarawi/roastbot/internal/models"
	"github.com/omarshaarawi/roastbot/internal/recap"
)

// Team names, player names and generated text come from outside and are
// escaped. Legacy Markdown cannot escape inside an entity, so they never sit
// between * or _ markers.
func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func FormatRecap(r models.Recap) string {
	var sb strings.Builder
	owner := r.OwnerName
	if owner == "" {
		owner = r.TeamName
	}
	sb.WriteString(fmt.Sprintf("🏈 *Season Recap:* %s\n", escape(owner)))
	if r.TeamName != owner {
		sb.WriteString(fmt.Sprintf("Team: %s\n", escape(r.TeamName)))
	}
	sb.WriteString("\n")
	sb.WriteString(escape(r.Text))
	return sb.String()
}

func FormatSeasonReport(report *models.SeasonReport) string {
	var sb strings.Builder
	sb.WriteString("🔥 *Fantasy Football User Season Recaps*\n\n")

	for _, r := range report.Recaps {
		sb.WriteString(FormatRecap(r))
		sb.WriteString("\n\n")
	}

	if len(report.FailedWeeks) > 0 {
		sb.WriteString(fmt.Sprintf("⚠️ Missing data for weeks: %s\n", joinInts(report.FailedWeeks)))
	}
	return sb.String()
}

func FormatRoast(r models.Roast) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*Matchup %d*\n", r.MatchupID))
	for i, side := range r.Teams {
		if i > 0 {
			sb.WriteString(" vs ")
		}
		sb.WriteString(fmt.Sprintf("%s (%.2f)", escape(side.TeamName), side.Points.Float()))
	}
	sb.WriteString("\n\n")
	sb.WriteString(escape(r.Text))
	return sb.String()
}

func FormatRoasts(week int, roasts []models.Roast) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏈🔥 *Week %d Matchup Roasts*\n\n", week))
	for _, r := range roasts {
		sb.WriteString(FormatRoast(r))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func FormatESPNRoast(r models.ESPNRoast) string {
	m := r.Matchup
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*Matchup:* %s (%.2f) vs %s (%.2f)", escape(m.HomeTeam), m.HomeScore, escape(m.AwayTeam), m.AwayScore))
	if m.IsPlayoff {
		sb.WriteString(" 🏆")
	}
	sb.WriteString("\n\n")
	sb.WriteString(escape(r.Text))
	return sb.String()
}

func FormatESPNRoasts(label string, roasts []models.ESPNRoast) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏈🔥 *Matchups for %s*\n\n", label))
	for _, r := range roasts {
		sb.WriteString(FormatESPNRoast(r))
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func FormatTeam(report *models.TeamReport) string {
	team := report.Team

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *Team:* %s\n", escape(team.DisplayName)))
	if team.OwnerName != "" && team.OwnerName != team.DisplayName {
		sb.WriteString(fmt.Sprintf("Owner: %s\n", escape(team.OwnerName)))
	}
	sb.WriteString(fmt.Sprintf("Total Points: %.2f\n\n", team.TotalPoints.Float()))

	sb.WriteString("*Top Players:*\n")
	top := recap.TopPlayers(team, recap.TopPlayerCount)
	if len(top) == 0 {
		sb.WriteString("No players on this roster.\n")
	}
	for i, p := range top {
		name := escape(p.Label())
		if p.Details.Position != "" {
			name = p.Details.Position + " " + name
		}
		sb.WriteString(fmt.Sprintf("%d. %s - %.2f pts\n", i+1, name, p.Points.Float()))
	}

	if len(report.FailedWeeks) > 0 {
		sb.WriteString(fmt.Sprintf("\n⚠️ Missing data for weeks: %s\n", joinInts(report.FailedWeeks)))
	}
	return sb.String()
}

// ESPNWeekLabel returns the display label for an ESPN week.
func ESPNWeekLabel(week int) string {
	for _, o := range recap.ESPNWeekOptions() {
		if o.Week == week {
			return o.Label
		}
	}
	return fmt.Sprintf("NFL Week %d", week)
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}
