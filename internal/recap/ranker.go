package recap

import (
	"fmt"
	"slices"
	"strings"

	"github.com/omarshaarawi/roastbot/internal/models"
)

const (
	TopPlayerCount = 3

	topPlayerSeparator = ", "
	unknownOwner       = "Unknown Owner"

	recapSystem = "You are Chris Berman, a witty and humorous sports commentator."
)

var recapTemplate = newTemplate("season recap", `Fantasy Football Season Recap for {{.owner}}:
The team, {{.team}}, scored a total of {{.total_points}} points.
Top players were: {{.top_players}}.
Highlight this team's best performances and any embarrassing failures, providing a humorous season commentary in Chris Berman's style.`)

// RankPlayers orders a team's players by points, highest first. Players with
// equal points keep their roster order.
func RankPlayers(team models.Team) []models.TeamPlayer {
	ranked := slices.Clone(team.Players)
	slices.SortStableFunc(ranked, func(a, b models.TeamPlayer) int {
		switch {
		case a.Points > b.Points:
			return -1
		case a.Points < b.Points:
			return 1
		default:
			return 0
		}
	})
	return ranked
}

// TopPlayers returns at most n of the team's highest scoring players.
func TopPlayers(team models.Team, n int) []models.TeamPlayer {
	ranked := RankPlayers(team)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// FormatPlayers renders players as "Name (N pts)" joined by ", ".
func FormatPlayers(players []models.TeamPlayer) string {
	parts := make([]string, 0, len(players))
	for _, p := range players {
		parts = append(parts, fmt.Sprintf("%s (%s pts)", p.Label(), p.Points))
	}
	return strings.Join(parts, topPlayerSeparator)
}

func ownerLabel(team models.Team) string {
	if team.OwnerName == "" {
		return unknownOwner
	}
	return team.OwnerName
}

// SeasonRecapPrompt builds the season recap request for a fully aggregated
// team.
func SeasonRecapPrompt(team models.Team) Prompt {
	return Prompt{
		System:   recapSystem,
		Template: recapTemplate,
		Bindings: []Binding{
			{Label: "owner", Value: ownerLabel(team)},
			{Label: "team", Value: team.DisplayName},
			{Label: "total_points", Value: team.TotalPoints.String()},
			{Label: "top_players", Value: FormatPlayers(TopPlayers(team, TopPlayerCount))},
		},
	}
}
