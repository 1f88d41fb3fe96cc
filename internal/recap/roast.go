package recap

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/omarshaarawi/roastbot/internal/models"
)

const (
	roastSystem     = "You are a witty and funny sports commentator."
	espnRoastSystem = "You are a witty sports commentator."

	roastMaxTokens   = 100
	roastTemperature = 0.8
)

var (
	headToHeadTemplate = newTemplate("head to head roast",
		`Team {{.team_a}} scored {{.points_a}} points against Team {{.team_b}} who scored {{.points_b}}. Write a funny roast for this matchup.`)

	soloTemplate = newTemplate("solo roast",
		`Team {{.team_a}} played alone this week. Write a funny roast.`)

	espnTemplate = newTemplate("espn roast", `Write a funny and sarcastic roast for a fantasy football matchup{{.playoff}}:
Home Team: {{.home_team}} (Score: {{.home_score}})
Away Team: {{.away_team}} (Score: {{.away_score}})
Make it witty and fun!`)
)

// RoastGIFQueries are the searches a weekly roast picks its GIF from.
var RoastGIFQueries = []string{"nfl crowd cheering", "nfl celebration", "epic fail"}

// RecapGIFQuery is the search used for season recap GIFs.
const RecapGIFQuery = "nfl celebration"

type Pairing struct {
	MatchupID int
	Sides     []models.MatchupSide
}

// PairMatchups groups a week's records into fixtures ordered by matchup id.
// Invalid records are dropped; rosters missing from dir are named
// "Team {roster_id}".
func PairMatchups(dir Directory, records []models.MatchupRecord) []Pairing {
	byID := make(map[int]*Pairing)
	var ids []int

	for _, m := range records {
		if !m.Valid() {
			continue
		}

		name := fallbackTeamName(*m.RosterID)
		if t, ok := dir.Team(*m.RosterID); ok {
			name = t.DisplayName
		}

		p, ok := byID[*m.MatchupID]
		if !ok {
			p = &Pairing{MatchupID: *m.MatchupID}
			byID[*m.MatchupID] = p
			ids = append(ids, *m.MatchupID)
		}
		p.Sides = append(p.Sides, models.MatchupSide{
			RosterID: *m.RosterID,
			TeamName: name,
			Points:   models.PointsFromFloat(m.PointsOrZero()),
		})
	}

	sort.Ints(ids)
	pairings := make([]Pairing, 0, len(ids))
	for _, id := range ids {
		pairings = append(pairings, *byID[id])
	}
	return pairings
}

// MatchupRoastPrompt builds the roast request for one fixture. Anything other
// than exactly two sides is treated as a team playing alone.
func MatchupRoastPrompt(p Pairing) Prompt {
	prompt := Prompt{
		System:      roastSystem,
		MaxTokens:   roastMaxTokens,
		Temperature: roastTemperature,
	}

	if len(p.Sides) == 2 {
		a, b := p.Sides[0], p.Sides[1]
		prompt.Template = headToHeadTemplate
		prompt.Bindings = []Binding{
			{Label: "team_a", Value: a.TeamName},
			{Label: "points_a", Value: a.Points.String()},
			{Label: "team_b", Value: b.TeamName},
			{Label: "points_b", Value: b.Points.String()},
		}
		return prompt
	}

	name := "N/A"
	if len(p.Sides) > 0 {
		name = p.Sides[0].TeamName
	}
	prompt.Template = soloTemplate
	prompt.Bindings = []Binding{{Label: "team_a", Value: name}}
	return prompt
}

// ESPNRoastPrompt builds the roast request for an ESPN fixture.
func ESPNRoastPrompt(m models.ESPNMatchup) Prompt {
	playoff := ""
	if m.IsPlayoff {
		playoff = " in the playoffs"
	}
	return Prompt{
		System:   espnRoastSystem,
		Template: espnTemplate,
		Bindings: []Binding{
			{Label: "playoff", Value: playoff},
			{Label: "home_team", Value: m.HomeTeam},
			{Label: "home_score", Value: strconv.FormatFloat(m.HomeScore, 'f', -1, 64)},
			{Label: "away_team", Value: m.AwayTeam},
			{Label: "away_score", Value: strconv.FormatFloat(m.AwayScore, 'f', -1, 64)},
		},
	}
}

type WeekOption struct {
	Label   string
	Week    int
	Playoff bool
}

// ESPNWeekOptions lists the selectable ESPN weeks. Playoff rounds span two
// NFL weeks and are looked up by their last week.
func ESPNWeekOptions() []WeekOption {
	options := make([]WeekOption, 0, 16)
	for w := 1; w <= 14; w++ {
		options = append(options, WeekOption{Label: fmt.Sprintf("NFL Week %d", w), Week: w})
	}
	return append(options,
		WeekOption{Label: "Playoff Round 1 (NFL Week 15 - NFL Week 16)", Week: 16, Playoff: true},
		WeekOption{Label: "Playoff Round 2 (NFL Week 17 - NFL Week 18)", Week: 18, Playoff: true},
	)
}
