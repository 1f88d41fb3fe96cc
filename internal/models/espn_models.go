package models

type LeagueResponse struct {
	ID              int        `json:"id"`
	ScoringPeriodID int        `json:"scoringPeriodId"`
	SeasonID        int        `json:"seasonId"`
	Status          Status     `json:"status"`
	Teams           []ESPNTeam `json:"teams"`
	Settings        Settings   `json:"settings"`
}

type Settings struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type Status struct {
	CurrentMatchupPeriod int  `json:"currentMatchupPeriod"`
	FinalScoringPeriod   int  `json:"finalScoringPeriod"`
	FirstScoringPeriod   int  `json:"firstScoringPeriod"`
	IsActive             bool `json:"isActive"`
}

type ESPNTeam struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbrev"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	Nickname     string `json:"nickname"`
	Logo         string `json:"logo"`
}

// DisplayName mirrors what the ESPN UI shows. Older seasons only carry
// location and nickname.
func (t ESPNTeam) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	if t.Location != "" || t.Nickname != "" {
		return t.Location + " " + t.Nickname
	}
	return t.Abbreviation
}

type MatchupScore struct {
	ID              int        `json:"id"`
	MatchupPeriodID int        `json:"matchupPeriodId"`
	PlayoffTierType string     `json:"playoffTierType"`
	Away            *TeamScore `json:"away"`
	Home            *TeamScore `json:"home"`
	Winner          string     `json:"winner"`
}

type TeamScore struct {
	TeamID          int     `json:"teamId"`
	TotalPoints     float64 `json:"totalPoints"`
	TotalPointsLive float64 `json:"totalPointsLive"`
}
