package models

type User struct {
	UserID      string  `json:"user_id"`
	DisplayName string  `json:"display_name"`
	Avatar      *string `json:"avatar"`
}

type Roster struct {
	RosterID int             `json:"roster_id"`
	OwnerID  string          `json:"owner_id"`
	Metadata *RosterMetadata `json:"metadata"`
	Players  []string        `json:"players"`
}

type RosterMetadata struct {
	TeamName string `json:"team_name"`
}

// MatchupRecord is one roster's entry for a week. Pointer fields are nil when
// the upstream payload omits them.
type MatchupRecord struct {
	MatchupID *int     `json:"matchup_id"`
	RosterID  *int     `json:"roster_id"`
	Points    *float64 `json:"points"`
	Starters  []string `json:"starters"`
}

// Valid reports whether the record can be attributed to a fixture and team.
func (m MatchupRecord) Valid() bool {
	return m.MatchupID != nil && m.RosterID != nil
}

func (m MatchupRecord) PointsOrZero() float64 {
	if m.Points == nil {
		return 0
	}
	return *m.Points
}

type PlayerDetail struct {
	PlayerID  string `json:"player_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
}

// UnknownPlayer stands in for roster entries missing from the player data.
var UnknownPlayer = PlayerDetail{FullName: "Unknown Player"}

type NFLState struct {
	Season     string `json:"season"`
	SeasonType string `json:"season_type"`
	Week       int    `json:"week"`
	Leg        int    `json:"leg"`
}
