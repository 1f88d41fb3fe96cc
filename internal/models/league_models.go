package models

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	sleeperAvatarURL     = "https://sleepercdn.com/avatars/%s"
	PlaceholderAvatarURL = "https://via.placeholder.com/150.png?text=No+Avatar"
)

// Points is a fantasy score in hundredths of a point. Platforms report two
// decimals, so sums stay exact regardless of the order weeks are folded in.
type Points int64

func PointsFromFloat(f float64) Points {
	return Points(math.Round(f * 100))
}

func (p Points) Float() float64 {
	return float64(p) / 100
}

func (p Points) String() string {
	return strconv.FormatFloat(p.Float(), 'f', -1, 64)
}

func (p Points) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

type TeamPlayer struct {
	PlayerID string
	Details  PlayerDetail
	Points   Points
}

// Label is the name used in prompts and reports.
func (p TeamPlayer) Label() string {
	if p.Details.FullName != "" {
		return p.Details.FullName
	}
	return p.PlayerID
}

type Team struct {
	RosterID    int
	DisplayName string
	OwnerName   string
	Avatar      string
	HasOwner    bool
	TotalPoints Points
	Players     []TeamPlayer
}

// AvatarURL is empty for ownerless rosters and a placeholder for owners
// without an uploaded avatar.
func (t Team) AvatarURL() string {
	if !t.HasOwner {
		return ""
	}
	if t.Avatar == "" {
		return PlaceholderAvatarURL
	}
	return fmt.Sprintf(sleeperAvatarURL, t.Avatar)
}

// Clone returns a deep copy so folds never share player slices.
func (t Team) Clone() Team {
	c := t
	c.Players = make([]TeamPlayer, len(t.Players))
	copy(c.Players, t.Players)
	return c
}

type Recap struct {
	RosterID  int    `json:"roster_id"`
	OwnerName string `json:"owner_name"`
	TeamName  string `json:"team_name"`
	Text      string `json:"text"`
	AvatarURL string `json:"avatar_url,omitempty"`
	GIFURL    string `json:"gif_url,omitempty"`
	Failed    bool   `json:"failed"`
}

type MatchupSide struct {
	RosterID int    `json:"roster_id"`
	TeamName string `json:"team_name"`
	Points   Points `json:"points"`
}

type Roast struct {
	MatchupID int           `json:"matchup_id"`
	Teams     []MatchupSide `json:"teams"`
	Text      string        `json:"text"`
	GIFURL    string        `json:"gif_url,omitempty"`
	Failed    bool          `json:"failed"`
}

type ESPNMatchup struct {
	HomeTeam  string  `json:"home_team"`
	AwayTeam  string  `json:"away_team"`
	HomeScore float64 `json:"home_score"`
	AwayScore float64 `json:"away_score"`
	HomeLogo  string  `json:"home_logo,omitempty"`
	AwayLogo  string  `json:"away_logo,omitempty"`
	IsPlayoff bool    `json:"is_playoff"`
}

type ESPNRoast struct {
	Matchup ESPNMatchup `json:"matchup"`
	Text    string      `json:"text"`
	Failed  bool        `json:"failed"`
}

type WeekError struct {
	Week int
	Err  error
}

func (e WeekError) Error() string {
	return fmt.Sprintf("week %d: %v", e.Week, e.Err)
}

func (e WeekError) Unwrap() error {
	return e.Err
}

type SeasonReport struct {
	Weeks       []int   `json:"weeks"`
	FailedWeeks []int   `json:"failed_weeks,omitempty"`
	Recaps      []Recap `json:"recaps"`
}

// TeamReport is one team's season to date. FailedWeeks are left out of the
// totals.
type TeamReport struct {
	Team        Team  `json:"team"`
	Weeks       []int `json:"weeks"`
	FailedWeeks []int `json:"failed_weeks,omitempty"`
}

type LeagueState struct {
	Season      string
	SeasonType  string
	Week        int
	LastUpdated time.Time
}
