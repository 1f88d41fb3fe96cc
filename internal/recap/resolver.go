// Package recap turns raw league records into team totals, ranked players
// and chat prompts. Everything here is pure: no I/O and no shared state.
package recap

import (
	"fmt"

	"github.com/omarshaarawi/roastbot/internal/models"
)

// Directory maps roster ids to teams and remembers the order rosters were
// returned in, which is the order recaps are produced in.
type Directory struct {
	order []int
	teams map[int]models.Team
}

func (d Directory) Len() int {
	return len(d.order)
}

func (d Directory) Team(rosterID int) (models.Team, bool) {
	t, ok := d.teams[rosterID]
	if !ok {
		return models.Team{}, false
	}
	return t.Clone(), true
}

// Teams returns copies of every team in roster order.
func (d Directory) Teams() []models.Team {
	teams := make([]models.Team, 0, len(d.order))
	for _, id := range d.order {
		teams = append(teams, d.teams[id].Clone())
	}
	return teams
}

func (d Directory) clone() Directory {
	c := Directory{
		order: make([]int, len(d.order)),
		teams: make(map[int]models.Team, len(d.teams)),
	}
	copy(c.order, d.order)
	for id, t := range d.teams {
		c.teams[id] = t.Clone()
	}
	return c
}

func fallbackTeamName(rosterID int) string {
	return fmt.Sprintf("Team %d", rosterID)
}

func userDisplayName(u models.User) string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return fmt.Sprintf("User %s", u.UserID)
}

// ResolveTeams joins users and rosters into a directory with zeroed points.
// Team names come from the roster's team name, then the owner's display
// name, then "Team {roster_id}".
func ResolveTeams(users []models.User, rosters []models.Roster, players map[string]models.PlayerDetail) Directory {
	owners := make(map[string]models.User, len(users))
	for _, u := range users {
		owners[u.UserID] = u
	}

	dir := Directory{
		order: make([]int, 0, len(rosters)),
		teams: make(map[int]models.Team, len(rosters)),
	}

	for _, r := range rosters {
		if _, dup := dir.teams[r.RosterID]; dup {
			continue
		}

		team := models.Team{
			RosterID: r.RosterID,
			Players:  make([]models.TeamPlayer, 0, len(r.Players)),
		}

		owner, hasOwner := owners[r.OwnerID]
		if hasOwner && r.OwnerID != "" {
			team.HasOwner = true
			team.OwnerName = userDisplayName(owner)
			if owner.Avatar != nil {
				team.Avatar = *owner.Avatar
			}
		}

		switch {
		case r.Metadata != nil && r.Metadata.TeamName != "":
			team.DisplayName = r.Metadata.TeamName
		case team.HasOwner:
			team.DisplayName = team.OwnerName
		default:
			team.DisplayName = fallbackTeamName(r.RosterID)
		}

		seen := make(map[string]bool, len(r.Players))
		for _, id := range r.Players {
			if seen[id] {
				continue
			}
			seen[id] = true

			details, ok := players[id]
			if !ok {
				details = models.UnknownPlayer
			}
			team.Players = append(team.Players, models.TeamPlayer{PlayerID: id, Details: details})
		}

		dir.order = append(dir.order, r.RosterID)
		dir.teams[r.RosterID] = team
	}

	return dir
}
