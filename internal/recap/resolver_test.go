package recap

import (
	"reflect"
	"testing"

	"github.com/omarshaarawi/roastbot/internal/models"
)

func strPtr(s string) *string { return &s }

func TestResolveTeams_namePrecedence(t *testing.T) {
	users := []models.User{
		{UserID: "u1", DisplayName: "alice", Avatar: strPtr("av1")},
		{UserID: "u2", DisplayName: "bob"},
		{UserID: "u3"},
	}
	rosters := []models.Roster{
		{RosterID: 1, OwnerID: "u1", Metadata: &models.RosterMetadata{TeamName: "Stairway to Evans"}},
		{RosterID: 2, OwnerID: "u2", Metadata: &models.RosterMetadata{}},
		{RosterID: 3, OwnerID: "nobody"},
		{RosterID: 4},
		{RosterID: 5, OwnerID: "u3"},
	}

	dir := ResolveTeams(users, rosters, nil)

	tests := []struct {
		rosterID    int
		displayName string
		ownerName   string
		hasOwner    bool
		avatarURL   string
	}{
		{rosterID: 1, displayName: "Stairway to Evans", ownerName: "alice", hasOwner: true, avatarURL: "https://sleepercdn.com/avatars/av1"},
		{rosterID: 2, displayName: "bob", ownerName: "bob", hasOwner: true, avatarURL: models.PlaceholderAvatarURL},
		{rosterID: 3, displayName: "Team 3"},
		{rosterID: 4, displayName: "Team 4"},
		{rosterID: 5, displayName: "User u3", ownerName: "User u3", hasOwner: true, avatarURL: models.PlaceholderAvatarURL},
	}

	if dir.Len() != len(tests) {
		t.Fatalf("expected %d teams, got %d", len(tests), dir.Len())
	}

	for _, tc := range tests {
		team, ok := dir.Team(tc.rosterID)
		if !ok {
			t.Fatalf("roster %d missing from directory", tc.rosterID)
		}
		if team.DisplayName != tc.displayName {
			t.Errorf("roster %d: expected display name %q, got %q", tc.rosterID, tc.displayName, team.DisplayName)
		}
		if team.OwnerName != tc.ownerName {
			t.Errorf("roster %d: expected owner %q, got %q", tc.rosterID, tc.ownerName, team.OwnerName)
		}
		if team.HasOwner != tc.hasOwner {
			t.Errorf("roster %d: expected hasOwner %v, got %v", tc.rosterID, tc.hasOwner, team.HasOwner)
		}
		if team.AvatarURL() != tc.avatarURL {
			t.Errorf("roster %d: expected avatar %q, got %q", tc.rosterID, tc.avatarURL, team.AvatarURL())
		}
		if team.TotalPoints != 0 {
			t.Errorf("roster %d: expected zero points, got %v", tc.rosterID, team.TotalPoints)
		}
	}
}

func TestResolveTeams_keepsRosterOrder(t *testing.T) {
	rosters := []models.Roster{{RosterID: 7}, {RosterID: 2}, {RosterID: 7}, {RosterID: 4}}

	dir := ResolveTeams(nil, rosters, nil)

	var ids []int
	for _, team := range dir.Teams() {
		ids = append(ids, team.RosterID)
	}
	if !reflect.DeepEqual(ids, []int{7, 2, 4}) {
		t.Errorf("expected roster order [7 2 4], got %v", ids)
	}
}

func TestResolveTeams_players(t *testing.T) {
	players := map[string]models.PlayerDetail{
		"A": {PlayerID: "A", FullName: "Jalen Hurts", Position: "QB"},
	}
	rosters := []models.Roster{{RosterID: 1, Players: []string{"A", "B", "A"}}}

	dir := ResolveTeams(nil, rosters, players)
	team, _ := dir.Team(1)

	expected := []models.TeamPlayer{
		{PlayerID: "A", Details: players["A"]},
		{PlayerID: "B", Details: models.UnknownPlayer},
	}
	if !reflect.DeepEqual(team.Players, expected) {
		t.Errorf("unexpected players: %+v", team.Players)
	}
}

func TestResolveTeams_empty(t *testing.T) {
	dir := ResolveTeams(nil, nil, nil)
	if dir.Len() != 0 {
		t.Errorf("expected empty directory, got %d teams", dir.Len())
	}
	if _, ok := dir.Team(1); ok {
		t.Errorf("empty directory should not contain roster 1")
	}
}

func TestDirectory_teamsAreCopies(t *testing.T) {
	dir := ResolveTeams(nil, []models.Roster{{RosterID: 1, Players: []string{"A"}}}, nil)

	teams := dir.Teams()
	teams[0].Players[0].Points = 500
	teams[0].TotalPoints = 500

	team, _ := dir.Team(1)
	if team.TotalPoints != 0 || team.Players[0].Points != 0 {
		t.Errorf("mutating Teams() result changed the directory: %+v", team)
	}
}
