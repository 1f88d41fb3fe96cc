package recap

import (
	"testing"

	"github.com/omarshaarawi/roastbot/internal/models"
)

func TestFindTeam(t *testing.T) {
	dir := ResolveTeams(
		[]models.User{{UserID: "u1", DisplayName: "8thAndFinalRule"}, {UserID: "u2", DisplayName: "mww"}},
		[]models.Roster{
			{RosterID: 1, OwnerID: "u1", Metadata: &models.RosterMetadata{TeamName: "Puk Nukem"}},
			{RosterID: 2, OwnerID: "u2", Metadata: &models.RosterMetadata{TeamName: "No-Bell Prizes"}},
			{RosterID: 3, Metadata: &models.RosterMetadata{TeamName: "Jolly Roger"}},
		},
		nil,
	)

	tests := []struct {
		query    string
		found    bool
		rosterID int
	}{
		{query: "Puk Nukem", found: true, rosterID: 1},
		{query: "puk nukum", found: true, rosterID: 1},
		{query: "  NO-BELL PRIZES ", found: true, rosterID: 2},
		{query: "jolly rogers", found: true, rosterID: 3},
		{query: "mww", found: true, rosterID: 2},
		{query: "8thandfinalrule", found: true, rosterID: 1},
		{query: "Stairway to Evans", found: false},
		{query: "", found: false},
	}

	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			team, found := FindTeam(dir, tc.query)
			if found != tc.found {
				t.Fatalf("expected found=%v, got %v (%+v)", tc.found, found, team)
			}
			if found && team.RosterID != tc.rosterID {
				t.Errorf("expected roster %d, got %d", tc.rosterID, team.RosterID)
			}
		})
	}
}

func TestFindTeam_multibyteNames(t *testing.T) {
	dir := ResolveTeams(nil, []models.Roster{
		{RosterID: 1, Metadata: &models.RosterMetadata{TeamName: "日本語チーム"}},
	}, nil)

	// similarity is measured in characters, not bytes
	if team, found := FindTeam(dir, "日本"); found {
		t.Errorf("a two character query should not match, got %+v", team)
	}
	if team, found := FindTeam(dir, "日本語チー"); !found || team.RosterID != 1 {
		t.Errorf("expected roster 1, got %+v (found=%v)", team, found)
	}
}
