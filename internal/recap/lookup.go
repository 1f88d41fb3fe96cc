package recap

import (
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/roastbot/internal/models"
)

const teamMatchThreshold = 0.6

// FindTeam returns the team whose display name is closest to query by
// Levenshtein similarity. Matches at or below the threshold are rejected.
func FindTeam(dir Directory, query string) (models.Team, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return models.Team{}, false
	}

	var best models.Team
	bestScore := teamMatchThreshold
	found := false

	for _, team := range dir.Teams() {
		for _, name := range []string{team.DisplayName, team.OwnerName} {
			name = strings.ToLower(name)
			if name == "" {
				continue
			}
			distance := fuzzy.LevenshteinDistance(query, name)
			maxLen := float64(max(utf8.RuneCountInString(query), utf8.RuneCountInString(name)))
			similarity := 1 - float64(distance)/maxLen

			if similarity > bestScore {
				bestScore = similarity
				best = team
				found = true
			}
		}
	}

	return best, found
}
