package recap

import (
	"context"
	"log/slog"

	"github.com/omarshaarawi/roastbot/internal/models"
)

// MatchupFetcher loads one week of matchup records.
type MatchupFetcher func(ctx context.Context, week int) ([]models.MatchupRecord, error)

// FoldWeek adds one week of matchup records to a copy of dir and returns it.
//
// Records without a matchup or roster id are dropped, as are records for
// rosters not in the directory. Each starter on the team's roster is credited
// with the team's full matchup score, not a share of it.
func FoldWeek(dir Directory, records []models.MatchupRecord) Directory {
	next := dir.clone()

	for _, m := range records {
		if !m.Valid() {
			continue
		}

		team, ok := next.teams[*m.RosterID]
		if !ok {
			continue
		}

		points := models.PointsFromFloat(m.PointsOrZero())
		team.TotalPoints += points

		starters := make(map[string]bool, len(m.Starters))
		for _, id := range m.Starters {
			starters[id] = true
		}
		for i := range team.Players {
			if starters[team.Players[i].PlayerID] {
				team.Players[i].Points += points
			}
		}

		next.teams[*m.RosterID] = team
	}

	return next
}

// AggregateWeeks folds each requested week into dir in the order given. A
// week whose fetch fails is skipped and reported; the remaining weeks are
// still folded.
func AggregateWeeks(ctx context.Context, dir Directory, weeks []int, fetch MatchupFetcher) (Directory, []models.WeekError) {
	var failed []models.WeekError

	for _, week := range weeks {
		if err := ctx.Err(); err != nil {
			failed = append(failed, models.WeekError{Week: week, Err: err})
			continue
		}

		records, err := fetch(ctx, week)
		if err != nil {
			slog.Error("Error fetching matchups", "week", week, "error", err)
			failed = append(failed, models.WeekError{Week: week, Err: err})
			continue
		}
		if len(records) == 0 {
			slog.Warn("No matchups returned", "week", week)
			continue
		}

		dir = FoldWeek(dir, records)
	}

	return dir, failed
}
