package matching

import (
	"sort"

	"matchmaker-backend/internal/domain"
)

// MaxResults is the shortlist size returned by a search.
const MaxResults = 6

// Rank orders scored projects by descending match score and keeps the first
// limit. Equal scores keep their candidate order.
func Rank(scored []domain.ScoredProject, limit int) []domain.ScoredProject {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})
	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
