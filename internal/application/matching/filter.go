package matching

import (
	"context"
	"fmt"

	"matchmaker-backend/internal/domain"
	"matchmaker-backend/internal/infrastructure/store"
)

// StretchFactor admits projects priced up to 20% over budget; the scorer
// then marks them down.
const StretchFactor = 1.20

// ProjectFinder is the read side of the record store.
type ProjectFinder interface {
	FindProjects(ctx context.Context, q store.Query) ([]domain.Project, error)
}

// CandidateQuery translates criteria into store predicates.
func CandidateQuery(c domain.SearchCriteria) store.Query {
	q := store.Query{}
	q.Eq("region", c.Region).Gt("available_units", 0)
	if city := c.CityValue(); city != "" {
		q.Eq("city", city)
	}
	q.Lte("min_available_price", c.Budget*StretchFactor)
	if unitType := c.UnitTypeValue(); unitType != "" {
		q.ILike("unit_types", unitType)
	}
	if minArea := c.MinAreaValue(); minArea > 0 {
		q.Gte("max_available_area", minArea)
	}
	return q
}

// FindCandidates issues the single store read for a search.
func FindCandidates(ctx context.Context, finder ProjectFinder, c domain.SearchCriteria) ([]domain.Project, error) {
	projects, err := finder.FindProjects(ctx, CandidateQuery(c))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreQuery, err)
	}
	return projects, nil
}
