package matching

import (
	"context"

	"matchmaker-backend/internal/domain"
	"matchmaker-backend/internal/observability"

	"github.com/rs/zerolog/log"
)

// Service runs searches and district lookups against an injected store.
// A nil Store means the service started without database configuration.
type Service struct {
	Store ProjectFinder
}

// Search returns up to MaxResults scored projects, best first. Store errors
// are returned wrapped in ErrStoreQuery; an empty result is not an error.
func (s *Service) Search(ctx context.Context, c domain.SearchCriteria) ([]domain.ScoredProject, error) {
	if s.Store == nil {
		observability.SearchesTotal.WithLabelValues("error").Inc()
		return nil, ErrStoreUnavailable
	}

	candidates, err := FindCandidates(ctx, s.Store, c)
	if err != nil {
		observability.SearchesTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	observability.SearchCandidates.Observe(float64(len(candidates)))
	if len(candidates) == 0 {
		observability.SearchesTotal.WithLabelValues("empty").Inc()
		return []domain.ScoredProject{}, nil
	}

	observability.SearchesTotal.WithLabelValues("ok").Inc()
	return Rank(ScoreAll(c, candidates), MaxResults), nil
}

// Districts lists known districts. Failures are logged and reported as an
// empty list; this endpoint only feeds a dropdown.
func (s *Service) Districts(ctx context.Context, region, city string) []string {
	if s.Store == nil {
		log.Warn().Msg("districts: database configuration missing")
		observability.DistrictLookupFailures.Inc()
		return []string{}
	}
	rows, err := s.Store.FindProjects(ctx, DistrictQuery(region, city))
	if err != nil {
		log.Error().Err(err).Str("region", region).Str("city", city).Msg("Error fetching districts")
		observability.DistrictLookupFailures.Inc()
		return []string{}
	}
	return UniqueDistricts(rows)
}
