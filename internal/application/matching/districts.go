package matching

import (
	"sort"

	"matchmaker-backend/internal/domain"
	"matchmaker-backend/internal/infrastructure/store"
)

// DistrictQuery selects the district column, optionally narrowed by region and city.
func DistrictQuery(region, city string) store.Query {
	q := store.Select("district")
	if city != "" {
		q.Eq("city", city)
	}
	if region != "" {
		q.Eq("region", region)
	}
	return *q
}

// UniqueDistricts collapses rows to distinct non-empty districts, sorted.
func UniqueDistricts(rows []domain.Project) []string {
	seen := make(map[string]struct{}, len(rows))
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		d := r.DistrictValue()
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
