package validation

import (
	"math"
	"strings"

	"matchmaker-backend/internal/domain"
)

// SearchCriteria checks the fields a search cannot run without. It returns
// field name -> message, empty when the criteria are usable.
func SearchCriteria(c domain.SearchCriteria) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(c.Region) == "" {
		errs["region"] = "region is required"
	}
	if !isFinite(c.Budget) || c.Budget <= 0 {
		errs["budget"] = "budget is required and must be greater than 0"
	}
	if c.MinArea != nil && (!isFinite(*c.MinArea) || *c.MinArea < 0) {
		errs["min_area"] = "min_area must not be negative"
	}
	return errs
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
