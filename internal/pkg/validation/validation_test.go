package validation

import (
	"testing"

	"matchmaker-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSearchCriteria_Valid(t *testing.T) {
	area := 120.0
	assert.Empty(t, SearchCriteria(domain.SearchCriteria{Region: "north", Budget: 500000, MinArea: &area}))
}

func TestSearchCriteria_MissingRequired(t *testing.T) {
	errs := SearchCriteria(domain.SearchCriteria{Region: "  "})
	assert.Contains(t, errs, "region")
	assert.Contains(t, errs, "budget")
	assert.Len(t, errs, 2)
}

func TestSearchCriteria_NegativeArea(t *testing.T) {
	area := -1.0
	errs := SearchCriteria(domain.SearchCriteria{Region: "north", Budget: 1, MinArea: &area})
	assert.Equal(t, map[string]string{"min_area": "min_area must not be negative"}, errs)
}
