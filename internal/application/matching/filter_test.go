package matching

import (
	"testing"

	"matchmaker-backend/internal/domain"
	"matchmaker-backend/internal/infrastructure/store"

	"github.com/stretchr/testify/assert"
)

func TestCandidateQuery_RequiredOnly(t *testing.T) {
	q := CandidateQuery(domain.SearchCriteria{Region: "north", Budget: 1000000})
	assert.Empty(t, q.Columns)
	assert.Equal(t, []store.Predicate{
		{Column: "region", Op: store.OpEq, Value: "north"},
		{Column: "available_units", Op: store.OpGt, Value: 0},
		{Column: "min_available_price", Op: store.OpLte, Value: 1200000.0},
	}, q.Predicates)
}

func TestCandidateQuery_AllOptional(t *testing.T) {
	q := CandidateQuery(domain.SearchCriteria{
		Region:   "north",
		Budget:   500000,
		City:     ptr("Riyadh"),
		UnitType: ptr("villa"),
		MinArea:  ptr(250.0),
		District: ptr("Al Malqa"),
	})
	assert.Equal(t, []store.Predicate{
		{Column: "region", Op: store.OpEq, Value: "north"},
		{Column: "available_units", Op: store.OpGt, Value: 0},
		{Column: "city", Op: store.OpEq, Value: "Riyadh"},
		{Column: "min_available_price", Op: store.OpLte, Value: 600000.0},
		{Column: "unit_types", Op: store.OpILike, Value: "villa"},
		{Column: "max_available_area", Op: store.OpGte, Value: 250.0},
	}, q.Predicates)
}

func TestCandidateQuery_EmptyOptionalsIgnored(t *testing.T) {
	q := CandidateQuery(domain.SearchCriteria{Region: "south", Budget: 100, City: ptr(""), UnitType: ptr(""), MinArea: ptr(0.0)})
	assert.Len(t, q.Predicates, 3)
}
