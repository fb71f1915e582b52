package domain

// SearchCriteria is the buyer's preferences for one search request.
type SearchCriteria struct {
	Region   string   `json:"region"`
	Budget   float64  `json:"budget"`
	District *string  `json:"district,omitempty"`
	UnitType *string  `json:"unit_type,omitempty"`
	MinArea  *float64 `json:"min_area,omitempty"`
	City     *string  `json:"city,omitempty"`
}

// DistrictValue returns the requested district or "" when none was given.
func (c SearchCriteria) DistrictValue() string {
	return stringOrEmpty(c.District)
}

func (c SearchCriteria) UnitTypeValue() string {
	return stringOrEmpty(c.UnitType)
}

func (c SearchCriteria) CityValue() string {
	return stringOrEmpty(c.City)
}

// MinAreaValue returns the requested minimum area, 0 meaning "no preference".
func (c SearchCriteria) MinAreaValue() float64 {
	return floatOrZero(c.MinArea)
}

// ScoredProject is a candidate project annotated for the search response.
type ScoredProject struct {
	Project
	MatchScore  int    `json:"match_score"`
	SalesScript string `json:"sales_script"`
}
