package matching

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"matchmaker-backend/internal/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	budgetWeight   = 40.0
	locationBase   = 15.0
	districtBonus  = 15.0
	areaWeight     = 20.0
	unitTypeWeight = 10.0
	maxScore       = 100.0

	// ExcellentMatchScore is the score from which the pitch calls the offer an excellent match.
	ExcellentMatchScore = 80
)

// Breakdown holds the four independent sub-scores of one candidate.
type Breakdown struct {
	Budget   float64
	Location float64
	Area     float64
	UnitType float64
}

// Total is floor(min(sum, 100)).
func (b Breakdown) Total() int {
	sum := b.Budget + b.Location + b.Area + b.UnitType
	return int(math.Floor(math.Min(sum, maxScore)))
}

// ScoreBreakdown computes every sub-score for p against c. It reads nothing
// but its arguments, so candidates can be scored in any order.
func ScoreBreakdown(c domain.SearchCriteria, p domain.Project) Breakdown {
	return Breakdown{
		Budget:   budgetScore(p.MinAvailablePriceValue(), c.Budget),
		Location: locationScore(c.DistrictValue(), p.DistrictValue()),
		Area:     areaScore(p.MinAvailableAreaValue(), c.MinAreaValue()),
		UnitType: unitTypeScore(c.UnitTypeValue(), p.UnitTypesValue()),
	}
}

func budgetScore(price, budget float64) float64 {
	if price <= budget {
		return budgetWeight
	}
	return budgetWeight * (budget / price)
}

// locationScore: region and city already matched in the query, so the base
// is unconditional. The district bonus is a two-way substring test.
func locationScore(wanted, district string) float64 {
	score := locationBase
	if wanted != "" && district != "" &&
		(strings.Contains(district, wanted) || strings.Contains(wanted, district)) {
		score += districtBonus
	}
	return score
}

func areaScore(area, target float64) float64 {
	if target <= 0 || area >= target {
		return areaWeight
	}
	return areaWeight * (area / target)
}

// unitTypeScore is case-sensitive, unlike the ILIKE store filter.
func unitTypeScore(wanted, unitTypes string) float64 {
	if wanted == "" || strings.Contains(unitTypes, wanted) {
		return unitTypeWeight
	}
	return 0
}

const (
	scriptIntro       = "بناءً على طلبك في %s، أرشح لك '%s'. "
	scriptUnitType    = "يتوفر لديهم %s بمساحات تبدأ من %sم². "
	scriptPrice       = "السعر يبدأ من %s ريال. "
	scriptAboveBudget = "مشروع مميز يستحق الاستثمار بزيادة بسيطة عن الميزانية."
	scriptExcellent   = "هذا العرض يطابق معاييرك بشكل ممتاز!"
)

var pricePrinter = message.NewPrinter(language.English)

// SalesScript renders the Arabic pitch for a scored candidate.
func SalesScript(c domain.SearchCriteria, p domain.Project, score int) string {
	price := p.MinAvailablePriceValue()

	var b strings.Builder
	b.WriteString(fmt.Sprintf(scriptIntro, p.Region, p.Name))
	if unitType := c.UnitTypeValue(); unitType != "" {
		area := strconv.FormatFloat(p.MinAvailableAreaValue(), 'f', -1, 64)
		b.WriteString(fmt.Sprintf(scriptUnitType, unitType, area))
	}
	b.WriteString(fmt.Sprintf(scriptPrice, FormatPrice(price)))

	switch {
	case price > c.Budget:
		b.WriteString(scriptAboveBudget)
	case score >= ExcellentMatchScore:
		b.WriteString(scriptExcellent)
	}
	return strings.TrimSpace(b.String())
}

// FormatPrice groups thousands with commas and drops decimals: 1420000 -> "1,420,000".
func FormatPrice(v float64) string {
	return pricePrinter.Sprintf("%.0f", v)
}

// ScoreProject annotates one candidate.
func ScoreProject(c domain.SearchCriteria, p domain.Project) domain.ScoredProject {
	score := ScoreBreakdown(c, p).Total()
	return domain.ScoredProject{
		Project:     p,
		MatchScore:  score,
		SalesScript: SalesScript(c, p, score),
	}
}

func ScoreAll(c domain.SearchCriteria, candidates []domain.Project) []domain.ScoredProject {
	out := make([]domain.ScoredProject, 0, len(candidates))
	for _, p := range candidates {
		out = append(out, ScoreProject(c, p))
	}
	return out
}
