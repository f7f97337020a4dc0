package output

import (
	"sort"

	"github.com/immocalc/property-projection/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName  string
	FinalNetWorth decimal.Decimal
	RunnerUp      string
	Lead          decimal.Decimal // over the runner-up
	LeadPct       decimal.Decimal
}

// AnalyzeScenarios ranks scenarios by net worth at the end of their horizon.
// Ties keep configuration order.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	type ranked struct {
		name     string
		netWorth decimal.Decimal
	}
	var ranks []ranked
	for _, sc := range results.Scenarios {
		ranks = append(ranks, ranked{sc.Name, sc.FinalNetWorth()})
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].netWorth.GreaterThan(ranks[j].netWorth) })
	best := ranks[0]
	rec := Recommendation{ScenarioName: best.name, FinalNetWorth: best.netWorth}
	if len(ranks) > 1 {
		second := ranks[1]
		rec.RunnerUp = second.name
		rec.Lead = best.netWorth.Sub(second.netWorth)
		if !second.netWorth.IsZero() {
			rec.LeadPct = rec.Lead.Div(second.netWorth.Abs()).Mul(decimalHundred)
		}
	}
	return rec
}
