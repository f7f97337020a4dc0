package calculation

import (
	"github.com/immocalc/property-projection/internal/domain"
	"github.com/shopspring/decimal"
)

// SAVINGS PLAN ASSUMPTIONS:
//
// 1. Monthly compounding at a twelfth of the nominal annual return; the
//    contribution is added after the month's growth.
// 2. Latent tax is a flat rate on the unrealized gain (gross minus contributed),
//    computed every year as if the plan were liquidated at year end.
// 3. Starting capital counts as contributed but is not part of the monthly flow.

// balancePrecision bounds the decimal places carried through monthly compounding
const balancePrecision = 10

// SavingsPlanProjector projects an index-fund savings plan
type SavingsPlanProjector struct {
	Logger Logger
}

// NewSavingsPlanProjector creates a projector; a nil logger falls back to NopLogger
func NewSavingsPlanProjector(logger Logger) *SavingsPlanProjector {
	if logger == nil {
		logger = NopLogger{}
	}
	return &SavingsPlanProjector{Logger: logger}
}

// Project runs the plan for its configured duration
func (sp *SavingsPlanProjector) Project(params domain.SavingsPlanParameters) *domain.SavingsLedger {
	start := params.Starting.Total()
	monthlyRate := pct(params.AnnualReturnPct).Div(twelve)
	growth := one.Add(monthlyRate)
	taxRate := pct(params.TaxRatePct)

	capital := start
	contributed := start
	years := make([]domain.SavingsYearRecord, 0, max(params.DurationYears, 0))

	for year := 1; year <= params.DurationYears; year++ {
		for month := 0; month < 12; month++ {
			capital = capital.Mul(growth).Round(balancePrecision).Add(params.MonthlyContribution)
			contributed = contributed.Add(params.MonthlyContribution)
		}

		gain := capital.Sub(contributed)
		latentTax := decimal.Max(gain.Mul(taxRate), decimal.Zero)
		years = append(years, domain.SavingsYearRecord{
			Year:        year,
			Contributed: contributed,
			Gross:       capital,
			Gain:        gain,
			LatentTax:   latentTax,
			Net:         capital.Sub(latentTax),
		})
	}

	sp.Logger.Debugf("savings plan projected over %d years from %s", params.DurationYears, start.StringFixed(2))
	return &domain.SavingsLedger{
		StartingCapital:     start,
		MonthlyContribution: params.MonthlyContribution,
		Years:               years,
	}
}
