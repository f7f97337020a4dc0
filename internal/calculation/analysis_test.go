package calculation

import (
	"testing"

	"github.com/immocalc/property-projection/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyKeyFigures_Purchase(t *testing.T) {
	params := purchaseParams()
	ledger, err := NewPropertyProjector(nil, nil).Project(params)
	require.NoError(t, err)

	kf := PropertyKeyFigures(params, ledger, ledger)

	assertDec(t, "1173000", kf.TotalCost, "total cost")
	assertDec(t, "633000", kf.LoanAmount, "loan")
	assertDec(t, "2743", kf.MonthlyBankPayment, "monthly bank payment")
	assertNear(t, 46.9565, kf.EquityRatioPct, "equity ratio against price")
	assertNear(t, 2.208, kf.GrossYieldPct, "gross yield")
	assertNear(t, 45.2898, kf.PriceFactor, "price factor")
	assert.Equal(t, 31, kf.YearsToPayoff)
	assertNear(t, 3208.4221, kf.AvgMonthlyTotalCost, "avg monthly total")
	assertNear(t, -204.6639, kf.AvgMonthlyBurden, "avg burden")
	assertNear(t, -1809.3230, kf.AvgAfterTaxCashflow, "avg cashflow")
	assertNear(t, 2124727.1382, kf.FinalNetWorth, "final net worth")
	assertNear(t, 187660.0985, kf.EqualizationYear10, "equalization year 10")
	assertNear(t, 486523.3860, kf.PrincipalAtRateLock, "principal at rate lock")
	assertNear(t, 3243.4892, kf.RefinanceMonthlyAt6, "refinance at 6%")
	assertNear(t, 4054.3616, kf.RefinanceMonthlyAt8, "refinance at 8%")
	assertNear(t, 500.4892, kf.RefinanceDeltaAt6, "delta at 6%")
	assertNear(t, 1311.3616, kf.RefinanceDeltaAt8, "delta at 8%")
}

func TestPropertyKeyFigures_ConstructionUsesTotalInvestment(t *testing.T) {
	params := constructionParams()
	ledger, err := NewPropertyProjector(nil, nil).Project(params)
	require.NoError(t, err)

	kf := PropertyKeyFigures(params, ledger, ledger)
	// 540000 / 900500
	assertNear(t, 59.9667, kf.EquityRatioPct, "equity ratio")
	// 25392 / 900500
	assertNear(t, 2.8198, kf.GrossYieldPct, "gross yield")
	assertNear(t, 35.4639, kf.PriceFactor, "price factor")
}

func TestPropertyKeyFigures_ZeroRentAndShortLedger(t *testing.T) {
	params := purchaseParams()
	params.Rental.MonthlyRent = decimal.Zero
	params.Loan.RateLockYears = 200

	ledger, err := NewPropertyProjector(nil, nil).Project(params)
	require.NoError(t, err)
	kf := PropertyKeyFigures(params, ledger, ledger)

	assert.True(t, kf.PriceFactor.IsZero())
	assert.True(t, kf.GrossYieldPct.IsZero())
	assert.True(t, kf.PrincipalAtRateLock.IsZero(), "rate lock beyond the horizon")
	assert.True(t, kf.RefinanceMonthlyAt6.IsZero())
}

func TestSavingsKeyFigures(t *testing.T) {
	ledger := NewSavingsPlanProjector(nil).Project(savingsParams())
	kf := SavingsKeyFigures(ledger)

	assertNear(t, 4732846.9005, kf.FinalNet, "final net")
	assertDec(t, "900000", kf.TotalInvested, "invested")
	assertNear(t, 870032.732, kf.FinalLatentTax, "latent tax")
	// 4702879.6325 / 4732846.9005
	assertNear(t, 99.3668, kf.GainSharePct, "gain share")

	empty := SavingsKeyFigures(&domain.SavingsLedger{})
	assert.True(t, empty.FinalNet.IsZero())
	assert.True(t, empty.GainSharePct.IsZero())
}

func TestEquivalentSavingsRate(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		start    string
		rate     string
		months   int
		expected float64
	}{
		{"from zero at 6%", "200000", "0", "6", 120, 1220.4100},
		{"zero return is linear", "1000000", "100000", "0", 120, 7500},
		{"start capital already outgrows target", "2124727.1382", "540000", "7", 372, -1949.9541},
		{"no months", "1000", "0", "7", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EquivalentSavingsRate(d(tt.target), d(tt.start), d(tt.rate), tt.months)
			assert.InDelta(t, tt.expected, got.InexactFloat64(), 0.01)
		})
	}
}

func TestEquivalentSavingsRate_RoundTripsThroughProjector(t *testing.T) {
	rate := EquivalentSavingsRate(d("500000"), d("100000"), d("5"), 20*12)
	ledger := NewSavingsPlanProjector(nil).Project(domain.SavingsPlanParameters{
		Starting:            domain.Contribution{Cash: d("100000")},
		MonthlyContribution: rate,
		AnnualReturnPct:     d("5"),
		DurationYears:       20,
	})
	last, ok := ledger.Final()
	require.True(t, ok)
	assert.InDelta(t, 500000, last.Gross.InexactFloat64(), 0.01)
}
