package calculation

import (
	"testing"

	"github.com/immocalc/property-projection/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func savingsParams() domain.SavingsPlanParameters {
	return domain.SavingsPlanParameters{
		Starting:            domain.Contribution{Cash: d("100000"), Gift: d("440000")},
		MonthlyContribution: d("1000"),
		AnnualReturnPct:     d("7"),
		TaxRatePct:          d("18.5"),
		DurationYears:       30,
	}
}

func TestSavingsPlanProjector_Project(t *testing.T) {
	ledger := NewSavingsPlanProjector(nil).Project(savingsParams())
	require.Len(t, ledger.Years, 30)
	assertDec(t, "540000", ledger.StartingCapital, "starting capital")

	tests := []struct {
		year        int
		contributed string
		gross       float64
		latentTax   float64
		net         float64
	}{
		{1, "552000", 591429.229, 7294.4074, 584134.8216},
		{2, "564000", 646576.281, 15276.612, 631299.669},
		{10, "660000", 1258301.9508, 110685.8609, 1147616.0899},
		{30, "900000", 5602879.6325, 870032.732, 4732846.9005},
	}

	for _, tt := range tests {
		r := ledger.Years[tt.year-1]
		assert.Equal(t, tt.year, r.Year)
		assertDec(t, tt.contributed, r.Contributed, "contributed")
		assertNear(t, tt.gross, r.Gross, "gross")
		assertNear(t, tt.latentTax, r.LatentTax, "latent tax")
		assertNear(t, tt.net, r.Net, "net")
		assert.True(t, r.Gain.Equal(r.Gross.Sub(r.Contributed)))
	}
}

func TestSavingsPlanProjector_ZeroReturnHasNoTax(t *testing.T) {
	ledger := NewSavingsPlanProjector(nil).Project(domain.SavingsPlanParameters{
		MonthlyContribution: d("100"),
		AnnualReturnPct:     d("0"),
		TaxRatePct:          d("18.5"),
		DurationYears:       2,
	})
	require.Len(t, ledger.Years, 2)
	assertDec(t, "2400", ledger.Years[1].Gross, "gross")
	assert.True(t, ledger.Years[1].LatentTax.IsZero())
	assertDec(t, "2400", ledger.Years[1].Net, "net")
}

func TestSavingsPlanProjector_LossIsNotTaxed(t *testing.T) {
	ledger := NewSavingsPlanProjector(nil).Project(domain.SavingsPlanParameters{
		Starting:        domain.Contribution{Cash: d("10000")},
		AnnualReturnPct: d("-5"),
		TaxRatePct:      d("18.5"),
		DurationYears:   1,
	})
	r := ledger.Years[0]
	assertNear(t, 9511.30, r.Gross, "gross after a losing year")
	assert.True(t, r.Gain.IsNegative())
	assert.True(t, r.LatentTax.IsZero())
	assert.True(t, r.Net.Equal(r.Gross))
}

func TestSavingsPlanProjector_ZeroDuration(t *testing.T) {
	ledger := NewSavingsPlanProjector(nil).Project(domain.SavingsPlanParameters{DurationYears: 0})
	assert.Empty(t, ledger.Years)
	_, ok := ledger.Final()
	assert.False(t, ok)
}
