package calculation

import (
	"testing"

	"github.com/immocalc/property-projection/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sumSchedule(entries []domain.DepreciationYearEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Total())
	}
	return total
}

func TestScheduleFor_Linear(t *testing.T) {
	entries := ScheduleFor(d("500000"), domain.DepreciationPlan{Method: domain.DepreciationLinear}, 40)
	require.Len(t, entries, 40)

	assert.True(t, entries[0].Amount.Equal(d("15000")))
	assert.True(t, entries[0].BookValue.Equal(d("485000")))
	assert.Equal(t, "Linear 3%", entries[0].Label)

	assert.True(t, entries[32].BookValue.Equal(d("5000")), entries[32].BookValue.String())
	assert.True(t, entries[33].Amount.Equal(d("5000")), "final partial year capped at book value")
	assert.True(t, entries[33].BookValue.IsZero())

	assert.True(t, entries[34].Amount.IsZero())
	assert.Equal(t, domain.NoDepreciationLabel, entries[34].Label)
	assert.True(t, sumSchedule(entries).Equal(d("500000")))
}

func TestScheduleFor_DecliningWithSwitch(t *testing.T) {
	plan := domain.DepreciationPlan{Method: domain.DepreciationDeclining, SwitchYear: 15}
	entries := ScheduleFor(d("500000"), plan, DepreciationScheduleYears)
	require.Len(t, entries, DepreciationScheduleYears)

	assert.True(t, entries[0].Amount.Equal(d("25000")))
	assert.True(t, entries[1].Amount.Equal(d("23750")))
	assert.Equal(t, "Declining 5%", entries[13].Label)
	assert.InDelta(t, 12833.55, entries[13].Amount.InexactFloat64(), 0.01)

	// year 15: book value / (33 1/3 - 14)
	assert.Equal(t, "Linear (switch Y15)", entries[14].Label)
	assert.InDelta(t, 12612.28, entries[14].Amount.InexactFloat64(), 0.01)
	assert.InDelta(t, entries[14].Amount.InexactFloat64(), entries[15].Amount.InexactFloat64(), 0.01,
		"linear phase spreads the book value evenly")

	// exhausted in year 34, all later years report zero
	assert.True(t, entries[33].BookValue.IsZero())
	for _, e := range entries[34:] {
		assert.True(t, e.Total().IsZero())
		assert.Equal(t, domain.NoDepreciationLabel, e.Label)
	}
	assert.InDelta(t, 500000, sumSchedule(entries).InexactFloat64(), 0.01)
}

func TestScheduleFor_DecliningWithoutSwitchNeverExhausts(t *testing.T) {
	entries := ScheduleFor(d("500000"), domain.DepreciationPlan{Method: domain.DepreciationDeclining}, 80)
	last := entries[79]
	assert.Equal(t, "Declining 5%", last.Label)
	assert.InDelta(t, 434.62, last.Amount.InexactFloat64(), 0.01)
	assert.InDelta(t, 8257.69, last.BookValue.InexactFloat64(), 0.01)
}

func TestScheduleFor_LateSwitchCapsAtBookValue(t *testing.T) {
	plan := domain.DepreciationPlan{Method: domain.DepreciationDeclining, SwitchYear: 34}
	entries := ScheduleFor(d("500000"), plan, 40)

	assert.InDelta(t, 92012.96, entries[32].BookValue.InexactFloat64(), 0.01)
	assert.InDelta(t, 92012.96, entries[33].Amount.InexactFloat64(), 0.01)
	assert.True(t, entries[33].BookValue.IsZero())
	assert.Equal(t, domain.NoDepreciationLabel, entries[34].Label)
}

func TestScheduleFor_Bonus(t *testing.T) {
	tests := []struct {
		name      string
		floorArea string
		eligible  bool
	}{
		{"eligible at 3,333 per m2", "150", true},
		{"just above the cap", "96", false},
		{"too expensive per m2", "50", false},
		{"zero floor area", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := domain.DepreciationPlan{
				Method:      domain.DepreciationDecliningBonus,
				SwitchYear:  15,
				FloorAreaM2: d(tt.floorArea),
			}
			entries := ScheduleFor(d("500000"), plan, 80)
			if !tt.eligible {
				for _, e := range entries[:4] {
					assert.True(t, e.Bonus.IsZero())
					assert.NotContains(t, e.Label, "§7b")
				}
				return
			}
			assert.True(t, entries[0].Amount.Equal(d("25000")))
			assert.True(t, entries[0].Bonus.Equal(d("25000")))
			assert.True(t, entries[0].BookValue.Equal(d("450000")))
			assert.Equal(t, "Declining 5% + §7b", entries[0].Label)
			assert.True(t, entries[3].Bonus.Equal(d("25000")))
			assert.InDelta(t, 314506.25, entries[3].BookValue.InexactFloat64(), 0.001)
			assert.True(t, entries[4].Bonus.IsZero())
			assert.Equal(t, "Declining 5%", entries[4].Label)
			assert.InDelta(t, 500000, sumSchedule(entries).InexactFloat64(), 0.01)
		})
	}
}

func TestScheduleFor_BookValueNeverNegative(t *testing.T) {
	plans := []domain.DepreciationPlan{
		{Method: domain.DepreciationLinear},
		{Method: domain.DepreciationDeclining, SwitchYear: 1},
		{Method: domain.DepreciationDecliningBonus, SwitchYear: 2, FloorAreaM2: d("1000")},
	}
	for _, plan := range plans {
		prev := d("100000")
		for _, e := range ScheduleFor(d("100000"), plan, 80) {
			assert.False(t, e.BookValue.IsNegative(), "%s year %d", plan.Method, e.Year)
			assert.True(t, e.BookValue.LessThanOrEqual(prev), "%s year %d", plan.Method, e.Year)
			prev = e.BookValue
		}
	}
}

func TestBonusEligible(t *testing.T) {
	assert.True(t, BonusEligible(d("520000"), d("100")))
	assert.False(t, BonusEligible(d("520100"), d("100")))
	assert.False(t, BonusEligible(d("100000"), decimal.Zero))
}

func TestPurchaseDepreciation(t *testing.T) {
	terms := domain.PurchaseTerms{Price: d("1150000"), LandSharePct: d("40")}
	assert.True(t, DepreciableBase(terms).Equal(d("690000")))
	assert.True(t, PurchaseDepreciation(terms).Equal(d("13800")))
}
