package calculation

import (
	"github.com/immocalc/property-projection/internal/domain"
	"github.com/shopspring/decimal"
)

// Deflatable is a ledger row that can be expressed in today's money
type Deflatable[T any] interface {
	Deflate(divisor decimal.Decimal) T
	ProjectionYear() int
}

// DiscountFactor returns (1 + rate/100)^year
func DiscountFactor(ratePct decimal.Decimal, year int) decimal.Decimal {
	base := one.Add(pct(ratePct))
	factor := one
	for i := 0; i < year; i++ {
		factor = factor.Mul(base)
	}
	return factor
}

// AdjustForInflation returns new rows with every monetary field divided by the
// discount factor of the row's year. The source rows are not modified.
func AdjustForInflation[T Deflatable[T]](rows []T, ratePct decimal.Decimal) []T {
	out := make([]T, len(rows))
	if ratePct.IsZero() {
		copy(out, rows)
		return out
	}
	for i, r := range rows {
		out[i] = r.Deflate(DiscountFactor(ratePct, r.ProjectionYear()))
	}
	return out
}

// AdjustLedger copies the ledger metadata and deflates its year records
func AdjustLedger(l *domain.Ledger, ratePct decimal.Decimal) *domain.Ledger {
	if l == nil {
		return nil
	}
	adjusted := *l
	adjusted.Years = AdjustForInflation(l.Years, ratePct)
	return &adjusted
}

// AdjustSavingsLedger copies the savings ledger metadata and deflates its year records
func AdjustSavingsLedger(l *domain.SavingsLedger, ratePct decimal.Decimal) *domain.SavingsLedger {
	if l == nil {
		return nil
	}
	adjusted := *l
	adjusted.Years = AdjustForInflation(l.Years, ratePct)
	return &adjusted
}
