package calculation

import (
	"github.com/shopspring/decimal"
)

// INCOME TAX ASSUMPTIONS:
//
// 1. German income tax tariff 2024 (§32a EStG) for all projection years.
//    No indexing of the zone limits.
// 2. Married couples are assessed with the splitting tariff:
//    twice the tax on half of the combined taxable income.
// 3. Solidarity surcharge and church tax are not modeled.

// TaxBracketTable holds the zone limits and closed-form coefficients of the tariff
type TaxBracketTable struct {
	Year int

	AllowanceLimit    decimal.Decimal // tax-free up to and including this income
	ProgressiveLimit1 decimal.Decimal
	ProgressiveLimit2 decimal.Decimal
	FlatLimit1        decimal.Decimal

	// progressive zone 1: (Q1·y + L1)·y with y = (x − AllowanceLimit)/10000
	Q1 decimal.Decimal
	L1 decimal.Decimal
	// progressive zone 2: (Q2·z + L2)·z + C2 with z = (x − ProgressiveLimit1)/10000
	Q2 decimal.Decimal
	L2 decimal.Decimal
	C2 decimal.Decimal
	// flat zones: rate·x − offset
	FlatRate1   decimal.Decimal
	FlatOffset1 decimal.Decimal
	FlatRate2   decimal.Decimal
	FlatOffset2 decimal.Decimal
}

// DefaultTaxTable returns the 2024 tariff
func DefaultTaxTable() TaxBracketTable {
	return TaxBracketTable{
		Year:              2024,
		AllowanceLimit:    decimal.NewFromInt(11604),
		ProgressiveLimit1: decimal.NewFromInt(17005),
		ProgressiveLimit2: decimal.NewFromInt(66760),
		FlatLimit1:        decimal.NewFromInt(277825),
		Q1:                decimal.RequireFromString("922.98"),
		L1:                decimal.NewFromInt(1400),
		Q2:                decimal.RequireFromString("181.19"),
		L2:                decimal.NewFromInt(2397),
		C2:                decimal.RequireFromString("1082.70"),
		FlatRate1:         decimal.RequireFromString("0.42"),
		FlatOffset1:       decimal.RequireFromString("10633.76"),
		FlatRate2:         decimal.RequireFromString("0.45"),
		FlatOffset2:       decimal.RequireFromString("18968.51"),
	}
}

// TaxZone names the tariff segment an income falls into
type TaxZone string

const (
	ZoneAllowance    TaxZone = "allowance"
	ZoneProgressive1 TaxZone = "progressive_1"
	ZoneProgressive2 TaxZone = "progressive_2"
	ZoneFlat1        TaxZone = "flat_42"
	ZoneFlat2        TaxZone = "flat_45"
)

// IncomeTaxCalculator evaluates the progressive income tax
type IncomeTaxCalculator struct {
	Table TaxBracketTable
}

// NewIncomeTaxCalculator creates a calculator for the 2024 tariff
func NewIncomeTaxCalculator() *IncomeTaxCalculator {
	return &IncomeTaxCalculator{Table: DefaultTaxTable()}
}

var tenThousand = decimal.NewFromInt(10000)

// ZoneFor returns the tariff zone of a taxable income (negative income counts as zero)
func (tc *IncomeTaxCalculator) ZoneFor(income decimal.Decimal) TaxZone {
	x := decimal.Max(income, decimal.Zero)
	t := tc.Table
	switch {
	case x.LessThanOrEqual(t.AllowanceLimit):
		return ZoneAllowance
	case x.LessThanOrEqual(t.ProgressiveLimit1):
		return ZoneProgressive1
	case x.LessThanOrEqual(t.ProgressiveLimit2):
		return ZoneProgressive2
	case x.LessThanOrEqual(t.FlatLimit1):
		return ZoneFlat1
	default:
		return ZoneFlat2
	}
}

// TaxFor returns the income tax for a single assessment, floored to whole euros
func (tc *IncomeTaxCalculator) TaxFor(income decimal.Decimal) decimal.Decimal {
	x := decimal.Max(income, decimal.Zero)
	t := tc.Table

	var tax decimal.Decimal
	switch tc.ZoneFor(x) {
	case ZoneAllowance:
		return decimal.Zero
	case ZoneProgressive1:
		y := x.Sub(t.AllowanceLimit).Div(tenThousand)
		tax = t.Q1.Mul(y).Add(t.L1).Mul(y)
	case ZoneProgressive2:
		z := x.Sub(t.ProgressiveLimit1).Div(tenThousand)
		tax = t.Q2.Mul(z).Add(t.L2).Mul(z).Add(t.C2)
	case ZoneFlat1:
		tax = t.FlatRate1.Mul(x).Sub(t.FlatOffset1)
	default:
		tax = t.FlatRate2.Mul(x).Sub(t.FlatOffset2)
	}
	return tax.Floor()
}

// JointTaxFor returns the splitting-tariff tax of a married couple
func (tc *IncomeTaxCalculator) JointTaxFor(incomeA, incomeB decimal.Decimal) decimal.Decimal {
	half := incomeA.Add(incomeB).Div(decimal.NewFromInt(2))
	return tc.TaxFor(half).Mul(decimal.NewFromInt(2))
}

// AverageRate returns tax / income in percent, zero for non-positive income
func (tc *IncomeTaxCalculator) AverageRate(income decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return tc.TaxFor(income).Div(income).Mul(decimal.NewFromInt(100))
}
