package calculation

import (
	"github.com/immocalc/property-projection/internal/domain"
	"github.com/shopspring/decimal"
)

// compoundPrecision bounds the decimal places of repeated compounding
const compoundPrecision = 16

var (
	refinanceRate6 = decimal.RequireFromString("0.06")
	refinanceRate8 = decimal.RequireFromString("0.08")
)

// PropertyKeyFigures derives the headline figures of a property scenario.
// Loan figures come from the nominal ledger; averages and wealth figures from
// the displayed ledger, which may be inflation adjusted.
func PropertyKeyFigures(params domain.ScenarioParameters, nominal, display *domain.Ledger) domain.PropertyKeyFigures {
	kf := domain.PropertyKeyFigures{
		TotalCost:          nominal.TotalCost,
		LoanAmount:         nominal.LoanAmount,
		MonthlyBankPayment: nominal.AnnualPayment.Div(twelve),
		YearsToPayoff:      len(nominal.Years),
	}

	// purchase figures relate to the price, construction figures to the total investment
	base := nominal.TotalCost
	if p := params.Acquisition.Purchase; p != nil {
		base = p.Price
	}
	annualRent := params.Rental.MonthlyRent.Mul(twelve)
	if base.IsPositive() {
		kf.EquityRatioPct = nominal.Capital.Div(base).Mul(hundred)
		kf.GrossYieldPct = annualRent.Div(base).Mul(hundred)
	}
	if annualRent.IsPositive() {
		kf.PriceFactor = base.Div(annualRent)
	}

	if n := len(display.Years); n > 0 {
		var monthly, burden, cashflow decimal.Decimal
		for _, y := range display.Years {
			monthly = monthly.Add(y.MonthlyTotalCost)
			burden = burden.Add(y.MonthlyBurden)
			cashflow = cashflow.Add(y.AfterTaxCashflow)
		}
		count := decimal.NewFromInt(int64(n))
		kf.AvgMonthlyTotalCost = monthly.Div(count)
		kf.AvgMonthlyBurden = burden.Div(count)
		kf.AvgAfterTaxCashflow = cashflow.Div(count)
		kf.FinalNetWorth = display.Years[n-1].NetWorth
	}
	if y10, ok := display.Year(10); ok {
		kf.EqualizationYear10 = y10.DivorceEqualization
	}

	if atLock, ok := nominal.Year(params.Loan.RateLockYears); ok {
		kf.PrincipalAtRateLock = atLock.RemainingPrincipal
	}
	amort := pct(params.Loan.InitialAmortizationPct)
	kf.RefinanceMonthlyAt6 = kf.PrincipalAtRateLock.Mul(refinanceRate6.Add(amort)).Div(twelve)
	kf.RefinanceMonthlyAt8 = kf.PrincipalAtRateLock.Mul(refinanceRate8.Add(amort)).Div(twelve)
	kf.RefinanceDeltaAt6 = kf.RefinanceMonthlyAt6.Sub(kf.MonthlyBankPayment)
	kf.RefinanceDeltaAt8 = kf.RefinanceMonthlyAt8.Sub(kf.MonthlyBankPayment)
	return kf
}

// SavingsKeyFigures derives the headline figures of a savings plan
func SavingsKeyFigures(l *domain.SavingsLedger) domain.SavingsKeyFigures {
	last, ok := l.Final()
	if !ok {
		return domain.SavingsKeyFigures{}
	}
	kf := domain.SavingsKeyFigures{
		FinalNet:       last.Net,
		TotalInvested:  last.Contributed,
		FinalLatentTax: last.LatentTax,
	}
	if !last.Net.IsZero() {
		kf.GainSharePct = last.Gain.Div(last.Net).Mul(hundred)
	}
	return kf
}

// EquivalentSavingsRate returns the monthly contribution a savings plan with the
// given return needs to grow start into target over the given number of months.
func EquivalentSavingsRate(target, start, annualReturnPct decimal.Decimal, months int) decimal.Decimal {
	if months <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(months))
	i := pct(annualReturnPct).Div(twelve)
	if i.IsZero() {
		return target.Sub(start).Div(n)
	}
	growth := compound(one.Add(i), months)
	annuity := growth.Sub(one).Div(i)
	if annuity.IsZero() {
		return decimal.Zero
	}
	return target.Sub(start.Mul(growth)).Div(annuity)
}

func compound(base decimal.Decimal, periods int) decimal.Decimal {
	factor := one
	for k := 0; k < periods; k++ {
		factor = factor.Mul(base).Round(compoundPrecision)
	}
	return factor
}
