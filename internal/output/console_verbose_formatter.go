package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/immocalc/property-projection/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter renders key figures and the full year-by-year ledger of every scenario.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "DETAILED PROPERTY AND SAVINGS PROJECTION")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsOf(results.Assumptions) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, scenario := range results.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s (%s)\n", i+1, scenario.Name, scenario.Kind)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		if scenario.InflationAdjusted {
			fmt.Fprintf(&buf, "(Amounts in today's money at %s inflation)\n", FormatPercentage(results.InflationRatePct))
		}
		switch {
		case scenario.Ledger != nil:
			writePropertyFigures(&buf, scenario)
			writeLedgerTable(&buf, scenario.Ledger)
			if len(scenario.Ledger.Depreciation) > 0 {
				writeDepreciationTable(&buf, scenario.Ledger.Depreciation, len(scenario.Ledger.Years))
			}
		case scenario.Savings != nil:
			writeSavingsFigures(&buf, scenario)
			writeSavingsTable(&buf, scenario.Savings)
		}
		fmt.Fprintln(&buf)
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "SUMMARY")
		fmt.Fprintln(&buf, "=======")
		fmt.Fprintf(&buf, "Highest net worth: %s (%s)\n", rec.ScenarioName, FormatCurrency(rec.FinalNetWorth))
		if rec.RunnerUp != "" {
			fmt.Fprintf(&buf, "Lead over %s: %s (%s)\n", rec.RunnerUp, FormatCurrency(rec.Lead), FormatPercentage(rec.LeadPct))
		}
	}

	return buf.Bytes(), nil
}

func writePropertyFigures(buf *bytes.Buffer, sc domain.ScenarioSummary) {
	l := sc.Ledger
	fmt.Fprintln(buf, "FINANCING:")
	fmt.Fprintln(buf, "----------")
	line(buf, "  Total cost", l.TotalCost)
	line(buf, "  Own capital", l.Capital)
	line(buf, "  Loan", l.LoanAmount)
	line(buf, "  Annual bank payment", l.AnnualPayment)
	if l.ShareB.IsPositive() {
		fmt.Fprintf(buf, "  %-33s %s / %s\n", "Ownership shares A / B", FormatPercentage(l.ShareA.Mul(decimalHundred)), FormatPercentage(l.ShareB.Mul(decimalHundred)))
	}
	fmt.Fprintf(buf, "  %-33s %s after %d years\n", "Termination", l.Termination, len(l.Years))
	fmt.Fprintln(buf)

	kf := sc.KeyFigures
	if kf == nil {
		return
	}
	fmt.Fprintln(buf, "KEY FIGURES:")
	fmt.Fprintln(buf, "------------")
	line(buf, "  Monthly bank payment", kf.MonthlyBankPayment)
	fmt.Fprintf(buf, "  %-33s %15s\n", "Equity ratio", FormatPercentage(kf.EquityRatioPct))
	fmt.Fprintf(buf, "  %-33s %15s\n", "Gross rental yield", FormatPercentage(kf.GrossYieldPct))
	fmt.Fprintf(buf, "  %-33s %15s\n", "Price factor", kf.PriceFactor.StringFixed(1))
	line(buf, "  Avg monthly total cost", kf.AvgMonthlyTotalCost)
	line(buf, "  Avg monthly burden", kf.AvgMonthlyBurden)
	line(buf, "  Avg after-tax cashflow", kf.AvgAfterTaxCashflow)
	line(buf, "  Principal at end of rate lock", kf.PrincipalAtRateLock)
	line(buf, "  Refinance monthly at 6%", kf.RefinanceMonthlyAt6)
	line(buf, "  Refinance monthly at 8%", kf.RefinanceMonthlyAt8)
	line(buf, "  Divorce equalization year 10", kf.EqualizationYear10)
	line(buf, "  Final net worth", kf.FinalNetWorth)
	line(buf, "  Equivalent monthly savings rate", kf.EquivalentSavingsRate)
	fmt.Fprintln(buf)
}

func writeLedgerTable(buf *bytes.Buffer, l *domain.Ledger) {
	fmt.Fprintln(buf, "YEAR-BY-YEAR:")
	fmt.Fprintf(buf, "%4s %6s %10s %9s %9s %9s %9s %9s %10s %11s %11s %11s\n",
		"Year", "Rate", "Principal", "Interest", "Rent", "Deprec.", "TaxSaved", "Cashflow", "Burden/mo", "MarketValue", "NetWorth", "NetSale")
	fmt.Fprintln(buf, strings.Repeat("-", 122))
	for _, y := range l.Years {
		fmt.Fprintf(buf, "%4d %6s %10s %9s %9s %9s %9s %9s %10s %11s %11s %11s\n",
			y.Year,
			y.MarginalRatePct.StringFixed(1),
			whole(y.RemainingPrincipal),
			whole(y.Interest),
			whole(y.GrossRent),
			whole(y.TotalDepreciation),
			whole(y.TaxSaved),
			whole(y.AfterTaxCashflow),
			whole(y.MonthlyBurden),
			whole(y.MarketValue),
			whole(y.NetWorth),
			whole(y.NetSaleProceeds),
		)
	}
	fmt.Fprintln(buf)
}

func writeDepreciationTable(buf *bytes.Buffer, entries []domain.DepreciationYearEntry, years int) {
	fmt.Fprintln(buf, "DEPRECIATION SCHEDULE:")
	fmt.Fprintf(buf, "%4s %10s %10s %12s  %s\n", "Year", "Amount", "Bonus", "BookValue", "Rule")
	fmt.Fprintln(buf, strings.Repeat("-", 60))
	for _, e := range entries {
		if e.Year > years {
			break
		}
		fmt.Fprintf(buf, "%4d %10s %10s %12s  %s\n", e.Year, whole(e.Amount), whole(e.Bonus), whole(e.BookValue), e.Label)
	}
	fmt.Fprintln(buf)
}

func writeSavingsFigures(buf *bytes.Buffer, sc domain.ScenarioSummary) {
	fmt.Fprintln(buf, "SAVINGS PLAN:")
	fmt.Fprintln(buf, "-------------")
	line(buf, "  Starting capital", sc.Savings.StartingCapital)
	line(buf, "  Monthly contribution", sc.Savings.MonthlyContribution)
	if sf := sc.SavingsFigures; sf != nil {
		line(buf, "  Total invested", sf.TotalInvested)
		line(buf, "  Final latent tax", sf.FinalLatentTax)
		line(buf, "  Final net value", sf.FinalNet)
		fmt.Fprintf(buf, "  %-33s %15s\n", "Share from gains", FormatPercentage(sf.GainSharePct))
	}
	fmt.Fprintln(buf)
}

func writeSavingsTable(buf *bytes.Buffer, l *domain.SavingsLedger) {
	fmt.Fprintln(buf, "YEAR-BY-YEAR:")
	fmt.Fprintf(buf, "%4s %12s %12s %12s %12s %12s\n", "Year", "Contributed", "Gross", "Gain", "LatentTax", "Net")
	fmt.Fprintln(buf, strings.Repeat("-", 70))
	for _, y := range l.Years {
		fmt.Fprintf(buf, "%4d %12s %12s %12s %12s %12s\n",
			y.Year, whole(y.Contributed), whole(y.Gross), whole(y.Gain), whole(y.LatentTax), whole(y.Net))
	}
	fmt.Fprintln(buf)
}

func line(buf *bytes.Buffer, label string, amount decimal.Decimal) {
	fmt.Fprintf(buf, "%-35s %15s\n", label, FormatCurrency(amount))
}

func whole(d decimal.Decimal) string { return d.StringFixed(0) }
