package output

import (
	"bytes"
	"fmt"

	"github.com/immocalc/property-projection/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console-lite" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "INVESTMENT SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if results.InflationRatePct.IsPositive() {
		fmt.Fprintf(&buf, "Inflation: %s per year\n", FormatPercentage(results.InflationRatePct))
	}
	fmt.Fprintln(&buf)
	for _, sc := range results.Scenarios {
		switch {
		case sc.KeyFigures != nil:
			kf := sc.KeyFigures
			fmt.Fprintf(&buf, "%s (%s): Loan=%s Monthly=%s Payoff=%d years NetWorth=%s\n",
				sc.Name, sc.Kind,
				FormatCurrency(kf.LoanAmount),
				FormatCurrency(kf.MonthlyBankPayment),
				kf.YearsToPayoff,
				FormatCurrency(kf.FinalNetWorth),
			)
			fmt.Fprintf(&buf, "  AvgBurden=%s AvgCashflow=%s EquivalentSavingsRate=%s\n",
				FormatCurrency(kf.AvgMonthlyBurden),
				FormatCurrency(kf.AvgAfterTaxCashflow),
				FormatCurrency(kf.EquivalentSavingsRate),
			)
		case sc.SavingsFigures != nil:
			sf := sc.SavingsFigures
			fmt.Fprintf(&buf, "%s (%s): Invested=%s Net=%s Years=%d\n",
				sc.Name, sc.Kind,
				FormatCurrency(sf.TotalInvested),
				FormatCurrency(sf.FinalNet),
				sc.Horizon(),
			)
			fmt.Fprintf(&buf, "  LatentTax=%s GainShare=%s\n", FormatCurrency(sf.FinalLatentTax), FormatPercentage(sf.GainSharePct))
		default:
			fmt.Fprintf(&buf, "%s (%s): NetWorth=%s\n", sc.Name, sc.Kind, FormatCurrency(sc.FinalNetWorth()))
		}
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Highest net worth: %s (%s)\n", rec.ScenarioName, FormatCurrency(rec.FinalNetWorth))
		if rec.RunnerUp != "" {
			fmt.Fprintf(&buf, "Lead over %s: %s / %s\n", rec.RunnerUp, FormatCurrency(rec.Lead), FormatPercentage(rec.LeadPct))
		}
	}
	return buf.Bytes(), nil
}
