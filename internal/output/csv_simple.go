package output

import (
	"bytes"
	"encoding/csv"

	"github.com/immocalc/property-projection/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Kind", "Years", "FinalNetWorth", "TotalCost", "LoanAmount", "MonthlyBankPayment", "YearsToPayoff", "AvgMonthlyBurden", "AvgAfterTaxCashflow", "EquivalentSavingsRate", "TotalInvested", "FinalLatentTax", "InflationAdjusted"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range results.Scenarios {
		row := []string{
			sc.Name,
			string(sc.Kind),
			intToString(sc.Horizon()),
			sc.FinalNetWorth().StringFixed(2),
		}
		if kf := sc.KeyFigures; kf != nil {
			row = append(row,
				kf.TotalCost.StringFixed(2),
				kf.LoanAmount.StringFixed(2),
				kf.MonthlyBankPayment.StringFixed(2),
				intToString(kf.YearsToPayoff),
				kf.AvgMonthlyBurden.StringFixed(2),
				kf.AvgAfterTaxCashflow.StringFixed(2),
				kf.EquivalentSavingsRate.StringFixed(2),
			)
		} else {
			row = append(row, "", "", "", "", "", "", "")
		}
		if sf := sc.SavingsFigures; sf != nil {
			row = append(row, sf.TotalInvested.StringFixed(2), sf.FinalLatentTax.StringFixed(2))
		} else {
			row = append(row, "", "")
		}
		row = append(row, boolToString(sc.InflationAdjusted))
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
