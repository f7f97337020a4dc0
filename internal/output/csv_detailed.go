package output

import (
	"bytes"
	"encoding/csv"

	"github.com/immocalc/property-projection/internal/domain"
)

// CSVDetailedExporter writes one line per scenario and projected year.
// Savings rows leave the property columns empty and vice versa.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

var detailedHeader = []string{
	"Scenario", "Kind", "Year",
	"HouseholdIncome", "MarginalRatePct", "RemainingPrincipal", "Interest", "PrincipalPortion", "AnnualPayment",
	"GrossRent", "Upkeep", "VacancyLoss", "MonthlyTotalCost", "MonthlyBurden",
	"Depreciation", "BonusDepreciation", "DepreciationRule", "BuildingBookValue",
	"RentalResult", "TaxSaved", "PreTaxCashflow", "AfterTaxCashflow",
	"MarketValue", "NetWorth", "NetWorthDelta",
	"EarlyRepaymentPenalty", "SaleCosts", "SpeculationTax", "NetSaleProceeds", "DivorceEqualization",
	"Contributed", "Gross", "Gain", "LatentTax", "Net",
}

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(detailedHeader); err != nil {
		return nil, err
	}
	savingsBlank := make([]string, 5)
	propertyBlank := make([]string, len(detailedHeader)-3-len(savingsBlank))
	for _, sc := range results.Scenarios {
		if sc.Ledger != nil {
			for _, yr := range sc.Ledger.Years {
				row := []string{
					sc.Name, string(sc.Kind), intToString(yr.Year),
					fixed(yr.HouseholdIncome), yr.MarginalRatePct.StringFixed(1), fixed(yr.RemainingPrincipal),
					fixed(yr.Interest), fixed(yr.PrincipalPortion), fixed(yr.AnnualPayment),
					fixed(yr.GrossRent), fixed(yr.Upkeep), fixed(yr.VacancyLoss), fixed(yr.MonthlyTotalCost), fixed(yr.MonthlyBurden),
					fixed(yr.Depreciation), fixed(yr.BonusDepreciation), yr.DepreciationLabel, fixed(yr.BuildingBookValue),
					fixed(yr.RentalResult), fixed(yr.TaxSaved), fixed(yr.PreTaxCashflow), fixed(yr.AfterTaxCashflow),
					fixed(yr.MarketValue), fixed(yr.NetWorth), fixed(yr.NetWorthDelta),
					fixed(yr.EarlyRepaymentPenalty), fixed(yr.SaleCosts), fixed(yr.SpeculationTax), fixed(yr.NetSaleProceeds), fixed(yr.DivorceEqualization),
				}
				if err := w.Write(append(row, savingsBlank...)); err != nil {
					return nil, err
				}
			}
		}
		if sc.Savings != nil {
			for _, yr := range sc.Savings.Years {
				row := append([]string{sc.Name, string(sc.Kind), intToString(yr.Year)}, propertyBlank...)
				row = append(row, fixed(yr.Contributed), fixed(yr.Gross), fixed(yr.Gain), fixed(yr.LatentTax), fixed(yr.Net))
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
