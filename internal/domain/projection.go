package domain

import (
	"github.com/shopspring/decimal"
)

// Termination records why a property projection stopped
type Termination string

const (
	TerminationPaidOff    Termination = "paid_off"
	TerminationSafetyStop Termination = "safety_stop"
)

// NoDepreciationLabel marks years after the building is fully written off
const NoDepreciationLabel = "—"

// YearRecord holds the complete figures of one simulated property year
type YearRecord struct {
	Year            int             `json:"year"`
	HouseholdIncome decimal.Decimal `json:"household_income"`
	SpecialIncome   bool            `json:"special_income"`
	MarginalRatePct decimal.Decimal `json:"marginal_rate_pct"` // one decimal place

	// Loan
	RemainingPrincipal decimal.Decimal `json:"remaining_principal"`
	Interest           decimal.Decimal `json:"interest"`
	PrincipalPortion   decimal.Decimal `json:"principal_portion"`
	AnnualPayment      decimal.Decimal `json:"annual_payment"`

	// Letting
	GrossRent        decimal.Decimal `json:"gross_rent"`
	Upkeep           decimal.Decimal `json:"upkeep"`
	VacancyLoss      decimal.Decimal `json:"vacancy_loss"`
	MonthlyTotalCost decimal.Decimal `json:"monthly_total_cost"`
	MonthlyBurden    decimal.Decimal `json:"monthly_burden"`

	// Depreciation
	Depreciation           decimal.Decimal `json:"depreciation"`
	BonusDepreciation      decimal.Decimal `json:"bonus_depreciation"`
	TotalDepreciation      decimal.Decimal `json:"total_depreciation"`
	DepreciationLabel      string          `json:"depreciation_label"`
	BuildingBookValue      decimal.Decimal `json:"building_book_value"`
	CumulativeDepreciation decimal.Decimal `json:"cumulative_depreciation"`

	// Tax and cashflow
	RentalResult     decimal.Decimal `json:"rental_result"`
	TaxSaved         decimal.Decimal `json:"tax_saved"`
	PreTaxCashflow   decimal.Decimal `json:"pre_tax_cashflow"`
	AfterTaxCashflow decimal.Decimal `json:"after_tax_cashflow"`

	// Wealth
	MarketValue   decimal.Decimal `json:"market_value"`
	NetWorth      decimal.Decimal `json:"net_worth"`
	NetWorthDelta decimal.Decimal `json:"net_worth_delta"`

	// Exit figures
	EarlyRepaymentPenalty decimal.Decimal `json:"early_repayment_penalty"`
	SaleCosts             decimal.Decimal `json:"sale_costs"`
	SpeculationTax        decimal.Decimal `json:"speculation_tax"`
	NetSaleProceeds       decimal.Decimal `json:"net_sale_proceeds"`
	DivorceEqualization   decimal.Decimal `json:"divorce_equalization"`
}

// Deflate returns a copy with every monetary field divided by divisor.
// Year, flags, marginal rate and label are kept.
func (r YearRecord) Deflate(divisor decimal.Decimal) YearRecord {
	d := func(v decimal.Decimal) decimal.Decimal { return v.Div(divisor) }
	out := r
	out.HouseholdIncome = d(r.HouseholdIncome)
	out.RemainingPrincipal = d(r.RemainingPrincipal)
	out.Interest = d(r.Interest)
	out.PrincipalPortion = d(r.PrincipalPortion)
	out.AnnualPayment = d(r.AnnualPayment)
	out.GrossRent = d(r.GrossRent)
	out.Upkeep = d(r.Upkeep)
	out.VacancyLoss = d(r.VacancyLoss)
	out.MonthlyTotalCost = d(r.MonthlyTotalCost)
	out.MonthlyBurden = d(r.MonthlyBurden)
	out.Depreciation = d(r.Depreciation)
	out.BonusDepreciation = d(r.BonusDepreciation)
	out.TotalDepreciation = d(r.TotalDepreciation)
	out.BuildingBookValue = d(r.BuildingBookValue)
	out.CumulativeDepreciation = d(r.CumulativeDepreciation)
	out.RentalResult = d(r.RentalResult)
	out.TaxSaved = d(r.TaxSaved)
	out.PreTaxCashflow = d(r.PreTaxCashflow)
	out.AfterTaxCashflow = d(r.AfterTaxCashflow)
	out.MarketValue = d(r.MarketValue)
	out.NetWorth = d(r.NetWorth)
	out.NetWorthDelta = d(r.NetWorthDelta)
	out.EarlyRepaymentPenalty = d(r.EarlyRepaymentPenalty)
	out.SaleCosts = d(r.SaleCosts)
	out.SpeculationTax = d(r.SpeculationTax)
	out.NetSaleProceeds = d(r.NetSaleProceeds)
	out.DivorceEqualization = d(r.DivorceEqualization)
	return out
}

// ProjectionYear returns the 1-based year index used for discounting
func (r YearRecord) ProjectionYear() int { return r.Year }

// DepreciationYearEntry is one year of a building depreciation schedule
type DepreciationYearEntry struct {
	Year      int             `json:"year"`
	Amount    decimal.Decimal `json:"amount"`
	Bonus     decimal.Decimal `json:"bonus"`
	BookValue decimal.Decimal `json:"book_value"` // after this year
	Label     string          `json:"label"`
}

// Total returns ordinary plus bonus depreciation
func (e DepreciationYearEntry) Total() decimal.Decimal {
	return e.Amount.Add(e.Bonus)
}

// Ledger is the result of one property projection
type Ledger struct {
	Kind          ScenarioKind    `json:"kind"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	Capital       decimal.Decimal `json:"capital"`
	LoanAmount    decimal.Decimal `json:"loan_amount"`
	AnnualPayment decimal.Decimal `json:"annual_payment"`
	ShareA        decimal.Decimal `json:"share_a"`
	ShareB        decimal.Decimal `json:"share_b"`
	Termination   Termination     `json:"termination"`

	Years        []YearRecord            `json:"years"`
	Depreciation []DepreciationYearEntry `json:"depreciation,omitempty"`
}

// Final returns the last simulated year, or false for an empty ledger
func (l *Ledger) Final() (YearRecord, bool) {
	if l == nil || len(l.Years) == 0 {
		return YearRecord{}, false
	}
	return l.Years[len(l.Years)-1], true
}

// Year returns the record for a 1-based year index
func (l *Ledger) Year(year int) (YearRecord, bool) {
	if l == nil || year < 1 || year > len(l.Years) {
		return YearRecord{}, false
	}
	return l.Years[year-1], true
}

// SavingsYearRecord holds the year-end state of a savings plan
type SavingsYearRecord struct {
	Year        int             `json:"year"`
	Contributed decimal.Decimal `json:"contributed"`
	Gross       decimal.Decimal `json:"gross"`
	Gain        decimal.Decimal `json:"gain"`
	LatentTax   decimal.Decimal `json:"latent_tax"`
	Net         decimal.Decimal `json:"net"`
}

// Deflate returns a copy with every monetary field divided by divisor
func (r SavingsYearRecord) Deflate(divisor decimal.Decimal) SavingsYearRecord {
	return SavingsYearRecord{
		Year:        r.Year,
		Contributed: r.Contributed.Div(divisor),
		Gross:       r.Gross.Div(divisor),
		Gain:        r.Gain.Div(divisor),
		LatentTax:   r.LatentTax.Div(divisor),
		Net:         r.Net.Div(divisor),
	}
}

// ProjectionYear returns the 1-based year index used for discounting
func (r SavingsYearRecord) ProjectionYear() int { return r.Year }

// SavingsLedger is the result of one savings plan projection
type SavingsLedger struct {
	StartingCapital     decimal.Decimal     `json:"starting_capital"`
	MonthlyContribution decimal.Decimal     `json:"monthly_contribution"`
	Years               []SavingsYearRecord `json:"years"`
}

// Final returns the last simulated year, or false for an empty ledger
func (l *SavingsLedger) Final() (SavingsYearRecord, bool) {
	if l == nil || len(l.Years) == 0 {
		return SavingsYearRecord{}, false
	}
	return l.Years[len(l.Years)-1], true
}

// PropertyKeyFigures summarizes a property ledger for reports
type PropertyKeyFigures struct {
	TotalCost             decimal.Decimal `json:"total_cost"`
	LoanAmount            decimal.Decimal `json:"loan_amount"`
	MonthlyBankPayment    decimal.Decimal `json:"monthly_bank_payment"`
	EquityRatioPct        decimal.Decimal `json:"equity_ratio_pct"`
	GrossYieldPct         decimal.Decimal `json:"gross_yield_pct"`
	PriceFactor           decimal.Decimal `json:"price_factor"`
	AvgMonthlyTotalCost   decimal.Decimal `json:"avg_monthly_total_cost"`
	AvgMonthlyBurden      decimal.Decimal `json:"avg_monthly_burden"`
	AvgAfterTaxCashflow   decimal.Decimal `json:"avg_after_tax_cashflow"`
	PrincipalAtRateLock   decimal.Decimal `json:"principal_at_rate_lock"`
	YearsToPayoff         int             `json:"years_to_payoff"`
	FinalNetWorth         decimal.Decimal `json:"final_net_worth"`
	EqualizationYear10    decimal.Decimal `json:"equalization_year_10"`
	RefinanceMonthlyAt6   decimal.Decimal `json:"refinance_monthly_at_6"`
	RefinanceMonthlyAt8   decimal.Decimal `json:"refinance_monthly_at_8"`
	RefinanceDeltaAt6     decimal.Decimal `json:"refinance_delta_at_6"`
	RefinanceDeltaAt8     decimal.Decimal `json:"refinance_delta_at_8"`
	EquivalentSavingsRate decimal.Decimal `json:"equivalent_savings_rate"`
}

// SavingsKeyFigures summarizes a savings ledger for reports
type SavingsKeyFigures struct {
	FinalNet       decimal.Decimal `json:"final_net"`
	TotalInvested  decimal.Decimal `json:"total_invested"`
	FinalLatentTax decimal.Decimal `json:"final_latent_tax"`
	GainSharePct   decimal.Decimal `json:"gain_share_pct"`
}

// ScenarioSummary is the projected outcome of one scenario
type ScenarioSummary struct {
	Name              string              `json:"name"`
	Kind              ScenarioKind        `json:"kind"`
	InflationAdjusted bool                `json:"inflation_adjusted"`
	Ledger            *Ledger             `json:"ledger,omitempty"`
	KeyFigures        *PropertyKeyFigures `json:"key_figures,omitempty"`
	Savings           *SavingsLedger      `json:"savings,omitempty"`
	SavingsFigures    *SavingsKeyFigures  `json:"savings_figures,omitempty"`
}

// FinalNetWorth returns the end-of-horizon wealth of the scenario
func (s ScenarioSummary) FinalNetWorth() decimal.Decimal {
	if s.Ledger != nil {
		if last, ok := s.Ledger.Final(); ok {
			return last.NetWorth
		}
	}
	if s.Savings != nil {
		if last, ok := s.Savings.Final(); ok {
			return last.Net
		}
	}
	return decimal.Zero
}

// Horizon returns the number of projected years
func (s ScenarioSummary) Horizon() int {
	if s.Ledger != nil {
		return len(s.Ledger.Years)
	}
	if s.Savings != nil {
		return len(s.Savings.Years)
	}
	return 0
}

// ScenarioComparison collects the results of all scenarios of one configuration
type ScenarioComparison struct {
	Scenarios        []ScenarioSummary `json:"scenarios"`
	InflationRatePct decimal.Decimal   `json:"inflation_rate_pct"`
	BestByNetWorth   string            `json:"best_by_net_worth"`
	Assumptions      []string          `json:"assumptions"`
}
