package calculation

import (
	"errors"
	"fmt"

	"github.com/immocalc/property-projection/internal/domain"
	"github.com/shopspring/decimal"
)

// PROJECTION ASSUMPTIONS:
//
// 1. Annuity loan: constant annual payment of loan × (interest + initial amortization).
//    The projection runs until the principal drops to 1 or below, capped at 80 years.
// 2. Rental result = rent − interest − depreciation − upkeep. Vacancy loss reduces
//    cashflow but is not deducted for tax purposes.
// 3. Tax saving is the difference of two joint assessments, with the rental result
//    split by ownership share.
// 4. Exit figures describe a hypothetical sale at the end of each year. The
//    speculation tax applies to sales before year 10 at that year's marginal rate.
// 5. Divorce equalization is half of the positive net worth gain over the own capital,
//    for sole ownership without a marital property agreement. Joint ownership is
//    assumed to be settled by the ownership shares and yields zero.

// MaxProjectionYears caps the amortization loop
const MaxProjectionYears = 80

const speculationPeriodYears = 10

// ErrNoLoanRequired is returned when the own capital covers the total cost
var ErrNoLoanRequired = errors.New("own capital covers total cost, no loan required")

var (
	hundred          = decimal.NewFromInt(100)
	twelve           = decimal.NewFromInt(12)
	one              = decimal.NewFromInt(1)
	paidOffThreshold = decimal.NewFromInt(1)
)

func pct(v decimal.Decimal) decimal.Decimal { return v.Div(hundred) }

// PropertyProjector runs the year-by-year amortization, tax and wealth loop
type PropertyProjector struct {
	TaxCalc *IncomeTaxCalculator
	Logger  Logger
}

// NewPropertyProjector creates a projector; a nil logger falls back to NopLogger
func NewPropertyProjector(taxCalc *IncomeTaxCalculator, logger Logger) *PropertyProjector {
	if taxCalc == nil {
		taxCalc = NewIncomeTaxCalculator()
	}
	if logger == nil {
		logger = NopLogger{}
	}
	return &PropertyProjector{TaxCalc: taxCalc, Logger: logger}
}

// OwnershipShares returns the fractions of the rental result attributed to each person
func OwnershipShares(o domain.Ownership, loan, totalCost decimal.Decimal) (shareA, shareB decimal.Decimal) {
	if o.Mode == domain.OwnershipJoint {
		if !totalCost.IsPositive() {
			return decimal.Zero, decimal.Zero
		}
		halfLoan := loan.Div(decimal.NewFromInt(2))
		shareA = o.PersonA.Total().Add(halfLoan).Div(totalCost)
		shareB = o.PersonB.Total().Add(halfLoan).Div(totalCost)
		return shareA, shareB
	}
	if o.Owner == domain.PersonB {
		return decimal.Zero, one
	}
	return one, decimal.Zero
}

// Project simulates the property until the loan is repaid or the year cap is reached
func (pp *PropertyProjector) Project(params domain.ScenarioParameters) (*domain.Ledger, error) {
	acq := params.Acquisition
	if err := acq.Validate(); err != nil {
		return nil, err
	}

	totalCost := acq.TotalCost()
	capital := params.Ownership.Capital()
	if capital.GreaterThanOrEqual(totalCost) {
		return nil, fmt.Errorf("%w: capital %s, total cost %s",
			ErrNoLoanRequired, capital.StringFixed(2), totalCost.StringFixed(2))
	}

	loan := totalCost.Sub(capital)
	rate := params.Loan.InterestRatePct
	annualPayment := loan.Mul(pct(rate.Add(params.Loan.InitialAmortizationPct)))
	shareA, shareB := OwnershipShares(params.Ownership, loan, totalCost)

	ledger := &domain.Ledger{
		Kind:          domain.ScenarioPurchase,
		TotalCost:     totalCost,
		Capital:       capital,
		LoanAmount:    loan,
		AnnualPayment: annualPayment,
		ShareA:        shareA,
		ShareB:        shareB,
	}

	var schedule []domain.DepreciationYearEntry
	var flatDepreciation, purchaseBase decimal.Decimal
	if c := acq.Construction; c != nil {
		ledger.Kind = domain.ScenarioNewConstruction
		schedule = ScheduleFor(c.BuildingCost, c.Depreciation, DepreciationScheduleYears)
		ledger.Depreciation = schedule
	} else {
		purchaseBase = DepreciableBase(*acq.Purchase)
		flatDepreciation = PurchaseDepreciation(*acq.Purchase)
	}

	initialValue := acq.InitialMarketValue()
	marketValue := initialValue
	principal := loan
	rent := params.Rental.MonthlyRent.Mul(twelve)
	upkeep := params.Rental.AnnualUpkeep
	priorNetWorth := initialValue.Sub(loan)
	cumulative := decimal.Zero

	year := 0
	for principal.GreaterThan(paidOffThreshold) && year < MaxProjectionYears {
		year++

		income, special := params.Income.ForYear(year)

		interest := principal.Mul(pct(rate))
		principalPortion := annualPayment.Sub(interest)
		payment := annualPayment
		if principalPortion.GreaterThan(principal) {
			principalPortion = principal
			payment = interest.Add(principalPortion)
		}
		principal = principal.Sub(principalPortion)

		// depreciation of this year; the book basis for the sale differs by variant
		var entry domain.DepreciationYearEntry
		var bookBasis decimal.Decimal
		if schedule != nil {
			entry = schedule[year-1]
			cumulative = cumulative.Add(entry.Total())
			bookBasis = initialValue.Sub(cumulative)
		} else {
			bookBasis = acq.Purchase.Price.Sub(cumulative)
			cumulative = cumulative.Add(flatDepreciation)
			entry = domain.DepreciationYearEntry{
				Year:      year,
				Amount:    flatDepreciation,
				Bonus:     decimal.Zero,
				BookValue: decimal.Max(purchaseBase.Sub(cumulative), decimal.Zero),
				Label:     "Flat 2%",
			}
		}
		depreciation := entry.Total()

		rentalResult := rent.Sub(interest.Add(depreciation).Add(upkeep))

		taxWithout := pp.TaxCalc.JointTaxFor(income.PersonA, income.PersonB)
		taxWith := pp.TaxCalc.JointTaxFor(
			income.PersonA.Add(rentalResult.Mul(shareA)),
			income.PersonB.Add(rentalResult.Mul(shareB)),
		)
		taxSaved := taxWithout.Sub(taxWith)

		marginalRate := decimal.Zero
		if !rentalResult.IsZero() {
			marginalRate = taxSaved.Div(rentalResult.Abs())
		}

		vacancy := rent.Mul(pct(params.Rental.VacancyLossPct))
		preTax := rent.Sub(payment).Sub(upkeep).Sub(vacancy)
		afterTax := preTax.Add(taxSaved)
		monthlyTotal := payment.Add(upkeep).Add(vacancy).Div(twelve)
		monthlyBurden := monthlyTotal.Sub(rent.Div(twelve))

		marketValue = marketValue.Mul(one.Add(pct(params.PropertyValueGrowthPct)))
		netWorth := marketValue.Sub(principal)
		delta := netWorth.Sub(priorNetWorth)
		priorNetWorth = netWorth

		equalization := decimal.Zero
		if params.Ownership.Mode == domain.OwnershipSole && !params.Ownership.MaritalPropertyExcluded {
			if gain := netWorth.Sub(capital); gain.IsPositive() {
				equalization = gain.Div(decimal.NewFromInt(2))
			}
		}

		rec := domain.YearRecord{
			Year:                   year,
			HouseholdIncome:        income.Total(),
			SpecialIncome:          special,
			MarginalRatePct:        marginalRate.Mul(hundred).Round(1),
			RemainingPrincipal:     decimal.Max(principal, decimal.Zero),
			Interest:               interest,
			PrincipalPortion:       principalPortion,
			AnnualPayment:          payment,
			GrossRent:              rent,
			Upkeep:                 upkeep,
			VacancyLoss:            vacancy,
			MonthlyTotalCost:       monthlyTotal,
			MonthlyBurden:          monthlyBurden,
			Depreciation:           entry.Amount,
			BonusDepreciation:      entry.Bonus,
			TotalDepreciation:      depreciation,
			DepreciationLabel:      entry.Label,
			BuildingBookValue:      entry.BookValue,
			CumulativeDepreciation: cumulative,
			RentalResult:           rentalResult,
			TaxSaved:               taxSaved,
			PreTaxCashflow:         preTax,
			AfterTaxCashflow:       afterTax,
			MarketValue:            marketValue,
			NetWorth:               netWorth,
			NetWorthDelta:          delta,
			DivorceEqualization:    equalization,
		}
		if params.Exit != nil {
			pp.applyExit(&rec, params, principal, bookBasis, marginalRate)
		}
		ledger.Years = append(ledger.Years, rec)

		rent = rent.Mul(one.Add(pct(params.Rental.RentGrowthPct)))
		upkeep = upkeep.Mul(one.Add(pct(params.Rental.UpkeepGrowthPct)))
	}

	if principal.GreaterThan(paidOffThreshold) {
		ledger.Termination = domain.TerminationSafetyStop
		pp.Logger.Warnf("projection stopped after %d years with principal %s outstanding",
			year, principal.StringFixed(2))
	} else {
		ledger.Termination = domain.TerminationPaidOff
	}
	return ledger, nil
}

// applyExit fills the hypothetical sale figures of a year record
func (pp *PropertyProjector) applyExit(rec *domain.YearRecord, params domain.ScenarioParameters, principal, bookBasis, marginalRate decimal.Decimal) {
	exit := params.Exit
	lock := params.Loan.RateLockYears

	penalty := decimal.Zero
	if rec.Year < lock {
		spread := decimal.Max(params.Loan.InterestRatePct.Sub(exit.MarketRateAtSalePct), decimal.Zero)
		remaining := decimal.NewFromInt(int64(lock - rec.Year))
		penalty = principal.Mul(pct(spread)).Mul(remaining)
	}

	saleCosts := rec.MarketValue.Mul(pct(exit.SaleCostPct))

	speculationTax := decimal.Zero
	if rec.Year < speculationPeriodYears {
		gain := rec.MarketValue.Sub(saleCosts).Sub(bookBasis)
		if gain.IsPositive() {
			speculationTax = gain.Mul(marginalRate)
		}
	}

	rec.EarlyRepaymentPenalty = penalty
	rec.SaleCosts = saleCosts
	rec.SpeculationTax = speculationTax
	rec.NetSaleProceeds = rec.MarketValue.Sub(principal).Sub(penalty).Sub(saleCosts).Sub(speculationTax)
}
