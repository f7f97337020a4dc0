package calculation

import (
	"fmt"

	"github.com/immocalc/property-projection/internal/domain"
	"github.com/shopspring/decimal"
)

// DEPRECIATION ASSUMPTIONS:
//
// 1. Only the building depreciates; land is never written off.
// 2. Linear: 3% of building cost per year (33 1/3 years useful life).
// 3. Declining: 5% of the remaining book value, with an optional one-way switch
//    to linear on the remaining book value over the remaining useful life.
// 4. Bonus: additional 5% of building cost in years 1-4 for buildings whose
//    cost per square metre does not exceed 5,200.
// 5. Purchased property: flat 2% of the building share of the price.

// DepreciationScheduleYears is the schedule length the projector pre-computes
const DepreciationScheduleYears = MaxProjectionYears

const bonusYears = 4

var (
	usefulLifeYears   = decimal.NewFromInt(100).Div(decimal.NewFromInt(3))
	linearRate        = decimal.RequireFromString("0.03")
	decliningRate     = decimal.RequireFromString("0.05")
	bonusRate         = decimal.RequireFromString("0.05")
	purchaseFlatRate  = decimal.RequireFromString("0.02")
	bonusCostCapPerM2 = decimal.NewFromInt(5200)
)

// BonusEligible reports whether a building qualifies for the bonus depreciation.
// A zero floor area never qualifies.
func BonusEligible(buildingCost, floorAreaM2 decimal.Decimal) bool {
	if !floorAreaM2.IsPositive() {
		return false
	}
	return buildingCost.Div(floorAreaM2).LessThanOrEqual(bonusCostCapPerM2)
}

// ScheduleFor generates the depreciation entries for the given number of years.
// Book value is carried explicitly; once it reaches zero every later entry is zero.
func ScheduleFor(buildingCost decimal.Decimal, plan domain.DepreciationPlan, years int) []domain.DepreciationYearEntry {
	entries := make([]domain.DepreciationYearEntry, 0, years)
	bookValue := buildingCost
	switchYear := plan.SwitchYear
	if switchYear <= 0 {
		switchYear = years + 1
	}
	bonusAllowed := plan.Method == domain.DepreciationDecliningBonus &&
		BonusEligible(buildingCost, plan.FloorAreaM2)

	for year := 1; year <= years; year++ {
		if !bookValue.IsPositive() {
			entries = append(entries, domain.DepreciationYearEntry{
				Year:      year,
				Amount:    decimal.Zero,
				Bonus:     decimal.Zero,
				BookValue: decimal.Zero,
				Label:     domain.NoDepreciationLabel,
			})
			continue
		}

		var amount decimal.Decimal
		var label string
		switch plan.Method {
		case domain.DepreciationLinear:
			amount = decimal.Min(buildingCost.Mul(linearRate), bookValue)
			label = "Linear 3%"
		case domain.DepreciationDeclining, domain.DepreciationDecliningBonus:
			amount, label = decliningAmount(bookValue, year, switchYear)
		default:
			amount = decimal.Zero
			label = domain.NoDepreciationLabel
		}

		bonus := decimal.Zero
		if bonusAllowed && year <= bonusYears {
			bonus = buildingCost.Mul(bonusRate)
			label += " + §7b"
		}

		total := amount.Add(bonus)
		if total.GreaterThan(bookValue) {
			factor := bookValue.Div(total)
			amount = amount.Mul(factor)
			bonus = bonus.Mul(factor)
			total = bookValue
		}
		bookValue = bookValue.Sub(total)

		entries = append(entries, domain.DepreciationYearEntry{
			Year:      year,
			Amount:    amount,
			Bonus:     bonus,
			BookValue: decimal.Max(bookValue, decimal.Zero),
			Label:     label,
		})
	}
	return entries
}

func decliningAmount(bookValue decimal.Decimal, year, switchYear int) (decimal.Decimal, string) {
	if year < switchYear {
		return bookValue.Mul(decliningRate), "Declining 5%"
	}
	remaining := usefulLifeYears.Sub(decimal.NewFromInt(int64(year - 1)))
	if remaining.IsPositive() {
		return bookValue.Div(remaining), fmt.Sprintf("Linear (switch Y%d)", switchYear)
	}
	return bookValue, "Linear (rest)"
}

// PurchaseDepreciation returns the flat annual depreciation of a purchased property
func PurchaseDepreciation(terms domain.PurchaseTerms) decimal.Decimal {
	return DepreciableBase(terms).Mul(purchaseFlatRate)
}

// DepreciableBase returns the building share of a purchase price
func DepreciableBase(terms domain.PurchaseTerms) decimal.Decimal {
	buildingShare := decimal.NewFromInt(1).Sub(terms.LandSharePct.Div(decimal.NewFromInt(100)))
	return terms.Price.Mul(buildingShare)
}
