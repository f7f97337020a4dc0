package output

import "github.com/shopspring/decimal"

// DefaultAssumptions lists key modeling assumptions rendered when a comparison
// carries none of its own.
var DefaultAssumptions = []string{
	"Income tax: 2024 tariff, joint assessment with splitting",
	"Projection capped at 80 years",
	"Speculation tax on sales before year 10",
	"Figures are nominal",
}

func assumptionsOf(assumptions []string) []string {
	if len(assumptions) == 0 {
		return DefaultAssumptions
	}
	return assumptions
}

var decimalHundred = decimal.NewFromInt(100)
