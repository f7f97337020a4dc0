package output

import (
	"strconv"

	money "github.com/immocalc/property-projection/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as a euro amount with grouping and 2 decimals.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

func fixed(d decimal.Decimal) string { return d.StringFixed(2) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
