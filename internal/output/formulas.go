package output

import "strings"

// Formula documents one calculation rule of the projection.
type Formula struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Expression  string `json:"expression"`
}

// FormulaCatalogue lists the rules applied by the projectors, in reading order.
var FormulaCatalogue = []Formula{
	{"Total cost (purchase)", "Financing", "Price plus notary and transfer tax.", "price × (1 + (notary% + transfer%) / 100)"},
	{"Total cost (construction)", "Financing", "Land and building plus ancillary building costs and land charges.", "land + building + building × ancillary% / 100 + land × (notary% + transfer%) / 100"},
	{"Loan amount", "Financing", "Whatever own capital does not cover.", "total cost − (cash + gifts of both persons)"},
	{"Annual payment", "Financing", "Constant annuity fixed at the start.", "loan × (interest% + initial amortization%) / 100"},
	{"Interest", "Financing", "Charged on the principal at the start of the year.", "principal × interest% / 100"},
	{"Principal portion", "Financing", "Payment minus interest, capped at the remaining principal.", "min(payment − interest, principal)"},
	{"Ownership shares (joint)", "Financing", "Own capital plus half the loan, relative to total cost.", "(capital_X + loan / 2) / total cost"},
	{"Income tax", "Tax", "2024 tariff in five zones, floored to whole euros.", "0 | (922.98·y + 1400)·y | (181.19·z + 2397)·z + 1082.70 | 0.42·x − 10633.76 | 0.45·x − 18968.51"},
	{"Joint assessment", "Tax", "Splitting: tax on half the joint income, doubled.", "2 × tax((income_A + income_B) / 2)"},
	{"Tax saved", "Tax", "Joint tax without minus joint tax with the rental result added per ownership share.", "jointTax(A, B) − jointTax(A + r·share_A, B + r·share_B)"},
	{"Marginal rate", "Tax", "Tax saved relative to the absolute rental result.", "tax saved / |rental result|"},
	{"Purchase depreciation", "Depreciation", "Flat 2% of the building share of the price.", "price × (1 − land share%) × 0.02"},
	{"Linear depreciation", "Depreciation", "3% of building cost until the book value is used up.", "min(building × 0.03, book value)"},
	{"Declining depreciation", "Depreciation", "5% of book value, switching to linear over the remaining useful life.", "book × 0.05, then book / (33.33 − (year − 1))"},
	{"Special depreciation §7b", "Depreciation", "Extra 5% of building cost in years 1-4 when cost per m² ≤ 5,200.", "building × 0.05"},
	{"Rental result", "Cashflow", "Rent minus interest, depreciation and upkeep.", "rent − (interest + depreciation + upkeep)"},
	{"Pre-tax cashflow", "Cashflow", "Rent minus payment, upkeep and vacancy loss.", "rent − payment − upkeep − vacancy loss"},
	{"After-tax cashflow", "Cashflow", "Pre-tax cashflow plus tax saved.", "pre-tax cashflow + tax saved"},
	{"Monthly burden", "Cashflow", "Monthly total cost net of rent.", "(payment + upkeep + vacancy) / 12 − rent / 12"},
	{"Market value", "Exit", "Grows by the value growth rate every year.", "value × (1 + growth% / 100)"},
	{"Net worth", "Exit", "Market value minus remaining principal.", "market value − principal"},
	{"Early repayment penalty", "Exit", "Interest differential until the end of the rate lock.", "principal × max(0, rate − market rate) / 100 × (lock − year)"},
	{"Speculation tax", "Exit", "Gain on a sale before year 10 taxed at the marginal rate.", "max(0, value − sale costs − book basis) × marginal rate"},
	{"Divorce equalization", "Exit", "Half the growth in net worth over contributed capital, sole ownership only.", "max(0, net worth − capital) / 2"},
	{"Savings balance", "Savings", "Monthly compounding with monthly contributions.", "balance × (1 + return% / 1200) + contribution"},
	{"Latent tax", "Savings", "Capital gains tax due if sold at year end.", "max(0, gross − contributed) × tax% / 100"},
	{"Equivalent savings rate", "Key figures", "Monthly contribution a savings plan needs to reach the same final wealth.", "(W − S·(1+i)^n) / (((1+i)^n − 1) / i)"},
	{"Refinancing stress", "Key figures", "Monthly payment on the rate-lock residual at 6% and 8%.", "residual × (rate + amortization%) / 100 / 12"},
	{"Inflation adjustment", "Inflation", "Deflates year N by the cumulative inflation factor.", "amount / (1 + inflation% / 100)^N"},
}

// SearchFormulas returns the catalogue entries whose name, category or
// description contains query, ignoring case. An empty query returns everything.
func SearchFormulas(query string) []Formula {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]Formula(nil), FormulaCatalogue...)
	}
	var hits []Formula
	for _, f := range FormulaCatalogue {
		if strings.Contains(strings.ToLower(f.Name), q) ||
			strings.Contains(strings.ToLower(f.Category), q) ||
			strings.Contains(strings.ToLower(f.Description), q) {
			hits = append(hits, f)
		}
	}
	return hits
}

// FormulaCategories returns the categories in catalogue order without duplicates.
func FormulaCategories() []string {
	var cats []string
	seen := map[string]bool{}
	for _, f := range FormulaCatalogue {
		if !seen[f.Category] {
			seen[f.Category] = true
			cats = append(cats, f.Category)
		}
	}
	return cats
}
