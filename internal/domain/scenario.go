package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownScenarioKind is returned when a scenario names a kind the engine cannot project.
	ErrUnknownScenarioKind = errors.New("unknown scenario kind")
	// ErrUnknownEnumValue is returned when a YAML enumeration holds an unsupported value.
	ErrUnknownEnumValue = errors.New("unknown enumeration value")
)

// ScenarioKind selects which projector handles a scenario
type ScenarioKind string

const (
	ScenarioPurchase        ScenarioKind = "purchase"
	ScenarioNewConstruction ScenarioKind = "new_construction"
	ScenarioSavingsPlan     ScenarioKind = "savings_plan"
)

// ParseScenarioKind converts a raw string into a ScenarioKind
func ParseScenarioKind(s string) (ScenarioKind, error) {
	switch k := ScenarioKind(s); k {
	case ScenarioPurchase, ScenarioNewConstruction, ScenarioSavingsPlan:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownScenarioKind, s)
}

// IsProperty reports whether the kind is projected by the amortization loop
func (k ScenarioKind) IsProperty() bool {
	return k == ScenarioPurchase || k == ScenarioNewConstruction
}

// UnmarshalYAML rejects unknown kinds instead of silently accepting them
func (k *ScenarioKind) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseScenarioKind(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = parsed
	return nil
}

// OwnershipMode describes whether the property belongs to one or both persons
type OwnershipMode string

const (
	OwnershipSole  OwnershipMode = "sole"
	OwnershipJoint OwnershipMode = "joint"
)

// UnmarshalYAML implements strict decoding for OwnershipMode
func (m *OwnershipMode) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, (*string)(m), string(OwnershipSole), string(OwnershipJoint))
}

// Person identifies one of the two household members
type Person string

const (
	PersonA Person = "person_a"
	PersonB Person = "person_b"
)

// UnmarshalYAML implements strict decoding for Person
func (p *Person) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, (*string)(p), string(PersonA), string(PersonB))
}

// DepreciationMethod selects the building depreciation rule for new construction
type DepreciationMethod string

const (
	DepreciationLinear         DepreciationMethod = "linear"
	DepreciationDeclining      DepreciationMethod = "declining"
	DepreciationDecliningBonus DepreciationMethod = "declining_bonus"
)

// UnmarshalYAML implements strict decoding for DepreciationMethod
func (d *DepreciationMethod) UnmarshalYAML(value *yaml.Node) error {
	return decodeEnum(value, (*string)(d),
		string(DepreciationLinear), string(DepreciationDeclining), string(DepreciationDecliningBonus))
}

func decodeEnum(value *yaml.Node, dst *string, allowed ...string) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	for _, a := range allowed {
		if raw == a {
			*dst = raw
			return nil
		}
	}
	return fmt.Errorf("line %d: %w %q (allowed: %v)", value.Line, ErrUnknownEnumValue, raw, allowed)
}

// PurchaseTerms describes buying an existing property
type PurchaseTerms struct {
	Price          decimal.Decimal `yaml:"price" json:"price"`
	NotaryPct      decimal.Decimal `yaml:"notary_pct" json:"notary_pct"`
	TransferTaxPct decimal.Decimal `yaml:"transfer_tax_pct" json:"transfer_tax_pct"`
	LandSharePct   decimal.Decimal `yaml:"land_share_pct" json:"land_share_pct"` // not depreciable
}

// DepreciationPlan configures the building depreciation schedule
type DepreciationPlan struct {
	Method      DepreciationMethod `yaml:"method" json:"method"`
	SwitchYear  int                `yaml:"switch_year,omitempty" json:"switch_year,omitempty"` // 0 = never switch
	FloorAreaM2 decimal.Decimal    `yaml:"floor_area_m2" json:"floor_area_m2"`
}

// ConstructionTerms describes building a new rental property
type ConstructionTerms struct {
	LandPrice        decimal.Decimal  `yaml:"land_price" json:"land_price"`
	BuildingCost     decimal.Decimal  `yaml:"building_cost" json:"building_cost"`
	AncillaryCostPct decimal.Decimal  `yaml:"ancillary_cost_pct" json:"ancillary_cost_pct"`
	NotaryPct        decimal.Decimal  `yaml:"notary_pct" json:"notary_pct"`
	TransferTaxPct   decimal.Decimal  `yaml:"transfer_tax_pct" json:"transfer_tax_pct"`
	Depreciation     DepreciationPlan `yaml:"depreciation" json:"depreciation"`
}

// Acquisition holds exactly one of the two acquisition variants
type Acquisition struct {
	Purchase     *PurchaseTerms     `yaml:"purchase,omitempty" json:"purchase,omitempty"`
	Construction *ConstructionTerms `yaml:"construction,omitempty" json:"construction,omitempty"`
}

// Validate checks that exactly one variant is set
func (a Acquisition) Validate() error {
	switch {
	case a.Purchase == nil && a.Construction == nil:
		return errors.New("acquisition: one of purchase or construction is required")
	case a.Purchase != nil && a.Construction != nil:
		return errors.New("acquisition: purchase and construction are mutually exclusive")
	}
	return nil
}

// InitialMarketValue is the value the property starts with in year zero
func (a Acquisition) InitialMarketValue() decimal.Decimal {
	if a.Construction != nil {
		return a.Construction.LandPrice.Add(a.Construction.BuildingCost)
	}
	if a.Purchase != nil {
		return a.Purchase.Price
	}
	return decimal.Zero
}

// TotalCost is the all-in acquisition cost including ancillary charges
func (a Acquisition) TotalCost() decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if c := a.Construction; c != nil {
		ancillary := c.BuildingCost.Mul(c.AncillaryCostPct).Div(hundred)
		landCharges := c.LandPrice.Mul(c.NotaryPct.Add(c.TransferTaxPct)).Div(hundred)
		return c.LandPrice.Add(c.BuildingCost).Add(ancillary).Add(landCharges)
	}
	if p := a.Purchase; p != nil {
		return p.Price.Mul(decimal.NewFromInt(1).Add(p.NotaryPct.Add(p.TransferTaxPct).Div(hundred)))
	}
	return decimal.Zero
}

// Contribution is the own capital a person brings in
type Contribution struct {
	Cash decimal.Decimal `yaml:"cash" json:"cash"`
	Gift decimal.Decimal `yaml:"gift" json:"gift"`
}

// Total returns cash plus gift
func (c Contribution) Total() decimal.Decimal {
	return c.Cash.Add(c.Gift)
}

// Ownership describes who holds the property and who brings which capital
type Ownership struct {
	Mode                    OwnershipMode `yaml:"mode" json:"mode"`
	Owner                   Person        `yaml:"owner,omitempty" json:"owner,omitempty"` // sole only
	PersonA                 Contribution  `yaml:"person_a" json:"person_a"`
	PersonB                 Contribution  `yaml:"person_b" json:"person_b"`
	MaritalPropertyExcluded bool          `yaml:"marital_property_excluded" json:"marital_property_excluded"`
}

// Capital returns the own capital that reduces the loan
func (o Ownership) Capital() decimal.Decimal {
	if o.Mode == OwnershipSole {
		if o.Owner == PersonB {
			return o.PersonB.Total()
		}
		return o.PersonA.Total()
	}
	return o.PersonA.Total().Add(o.PersonB.Total())
}

// Loan holds the financing terms
type Loan struct {
	InterestRatePct        decimal.Decimal `yaml:"interest_rate_pct" json:"interest_rate_pct"`
	InitialAmortizationPct decimal.Decimal `yaml:"initial_amortization_pct" json:"initial_amortization_pct"`
	RateLockYears          int             `yaml:"rate_lock_years" json:"rate_lock_years"`
}

// Rental holds the letting assumptions
type Rental struct {
	MonthlyRent     decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	RentGrowthPct   decimal.Decimal `yaml:"rent_growth_pct" json:"rent_growth_pct"`
	AnnualUpkeep    decimal.Decimal `yaml:"annual_upkeep" json:"annual_upkeep"`
	UpkeepGrowthPct decimal.Decimal `yaml:"upkeep_growth_pct" json:"upkeep_growth_pct"`
	VacancyLossPct  decimal.Decimal `yaml:"vacancy_loss_pct" json:"vacancy_loss_pct"`
}

// IncomePair is the taxable income of both persons for one year
type IncomePair struct {
	PersonA decimal.Decimal `yaml:"person_a" json:"person_a"`
	PersonB decimal.Decimal `yaml:"person_b" json:"person_b"`
}

// Total returns the household income
func (p IncomePair) Total() decimal.Decimal {
	return p.PersonA.Add(p.PersonB)
}

// SpecialIncomePeriod overrides the standard incomes for an inclusive year range
type SpecialIncomePeriod struct {
	FromYear int        `yaml:"from_year" json:"from_year"`
	ToYear   int        `yaml:"to_year" json:"to_year"`
	Income   IncomePair `yaml:"income" json:"income"`
}

// Income holds the standard incomes and an optional special period
type Income struct {
	Standard IncomePair           `yaml:"standard" json:"standard"`
	Special  *SpecialIncomePeriod `yaml:"special,omitempty" json:"special,omitempty"`
}

// ForYear returns the incomes in effect for a 1-based projection year
func (i Income) ForYear(year int) (IncomePair, bool) {
	if s := i.Special; s != nil && year >= s.FromYear && year <= s.ToYear {
		return s.Income, true
	}
	return i.Standard, false
}

// ExitAssumptions configures the hypothetical sale figures
type ExitAssumptions struct {
	MarketRateAtSalePct decimal.Decimal `yaml:"market_rate_at_sale_pct" json:"market_rate_at_sale_pct"`
	SaleCostPct         decimal.Decimal `yaml:"sale_cost_pct" json:"sale_cost_pct"`
}

// ScenarioParameters is the complete, immutable input of a property projection
type ScenarioParameters struct {
	Acquisition            Acquisition      `yaml:"acquisition" json:"acquisition"`
	Ownership              Ownership        `yaml:"ownership" json:"ownership"`
	Loan                   Loan             `yaml:"loan" json:"loan"`
	Rental                 Rental           `yaml:"rental" json:"rental"`
	PropertyValueGrowthPct decimal.Decimal  `yaml:"property_value_growth_pct" json:"property_value_growth_pct"`
	Income                 Income           `yaml:"income" json:"income"`
	Exit                   *ExitAssumptions `yaml:"exit,omitempty" json:"exit,omitempty"`
}

// SavingsPlanParameters is the input of an index-fund savings plan projection
type SavingsPlanParameters struct {
	Starting            Contribution    `yaml:"starting" json:"starting"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualReturnPct     decimal.Decimal `yaml:"annual_return_pct" json:"annual_return_pct"`
	TaxRatePct          decimal.Decimal `yaml:"tax_rate_pct" json:"tax_rate_pct"`
	DurationYears       int             `yaml:"duration_years" json:"duration_years"`
}

// Scenario is one named investment path
type Scenario struct {
	Name        string                 `yaml:"name" json:"name"`
	Kind        ScenarioKind           `yaml:"kind" json:"kind"`
	Property    *ScenarioParameters    `yaml:"property,omitempty" json:"property,omitempty"`
	SavingsPlan *SavingsPlanParameters `yaml:"savings_plan,omitempty" json:"savings_plan,omitempty"`
}

// DisplaySettings controls post-processing of ledgers for presentation
type DisplaySettings struct {
	InflationRatePct  decimal.Decimal `yaml:"inflation_rate_pct" json:"inflation_rate_pct"`
	InflationAdjusted bool            `yaml:"inflation_adjusted" json:"inflation_adjusted"`
}

// Configuration is the root of a scenario file
type Configuration struct {
	Scenarios []Scenario      `yaml:"scenarios" json:"scenarios"`
	Display   DisplaySettings `yaml:"display" json:"display"`
}
