package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/immocalc/property-projection/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads and validates a configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes YAML strictly (unknown keys are errors) and validates the result
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var config domain.Configuration
	if err := dec.Decode(&config); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: empty document")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d: duplicate name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true

		if err := ip.validateScenario(scenario); err != nil {
			return fmt.Errorf("scenario %q validation failed: %w", scenario.Name, err)
		}
	}

	if err := checkRange("display.inflation_rate_pct", config.Display.InflationRatePct, "0", "10"); err != nil {
		return err
	}
	return nil
}

func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	switch {
	case scenario.Kind.IsProperty():
		if scenario.Property == nil {
			return fmt.Errorf("property block is required for kind %s", scenario.Kind)
		}
		if scenario.SavingsPlan != nil {
			return fmt.Errorf("savings_plan block is not allowed for kind %s", scenario.Kind)
		}
		return ip.validateProperty(scenario.Kind, scenario.Property)
	case scenario.Kind == domain.ScenarioSavingsPlan:
		if scenario.SavingsPlan == nil {
			return fmt.Errorf("savings_plan block is required for kind %s", scenario.Kind)
		}
		if scenario.Property != nil {
			return fmt.Errorf("property block is not allowed for kind %s", scenario.Kind)
		}
		return ip.validateSavingsPlan(scenario.SavingsPlan)
	case scenario.Kind == "":
		return fmt.Errorf("kind is required")
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnknownScenarioKind, scenario.Kind)
	}
}

func (ip *InputParser) validateProperty(kind domain.ScenarioKind, p *domain.ScenarioParameters) error {
	if err := p.Acquisition.Validate(); err != nil {
		return err
	}

	switch kind {
	case domain.ScenarioPurchase:
		terms := p.Acquisition.Purchase
		if terms == nil {
			return fmt.Errorf("acquisition.purchase is required for kind %s", kind)
		}
		if !terms.Price.IsPositive() {
			return fmt.Errorf("acquisition.purchase.price must be positive")
		}
		if err := checkRanges(
			rangeCheck{"acquisition.purchase.notary_pct", terms.NotaryPct, "0", "15"},
			rangeCheck{"acquisition.purchase.transfer_tax_pct", terms.TransferTaxPct, "0", "15"},
			rangeCheck{"acquisition.purchase.land_share_pct", terms.LandSharePct, "10", "80"},
		); err != nil {
			return err
		}
	case domain.ScenarioNewConstruction:
		terms := p.Acquisition.Construction
		if terms == nil {
			return fmt.Errorf("acquisition.construction is required for kind %s", kind)
		}
		if terms.LandPrice.IsNegative() {
			return fmt.Errorf("acquisition.construction.land_price cannot be negative")
		}
		if !terms.BuildingCost.IsPositive() {
			return fmt.Errorf("acquisition.construction.building_cost must be positive")
		}
		if err := checkRanges(
			rangeCheck{"acquisition.construction.ancillary_cost_pct", terms.AncillaryCostPct, "10", "25"},
			rangeCheck{"acquisition.construction.notary_pct", terms.NotaryPct, "0", "15"},
			rangeCheck{"acquisition.construction.transfer_tax_pct", terms.TransferTaxPct, "0", "15"},
		); err != nil {
			return err
		}
		if err := validateDepreciation(terms.Depreciation); err != nil {
			return err
		}
	}

	if err := validateOwnership(p.Ownership); err != nil {
		return err
	}

	if err := checkRanges(
		rangeCheck{"loan.interest_rate_pct", p.Loan.InterestRatePct, "0.5", "10"},
		rangeCheck{"loan.initial_amortization_pct", p.Loan.InitialAmortizationPct, "1", "10"},
		rangeCheck{"loan.rate_lock_years", decimal.NewFromInt(int64(p.Loan.RateLockYears)), "5", "30"},
		rangeCheck{"rental.rent_growth_pct", p.Rental.RentGrowthPct, "0", "5"},
		rangeCheck{"rental.upkeep_growth_pct", p.Rental.UpkeepGrowthPct, "0", "10"},
		rangeCheck{"rental.vacancy_loss_pct", p.Rental.VacancyLossPct, "0", "10"},
		rangeCheck{"property_value_growth_pct", p.PropertyValueGrowthPct, "0", "10"},
	); err != nil {
		return err
	}
	if p.Rental.MonthlyRent.IsNegative() {
		return fmt.Errorf("rental.monthly_rent cannot be negative")
	}
	if p.Rental.AnnualUpkeep.IsNegative() {
		return fmt.Errorf("rental.annual_upkeep cannot be negative")
	}

	if err := validateIncome(p.Income); err != nil {
		return err
	}

	if p.Exit != nil {
		if err := checkRanges(
			rangeCheck{"exit.market_rate_at_sale_pct", p.Exit.MarketRateAtSalePct, "0", "10"},
			rangeCheck{"exit.sale_cost_pct", p.Exit.SaleCostPct, "0", "10"},
		); err != nil {
			return err
		}
	}
	return nil
}

func validateDepreciation(plan domain.DepreciationPlan) error {
	switch plan.Method {
	case domain.DepreciationLinear, domain.DepreciationDeclining, domain.DepreciationDecliningBonus:
	case "":
		return fmt.Errorf("acquisition.construction.depreciation.method is required")
	default:
		return fmt.Errorf("acquisition.construction.depreciation.method: %w %q", domain.ErrUnknownEnumValue, plan.Method)
	}
	if plan.SwitchYear != 0 && (plan.SwitchYear < 1 || plan.SwitchYear > 34) {
		return fmt.Errorf("acquisition.construction.depreciation.switch_year must be between 1 and 34, got %d", plan.SwitchYear)
	}
	if plan.FloorAreaM2.IsNegative() {
		return fmt.Errorf("acquisition.construction.depreciation.floor_area_m2 cannot be negative")
	}
	return nil
}

func validateOwnership(o domain.Ownership) error {
	switch o.Mode {
	case domain.OwnershipSole:
		if o.Owner == "" {
			return fmt.Errorf("ownership.owner is required for sole ownership")
		}
	case domain.OwnershipJoint:
	case "":
		return fmt.Errorf("ownership.mode is required")
	default:
		return fmt.Errorf("ownership.mode: %w %q", domain.ErrUnknownEnumValue, o.Mode)
	}
	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"ownership.person_a.cash", o.PersonA.Cash},
		{"ownership.person_a.gift", o.PersonA.Gift},
		{"ownership.person_b.cash", o.PersonB.Cash},
		{"ownership.person_b.gift", o.PersonB.Gift},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%s cannot be negative", a.field)
		}
	}
	return nil
}

func validateIncome(inc domain.Income) error {
	if inc.Standard.PersonA.IsNegative() || inc.Standard.PersonB.IsNegative() {
		return fmt.Errorf("income.standard cannot be negative")
	}
	s := inc.Special
	if s == nil {
		return nil
	}
	if s.FromYear < 1 || s.ToYear > 40 || s.FromYear > s.ToYear {
		return fmt.Errorf("income.special years must satisfy 1 <= from_year <= to_year <= 40, got %d..%d", s.FromYear, s.ToYear)
	}
	if s.Income.PersonA.IsNegative() || s.Income.PersonB.IsNegative() {
		return fmt.Errorf("income.special.income cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateSavingsPlan(sp *domain.SavingsPlanParameters) error {
	if sp.Starting.Cash.IsNegative() || sp.Starting.Gift.IsNegative() {
		return fmt.Errorf("savings_plan.starting cannot be negative")
	}
	if sp.MonthlyContribution.IsNegative() {
		return fmt.Errorf("savings_plan.monthly_contribution cannot be negative")
	}
	return checkRanges(
		rangeCheck{"savings_plan.annual_return_pct", sp.AnnualReturnPct, "0", "15"},
		rangeCheck{"savings_plan.tax_rate_pct", sp.TaxRatePct, "0", "30"},
		rangeCheck{"savings_plan.duration_years", decimal.NewFromInt(int64(sp.DurationYears)), "5", "60"},
	)
}

type rangeCheck struct {
	field    string
	value    decimal.Decimal
	min, max string
}

func checkRanges(checks ...rangeCheck) error {
	for _, c := range checks {
		if err := checkRange(c.field, c.value, c.min, c.max); err != nil {
			return err
		}
	}
	return nil
}

func checkRange(field string, v decimal.Decimal, min, max string) error {
	lo, hi := decimal.RequireFromString(min), decimal.RequireFromString(max)
	if v.LessThan(lo) || v.GreaterThan(hi) {
		return fmt.Errorf("%s must be between %s and %s, got %s", field, min, max, v.String())
	}
	return nil
}

// CreateExampleConfiguration returns a configuration with one scenario of each kind
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	income := domain.Income{
		Standard: domain.IncomePair{PersonA: decimal.NewFromInt(71000), PersonB: decimal.NewFromInt(80000)},
		Special: &domain.SpecialIncomePeriod{
			FromYear: 3,
			ToYear:   7,
			Income:   domain.IncomePair{PersonA: decimal.NewFromInt(71000), PersonB: decimal.NewFromInt(20000)},
		},
	}
	sole := domain.Ownership{
		Mode:    domain.OwnershipSole,
		Owner:   domain.PersonA,
		PersonA: domain.Contribution{Cash: decimal.NewFromInt(100000), Gift: decimal.NewFromInt(440000)},
	}
	exit := func() *domain.ExitAssumptions {
		return &domain.ExitAssumptions{
			MarketRateAtSalePct: decimal.RequireFromString("1.5"),
			SaleCostPct:         decimal.NewFromInt(3),
		}
	}

	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name: "Family purchase",
				Kind: domain.ScenarioPurchase,
				Property: &domain.ScenarioParameters{
					Acquisition: domain.Acquisition{Purchase: &domain.PurchaseTerms{
						Price:          decimal.NewFromInt(1150000),
						NotaryPct:      decimal.NewFromInt(2),
						TransferTaxPct: decimal.Zero, // intra-family sale
						LandSharePct:   decimal.NewFromInt(40),
					}},
					Ownership: sole,
					Loan: domain.Loan{
						InterestRatePct:        decimal.RequireFromString("3.2"),
						InitialAmortizationPct: decimal.NewFromInt(2),
						RateLockYears:          10,
					},
					Rental: domain.Rental{
						MonthlyRent:     decimal.NewFromInt(2116),
						RentGrowthPct:   decimal.NewFromInt(3),
						AnnualUpkeep:    decimal.NewFromInt(4000),
						UpkeepGrowthPct: decimal.NewFromInt(2),
						VacancyLossPct:  decimal.NewFromInt(2),
					},
					PropertyValueGrowthPct: decimal.NewFromInt(2),
					Income:                 income,
					Exit:                   exit(),
				},
			},
			{
				Name: "New rental building",
				Kind: domain.ScenarioNewConstruction,
				Property: &domain.ScenarioParameters{
					Acquisition: domain.Acquisition{Construction: &domain.ConstructionTerms{
						LandPrice:        decimal.NewFromInt(300000),
						BuildingCost:     decimal.NewFromInt(500000),
						AncillaryCostPct: decimal.NewFromInt(15),
						NotaryPct:        decimal.NewFromInt(2),
						TransferTaxPct:   decimal.RequireFromString("6.5"),
						Depreciation: domain.DepreciationPlan{
							Method:      domain.DepreciationDeclining,
							SwitchYear:  15,
							FloorAreaM2: decimal.NewFromInt(150),
						},
					}},
					Ownership: sole,
					Loan: domain.Loan{
						InterestRatePct:        decimal.RequireFromString("3.5"),
						InitialAmortizationPct: decimal.NewFromInt(2),
						RateLockYears:          15,
					},
					Rental: domain.Rental{
						MonthlyRent:     decimal.NewFromInt(2116),
						RentGrowthPct:   decimal.NewFromInt(2),
						AnnualUpkeep:    decimal.NewFromInt(3000),
						UpkeepGrowthPct: decimal.NewFromInt(2),
						VacancyLossPct:  decimal.NewFromInt(2),
					},
					PropertyValueGrowthPct: decimal.NewFromInt(2),
					Income:                 income,
					Exit:                   exit(),
				},
			},
			{
				Name: "Index fund savings plan",
				Kind: domain.ScenarioSavingsPlan,
				SavingsPlan: &domain.SavingsPlanParameters{
					Starting:            sole.PersonA,
					MonthlyContribution: decimal.NewFromInt(1000),
					AnnualReturnPct:     decimal.NewFromInt(7),
					TaxRatePct:          decimal.RequireFromString("18.5"),
					DurationYears:       30,
				},
			},
		},
		Display: domain.DisplaySettings{
			InflationRatePct:  decimal.NewFromInt(2),
			InflationAdjusted: false,
		},
	}
}
