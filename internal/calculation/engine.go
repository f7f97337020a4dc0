package calculation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/immocalc/property-projection/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine orchestrates the projections of a configuration
type CalculationEngine struct {
	TaxCalc  *IncomeTaxCalculator
	Property *PropertyProjector
	Savings  *SavingsPlanProjector
	Logger   Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	taxCalc := NewIncomeTaxCalculator()
	logger := NopLogger{}
	return &CalculationEngine{
		TaxCalc:  taxCalc,
		Property: NewPropertyProjector(taxCalc, logger),
		Savings:  NewSavingsPlanProjector(logger),
		Logger:   logger,
	}
}

// SetLogger sets the logger for the engine and its projectors. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
	ce.Property.Logger = l
	ce.Savings.Logger = l
}

// RunScenario projects a single scenario and derives its key figures
func (ce *CalculationEngine) RunScenario(ctx context.Context, config *domain.Configuration, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ce.Logger.Debugf("projecting scenario %q (%s)", scenario.Name, scenario.Kind)

	display := config.Display
	summary := &domain.ScenarioSummary{
		Name:              scenario.Name,
		Kind:              scenario.Kind,
		InflationAdjusted: display.InflationAdjusted,
	}

	switch {
	case scenario.Kind.IsProperty():
		params, err := propertyParams(scenario)
		if err != nil {
			return nil, err
		}
		ledger, err := ce.Property.Project(*params)
		if err != nil {
			if errors.Is(err, ErrNoLoanRequired) {
				ce.Logger.Warnf("scenario %q rejected: %v", scenario.Name, err)
			}
			return nil, err
		}
		shown := ledger
		if display.InflationAdjusted {
			shown = AdjustLedger(ledger, display.InflationRatePct)
		}
		kf := PropertyKeyFigures(*params, ledger, shown)
		if plan := firstSavingsPlan(config); plan != nil {
			if last, ok := ledger.Final(); ok {
				kf.EquivalentSavingsRate = EquivalentSavingsRate(last.NetWorth, ledger.Capital, plan.AnnualReturnPct, len(ledger.Years)*12)
			}
		}
		summary.Ledger = shown
		summary.KeyFigures = &kf

	case scenario.Kind == domain.ScenarioSavingsPlan:
		if scenario.SavingsPlan == nil {
			return nil, fmt.Errorf("scenario %q: savings_plan block is required for kind %s", scenario.Name, scenario.Kind)
		}
		ledger := ce.Savings.Project(*scenario.SavingsPlan)
		if display.InflationAdjusted {
			ledger = AdjustSavingsLedger(ledger, display.InflationRatePct)
		}
		kf := SavingsKeyFigures(ledger)
		summary.Savings = ledger
		summary.SavingsFigures = &kf

	default:
		return nil, fmt.Errorf("scenario %q: %w: %q", scenario.Name, domain.ErrUnknownScenarioKind, scenario.Kind)
	}

	ce.Logger.Infof("scenario %q projected over %d years, final net worth %s",
		scenario.Name, summary.Horizon(), summary.FinalNetWorth().StringFixed(2))
	return summary, nil
}

func propertyParams(scenario *domain.Scenario) (*domain.ScenarioParameters, error) {
	p := scenario.Property
	if p == nil {
		return nil, fmt.Errorf("scenario %q: property block is required for kind %s", scenario.Name, scenario.Kind)
	}
	if scenario.Kind == domain.ScenarioPurchase && p.Acquisition.Purchase == nil {
		return nil, fmt.Errorf("scenario %q: kind purchase requires acquisition.purchase", scenario.Name)
	}
	if scenario.Kind == domain.ScenarioNewConstruction && p.Acquisition.Construction == nil {
		return nil, fmt.Errorf("scenario %q: kind new_construction requires acquisition.construction", scenario.Name)
	}
	return p, nil
}

func firstSavingsPlan(config *domain.Configuration) *domain.SavingsPlanParameters {
	for i := range config.Scenarios {
		if s := config.Scenarios[i]; s.Kind == domain.ScenarioSavingsPlan && s.SavingsPlan != nil {
			return s.SavingsPlan
		}
	}
	return nil
}

// RunScenarios projects all scenarios concurrently and returns a comparison.
// Results keep the configuration order; the first failing scenario is reported.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	summaries := make([]*domain.ScenarioSummary, len(config.Scenarios))
	errs := make([]error, len(config.Scenarios))

	var wg sync.WaitGroup
	for i := range config.Scenarios {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			summaries[idx], errs[idx] = ce.RunScenario(ctx, config, &config.Scenarios[idx])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("RunScenario %q failed: %w", config.Scenarios[i].Name, err)
		}
	}

	comparison := &domain.ScenarioComparison{
		Scenarios:        make([]domain.ScenarioSummary, len(summaries)),
		InflationRatePct: config.Display.InflationRatePct,
		Assumptions:      GenerateAssumptions(config),
	}
	best := decimal.Zero
	for i, s := range summaries {
		comparison.Scenarios[i] = *s
		if nw := s.FinalNetWorth(); comparison.BestByNetWorth == "" || nw.GreaterThan(best) {
			best = nw
			comparison.BestByNetWorth = s.Name
		}
	}
	return comparison, nil
}

// GenerateAssumptions lists the modeling assumptions shown alongside reports
func GenerateAssumptions(config *domain.Configuration) []string {
	table := DefaultTaxTable()
	assumptions := []string{
		fmt.Sprintf("Income tax: %d tariff, joint assessment with splitting", table.Year),
		fmt.Sprintf("Projection capped at %d years; loan counts as repaid below 1.00", MaxProjectionYears),
		"Purchase depreciation: flat 2% of the building share of the price",
		"Speculation tax on sales before year 10 at the year's marginal rate",
		"Divorce equalization only for sole ownership without a marital property agreement",
	}
	if config.Display.InflationAdjusted {
		assumptions = append(assumptions,
			fmt.Sprintf("Figures in today's money at %s%% inflation per year", config.Display.InflationRatePct.String()))
	} else {
		assumptions = append(assumptions, "Figures are nominal")
	}
	return assumptions
}
