package calculation

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/immocalc/property-projection/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exampleConfiguration() *domain.Configuration {
	purchase := purchaseParams()
	construction := constructionParams()
	savings := savingsParams()
	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{Name: "Purchase", Kind: domain.ScenarioPurchase, Property: &purchase},
			{Name: "New construction", Kind: domain.ScenarioNewConstruction, Property: &construction},
			{Name: "Savings plan", Kind: domain.ScenarioSavingsPlan, SavingsPlan: &savings},
		},
		Display: domain.DisplaySettings{InflationRatePct: d("2")},
	}
}

func TestCalculationEngine_RunScenarios(t *testing.T) {
	engine := NewCalculationEngine()
	comparison, err := engine.RunScenarios(context.Background(), exampleConfiguration())
	require.NoError(t, err)
	require.Len(t, comparison.Scenarios, 3)

	// configuration order is kept regardless of goroutine scheduling
	assert.Equal(t, "Purchase", comparison.Scenarios[0].Name)
	assert.Equal(t, "New construction", comparison.Scenarios[1].Name)
	assert.Equal(t, "Savings plan", comparison.Scenarios[2].Name)

	purchase := comparison.Scenarios[0]
	require.NotNil(t, purchase.Ledger)
	require.NotNil(t, purchase.KeyFigures)
	assert.Nil(t, purchase.Savings)
	assert.Len(t, purchase.Ledger.Years, 31)
	assertNear(t, -1949.9541, purchase.KeyFigures.EquivalentSavingsRate, "equivalent savings rate")

	savings := comparison.Scenarios[2]
	require.NotNil(t, savings.Savings)
	require.NotNil(t, savings.SavingsFigures)
	assert.Nil(t, savings.Ledger)

	assert.Equal(t, "Savings plan", comparison.BestByNetWorth)
	assert.NotEmpty(t, comparison.Assumptions)
	assert.Contains(t, comparison.Assumptions, "Figures are nominal")
}

func TestCalculationEngine_InflationAdjusted(t *testing.T) {
	config := exampleConfiguration()
	config.Display.InflationAdjusted = true

	engine := NewCalculationEngine()
	comparison, err := engine.RunScenarios(context.Background(), config)
	require.NoError(t, err)

	purchase := comparison.Scenarios[0]
	assert.True(t, purchase.InflationAdjusted)
	y1 := purchase.Ledger.Years[0]
	// 1,173,000 / 1.02
	assertNear(t, 1150000, y1.MarketValue, "market value in today's money")
	assertDec(t, "42", y1.MarginalRatePct, "rate untouched")
	// loan figures stay nominal
	assertDec(t, "2743", purchase.KeyFigures.MonthlyBankPayment, "monthly bank payment")

	savings := comparison.Scenarios[2]
	assert.True(t, savings.Savings.Years[0].Gross.LessThan(d("591429")))
	assert.Contains(t, comparison.Assumptions, "Figures in today's money at 2% inflation per year")
}

func TestCalculationEngine_NoLoanRequired(t *testing.T) {
	config := exampleConfiguration()
	config.Scenarios[0].Property.Ownership.PersonA.Gift = d("5000000")

	logger := &recordingLogger{}
	engine := NewCalculationEngine()
	engine.SetLogger(logger)

	_, err := engine.RunScenarios(context.Background(), config)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoLoanRequired))
	assert.Contains(t, err.Error(), `"Purchase"`)
	assert.NotEmpty(t, logger.warnings)
}

func TestCalculationEngine_RunScenarioErrors(t *testing.T) {
	engine := NewCalculationEngine()
	config := exampleConfiguration()
	purchase := purchaseParams()
	construction := constructionParams()

	tests := []struct {
		name     string
		scenario domain.Scenario
		sentinel error
	}{
		{"unknown kind", domain.Scenario{Name: "x", Kind: "lottery"}, domain.ErrUnknownScenarioKind},
		{"missing property block", domain.Scenario{Name: "x", Kind: domain.ScenarioPurchase}, nil},
		{"missing savings block", domain.Scenario{Name: "x", Kind: domain.ScenarioSavingsPlan}, nil},
		{"purchase kind with construction terms", domain.Scenario{Name: "x", Kind: domain.ScenarioPurchase, Property: &construction}, nil},
		{"construction kind with purchase terms", domain.Scenario{Name: "x", Kind: domain.ScenarioNewConstruction, Property: &purchase}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := engine.RunScenario(context.Background(), config, &tt.scenario)
			require.Error(t, err)
			assert.Nil(t, summary)
			if tt.sentinel != nil {
				assert.True(t, errors.Is(err, tt.sentinel))
			}
		})
	}
}

func TestCalculationEngine_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCalculationEngine().RunScenarios(ctx, exampleConfiguration())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCalculationEngine_ManyScenariosConcurrently(t *testing.T) {
	config := &domain.Configuration{}
	for i := 0; i < 24; i++ {
		p := purchaseParams()
		p.Rental.MonthlyRent = d(fmt.Sprintf("%d", 1500+i*50))
		config.Scenarios = append(config.Scenarios, domain.Scenario{
			Name:     fmt.Sprintf("rent-%02d", i),
			Kind:     domain.ScenarioPurchase,
			Property: &p,
		})
	}

	comparison, err := NewCalculationEngine().RunScenarios(context.Background(), config)
	require.NoError(t, err)
	require.Len(t, comparison.Scenarios, 24)
	for i, s := range comparison.Scenarios {
		assert.Equal(t, fmt.Sprintf("rent-%02d", i), s.Name)
	}
	// projections are independent and deterministic
	again, err := NewCalculationEngine().RunScenarios(context.Background(), config)
	require.NoError(t, err)
	for i := range comparison.Scenarios {
		assert.True(t, comparison.Scenarios[i].FinalNetWorth().Equal(again.Scenarios[i].FinalNetWorth()))
	}
}

func TestCalculationEngine_SetLoggerNil(t *testing.T) {
	engine := NewCalculationEngine()
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
	assert.IsType(t, NopLogger{}, engine.Property.Logger)
}
