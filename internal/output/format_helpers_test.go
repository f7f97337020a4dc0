package output_test

import (
	"testing"

	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/immocalc/property-projection/internal/domain"
	"github.com/immocalc/property-projection/internal/output"
)

func TestFormatters(t *testing.T) {
	assert.Equal(t, "123.45 €", output.FormatCurrency(stddec.NewFromFloat(123.45)))
	assert.Equal(t, "1,234.57 €", output.FormatCurrency(stddec.NewFromFloat(1234.567)))
	assert.Equal(t, "-2,000,000.00 €", output.FormatCurrency(stddec.NewFromInt(-2000000)))
	assert.Equal(t, "12.34%", output.FormatPercentage(stddec.NewFromFloat(12.34)))
	assert.Equal(t, "12.35%", output.FormatPercentage(stddec.NewFromFloat(12.3456)))
}

func TestSaveConfiguration(t *testing.T) {
	cfg := &domain.Configuration{
		Scenarios: []domain.Scenario{{
			Name: "ETF",
			Kind: domain.ScenarioSavingsPlan,
			SavingsPlan: &domain.SavingsPlanParameters{
				MonthlyContribution: stddec.NewFromInt(500),
				AnnualReturnPct:     stddec.RequireFromString("6.5"),
				DurationYears:       20,
			},
		}},
	}
	path := t.TempDir() + "/config.yaml"
	require.NoError(t, output.SaveConfiguration(cfg, path))
}
