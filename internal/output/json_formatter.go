package output

import (
	"encoding/json"

	"github.com/immocalc/property-projection/internal/domain"
)

// JSONFormatter serializes the scenario comparison as pretty-printed JSON.
// Decimals are written as strings to keep full precision.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
