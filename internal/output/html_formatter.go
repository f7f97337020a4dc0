package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/immocalc/property-projection/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report with a net worth chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"whole": whole,
	"add":   func(i, j int) int { return i + j },
	"json": jsonValue,
}).Parse(htmlTemplateSource))

// jsonValue embeds v as a script literal. A value that cannot be marshalled
// fails template execution instead of leaving a broken chart script.
func jsonValue(v interface{}) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode chart data: %w", err)
	}
	return template.JS(b), nil
}

type chartSeries struct {
	Label  string    `json:"label"`
	Points []float64 `json:"points"`
}

// netWorthSeries extracts one net worth series per scenario for the chart.
func netWorthSeries(results *domain.ScenarioComparison) []chartSeries {
	series := make([]chartSeries, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		s := chartSeries{Label: sc.Name}
		switch {
		case sc.Ledger != nil:
			for _, y := range sc.Ledger.Years {
				s.Points = append(s.Points, y.NetWorth.Round(2).InexactFloat64())
			}
		case sc.Savings != nil:
			for _, y := range sc.Savings.Years {
				s.Points = append(s.Points, y.Net.Round(2).InexactFloat64())
			}
		}
		series = append(series, s)
	}
	return series
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	horizon := 0
	for _, sc := range results.Scenarios {
		horizon = max(horizon, sc.Horizon())
	}
	data := struct {
		*domain.ScenarioComparison
		Recommendation Recommendation
		Assumptions    []string
		Series         []chartSeries
		Horizon        int
	}{results, AnalyzeScenarios(results), assumptionsOf(results.Assumptions), netWorthSeries(results), horizon}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
