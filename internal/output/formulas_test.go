package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchFormulas(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"SPLITTING", []string{"Joint assessment"}},
		{"  §7b ", []string{"Special depreciation §7b"}},
		{"savings", []string{"Savings balance", "Latent tax", "Equivalent savings rate"}},
		{"no such rule", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var names []string
			for _, f := range SearchFormulas(tt.query) {
				names = append(names, f.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestSearchFormulas_EmptyReturnsCopyOfCatalogue(t *testing.T) {
	all := SearchFormulas("")
	assert.Len(t, all, len(FormulaCatalogue))
	all[0].Name = "changed"
	assert.NotEqual(t, "changed", FormulaCatalogue[0].Name)
}

func TestFormulaCategories(t *testing.T) {
	cats := FormulaCategories()
	assert.Equal(t, "Financing", cats[0])
	assert.Contains(t, cats, "Inflation")
	seen := map[string]bool{}
	for _, c := range cats {
		assert.False(t, seen[c], "duplicate category %s", c)
		seen[c] = true
	}
}
