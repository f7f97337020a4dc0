package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func writeExample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "example.yaml")
	out, err := run(t, "example", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Example configuration written to")
	return path
}

func TestExampleCmd_RefusesOverwrite(t *testing.T) {
	path := writeExample(t)
	_, err := run(t, "example", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = run(t, "example", "--force", path)
	assert.NoError(t, err)
}

func TestProjectCmd_CSV(t *testing.T) {
	path := writeExample(t)
	out, err := run(t, "project", "--format", "csv", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "Family purchase,purchase,31,2124727.14,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[3], "Index fund savings plan,savings_plan,30,4732846.90,"), lines[3])
}

func TestProjectCmd_InflationFlag(t *testing.T) {
	path := writeExample(t)
	out, err := run(t, "project", "--format", "json", "--inflation", "2", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"inflation_adjusted": true`)
	assert.Contains(t, out, "today's money at 2% inflation")

	out, err = run(t, "project", "--format", "json", "--inflation", " 1.5 ", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1.5% inflation")

	_, err = run(t, "project", "--inflation", "twelve", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid inflation rate")
}

func TestProjectCmd_FormatFromEnvironment(t *testing.T) {
	path := writeExample(t)
	t.Setenv("IMMOCALC_FORMAT", "json")
	out, err := run(t, "project", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"))
}

func TestProjectCmd_OutputDir(t *testing.T) {
	path := writeExample(t)
	dir := t.TempDir()
	out, err := run(t, "project", "--format", "all", "--output-dir", dir, path)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "Wrote "))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 4)
}

func TestProjectCmd_Errors(t *testing.T) {
	_, err := run(t, "project", "does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	path := writeExample(t)
	_, err = run(t, "project", "--format", "pdf", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestTaxCmd(t *testing.T) {
	out, err := run(t, "tax", "71000", "80000")
	require.NoError(t, err)
	assert.Contains(t, out, "Person A: income 71,000.00 €, tax 19,186.00 €")
	assert.Contains(t, out, "Person B: income 80,000.00 €, tax 22,966.00 €")
	assert.Contains(t, out, "Joint assessment: 42,152.00 € (splitting advantage 0.00 €)")

	_, err = run(t, "tax", "lots")
	assert.Error(t, err)
}

func TestTaxCmd_GroupedAmounts(t *testing.T) {
	out, err := run(t, "tax", "71_000", "80,000")
	require.NoError(t, err)
	assert.Contains(t, out, "Person A: income 71,000.00 €")
	assert.Contains(t, out, "Joint assessment: 42,152.00 €")
}

func TestDepreciationCmd(t *testing.T) {
	out, err := run(t, "depreciation", "--method", "linear", "--years", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Linear 3%")
	assert.Contains(t, out, "Total after 3 years: 45,000.00 €")

	_, err = run(t, "depreciation", "--method", "sum_of_digits")
	assert.Error(t, err)

	out, err = run(t, "depreciation", "--method", "linear", "--years", "1", "--building-cost", "1,000,000")
	require.NoError(t, err)
	assert.Contains(t, out, "Total after 1 years: 30,000.00 €")

	_, err = run(t, "depreciation", "--building-cost", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid building cost")
}

func TestFormulasCmd(t *testing.T) {
	out, err := run(t, "formulas", "splitting")
	require.NoError(t, err)
	assert.Contains(t, out, "Joint assessment")
	assert.NotContains(t, out, "Savings balance")

	out, err = run(t, "formulas", "nothing-matches")
	require.NoError(t, err)
	assert.Contains(t, out, "No formulas match")

	out, err = run(t, "formulas", "--categories")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "Financing", lines[0])
	assert.Contains(t, lines, "Inflation")
}

func TestInvalidLogLevel(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--log-level", "loud", "formulas"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger("debug", "json")
	require.NoError(t, err)
	assert.NotNil(t, l)

	_, err = newLogger("info", "xml")
	assert.Error(t, err)
}
