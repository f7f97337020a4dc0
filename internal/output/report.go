package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/immocalc/property-projection/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for format names no formatter answers to.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// reportBundle lists the formatters written for the "all" format.
var reportBundle = []string{"console", "detailed-csv", "json", "html"}

// Render formats results in memory, for printing to a terminal.
func Render(results *domain.ScenarioComparison, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	return f.Format(results)
}

// GenerateReport writes results in the given format to outputDir and returns the written files.
func GenerateReport(results *domain.ScenarioComparison, format, outputDir string) ([]string, error) {
	if f := GetFormatterByName(format); f != nil {
		name, err := WriteFormatted(f, results, outputDir)
		if err != nil {
			return nil, err
		}
		return []string{name}, nil
	}
	if NormalizeFormatName(format) != "all" {
		return nil, unsupported(format)
	}
	var written []string
	for _, n := range reportBundle {
		name, err := WriteFormatted(GetFormatterByName(n), results, outputDir)
		if err != nil {
			return written, err
		}
		written = append(written, name)
	}
	return written, nil
}

func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s, all (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// SaveConfiguration writes a configuration back as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return os.WriteFile(filename, b, 0o644)
}
