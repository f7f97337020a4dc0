package main

import (
	"fmt"

	"github.com/immocalc/property-projection/internal/config"
	"github.com/immocalc/property-projection/internal/domain"
	"github.com/immocalc/property-projection/internal/output"
	money "github.com/immocalc/property-projection/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func (a *app) newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project <config.yaml>",
		Short: "Project all scenarios of a configuration file and print or write a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if err := a.applyDisplayOverrides(cfg); err != nil {
				return err
			}

			a.logger.Sugar().Debugf("projecting %d scenarios from %s", len(cfg.Scenarios), args[0])
			results, err := a.engine().RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			format := a.v.GetString("format")
			if dir := a.v.GetString("output-dir"); dir != "" {
				files, err := output.GenerateReport(results, format, dir)
				if err != nil {
					return err
				}
				for _, f := range files {
					fmt.Fprintln(cmd.OutOrStdout(), "Wrote", f)
				}
				return nil
			}
			data, err := output.Render(results, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringP("format", "f", "console-lite", "report format (console, console-lite, csv, detailed-csv, json, html, all)")
	cmd.Flags().StringP("output-dir", "o", "", "write timestamped report files to this directory instead of stdout")
	cmd.Flags().String("inflation", "", "show figures in today's money at this yearly inflation rate in percent")
	cmd.Flags().Bool("nominal", false, "show nominal figures even if the configuration asks for inflation adjustment")
	return cmd
}

// applyDisplayOverrides lets flags and IMMOCALC_* variables override the file's display block.
func (a *app) applyDisplayOverrides(cfg *domain.Configuration) error {
	if raw := a.v.GetString("inflation"); raw != "" {
		parsed, err := money.NewMoneyFromString(raw)
		if err != nil {
			return fmt.Errorf("invalid inflation rate %q: %w", raw, err)
		}
		rate := parsed.Decimal
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(10)) {
			return fmt.Errorf("inflation rate must be between 0 and 10, got %s", rate)
		}
		cfg.Display.InflationRatePct = rate
		cfg.Display.InflationAdjusted = true
	}
	if a.v.GetBool("nominal") {
		cfg.Display.InflationAdjusted = false
	}
	return nil
}
