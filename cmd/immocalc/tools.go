package main

import (
	"fmt"
	"strings"

	"github.com/immocalc/property-projection/internal/calculation"
	"github.com/immocalc/property-projection/internal/domain"
	"github.com/immocalc/property-projection/internal/output"
	money "github.com/immocalc/property-projection/pkg/decimal"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func (a *app) newDepreciationCmd() *cobra.Command {
	var (
		cost, area, method string
		switchYear, years  int
	)
	cmd := &cobra.Command{
		Use:   "depreciation",
		Short: "Preview the building depreciation schedule of a new construction",
		RunE: func(cmd *cobra.Command, args []string) error {
			buildingCost, err := money.NewMoneyFromString(cost)
			if err != nil || !buildingCost.IsPositive() {
				return fmt.Errorf("invalid building cost %q", cost)
			}
			floorArea, err := money.NewMoneyFromString(area)
			if err != nil || floorArea.IsNegative() {
				return fmt.Errorf("invalid floor area %q", area)
			}
			m := domain.DepreciationMethod(method)
			switch m {
			case domain.DepreciationLinear, domain.DepreciationDeclining, domain.DepreciationDecliningBonus:
			default:
				return fmt.Errorf("%w %q (linear, declining, declining_bonus)", domain.ErrUnknownEnumValue, method)
			}
			if years < 1 || years > calculation.DepreciationScheduleYears {
				return fmt.Errorf("years must be between 1 and %d", calculation.DepreciationScheduleYears)
			}

			plan := domain.DepreciationPlan{Method: m, SwitchYear: switchYear, FloorAreaM2: floorArea.Decimal}
			w := cmd.OutOrStdout()
			if m == domain.DepreciationDecliningBonus && !calculation.BonusEligible(buildingCost.Decimal, plan.FloorAreaM2) {
				fmt.Fprintln(w, "Note: cost per m² above the §7b cap, no special depreciation")
			}
			fmt.Fprintf(w, "%4s %12s %12s %14s  %s\n", "Year", "Amount", "Bonus", "BookValue", "Rule")
			fmt.Fprintln(w, strings.Repeat("-", 64))
			total := decimal.Zero
			for _, e := range calculation.ScheduleFor(buildingCost.Decimal, plan, years) {
				total = total.Add(e.Total())
				fmt.Fprintf(w, "%4d %12s %12s %14s  %s\n", e.Year, e.Amount.StringFixed(2), e.Bonus.StringFixed(2), e.BookValue.StringFixed(2), e.Label)
			}
			fmt.Fprintf(w, "Total after %d years: %s\n", years, output.FormatCurrency(total))
			return nil
		},
	}
	cmd.Flags().StringVar(&cost, "building-cost", "500000", "building cost in euros")
	cmd.Flags().StringVar(&area, "floor-area", "150", "living area in m²")
	cmd.Flags().StringVar(&method, "method", string(domain.DepreciationDeclining), "linear, declining or declining_bonus")
	cmd.Flags().IntVar(&switchYear, "switch-year", 15, "year of the switch from declining to linear (0 = never)")
	cmd.Flags().IntVar(&years, "years", 20, "number of years to show")
	return cmd
}

func (a *app) newTaxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tax <income-a> [income-b]",
		Short: "Show the income tax of one person or of a couple under splitting",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			incomes := make([]decimal.Decimal, len(args))
			for i, raw := range args {
				v, err := money.NewMoneyFromString(raw)
				if err != nil {
					return fmt.Errorf("invalid income %q: %w", raw, err)
				}
				incomes[i] = v.Decimal
			}

			tc := calculation.NewIncomeTaxCalculator()
			w := cmd.OutOrStdout()
			for i, income := range incomes {
				fmt.Fprintf(w, "Person %c: income %s, tax %s, average rate %s, zone %s\n",
					'A'+i,
					output.FormatCurrency(income),
					output.FormatCurrency(tc.TaxFor(income)),
					output.FormatPercentage(tc.AverageRate(income)),
					tc.ZoneFor(income),
				)
			}
			if len(incomes) == 2 {
				joint := tc.JointTaxFor(incomes[0], incomes[1])
				separate := tc.TaxFor(incomes[0]).Add(tc.TaxFor(incomes[1]))
				fmt.Fprintf(w, "Joint assessment: %s (splitting advantage %s)\n",
					output.FormatCurrency(joint), output.FormatCurrency(separate.Sub(joint)))
			}
			return nil
		},
	}
}

func (a *app) newFormulasCmd() *cobra.Command {
	var listCategories bool
	cmd := &cobra.Command{
		Use:   "formulas [query]",
		Short: "List the calculation rules, optionally filtered by a search term",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if listCategories {
				for _, c := range output.FormulaCategories() {
					fmt.Fprintln(w, c)
				}
				return nil
			}
			query := strings.Join(args, " ")
			hits := output.SearchFormulas(query)
			if len(hits) == 0 {
				fmt.Fprintf(w, "No formulas match %q\n", query)
				return nil
			}
			category := ""
			for _, f := range hits {
				if f.Category != category {
					category = f.Category
					fmt.Fprintf(w, "\n%s\n%s\n", strings.ToUpper(category), strings.Repeat("=", len(category)))
				}
				fmt.Fprintf(w, "%s: %s\n    %s\n", f.Name, f.Description, f.Expression)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&listCategories, "categories", false, "list the formula categories only")
	return cmd
}
