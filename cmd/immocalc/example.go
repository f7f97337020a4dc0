package main

import (
	"fmt"
	"os"

	"github.com/immocalc/property-projection/internal/config"
	"github.com/immocalc/property-projection/internal/output"
	"github.com/spf13/cobra"
)

func (a *app) newExampleCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "example [file]",
		Short: "Write an example configuration with one scenario of each kind",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "example_config.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			if _, err := os.Stat(filename); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", filename)
			}
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, filename); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Example configuration written to", filename)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
