package main

import (
	"fmt"

	"github.com/aretw0/sboard/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the project for consistency",
	Long: `Reports malformed exposures, unknown placements, scene lengths that differ
from the sum of their panels, dangling layer links and unresolvable assets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openProject(cmd)
		if err != nil {
			return err
		}
		if err := validator.ValidateProject(p); err != nil {
			logger.Warn("validation failed", append(logAttrs(p), "issues", len(validator.ValidationErrors(err)))...)
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Project is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
