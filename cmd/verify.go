package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/croplab/agrogen/internal/config"
	"github.com/croplab/agrogen/internal/verify"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Read the generated datasets back and report row counts",
	Long: `
Open the partitioned datasets a previous generate run wrote, count rows
partition by partition, and print the ground-truth defect counts when the
manifest is present.

This is an environment smoke test, not a validator: a read failure is
reported to the output stream and the command still exits successfully.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		verify.Run(cfg, os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
