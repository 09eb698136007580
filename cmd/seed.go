package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"invoiceportal/internal/logger"
	"invoiceportal/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Emit the demo YAML document",
	Long: `Print a ready-to-use demo document: one client, an open and a paid
invoice, line items, and a payment. Dates are placed relative to today,
so the open invoice is always current.`,
	Example: `  # Print to stdout
  invoiceportal seed

  # Write to a file and render it
  invoiceportal seed -o demo.yaml
  invoiceportal render demo.yaml`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("seed")

	outputPath, _ := cmd.Flags().GetString("output")

	data, err := seed.YAML(time.Now())
	if err != nil {
		return fmt.Errorf("failed to encode demo document: %w", err)
	}

	if outputPath == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write demo document: %w", err)
	}
	log.Info().Str("output", outputPath).Msg("Wrote demo document")
	return nil
}
