package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"invoiceportal/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "invoiceportal",
	Short: "Invoice Portal - stateless invoice rendering from YAML documents",
	Long: `Invoice Portal renders invoice lists, detail views, and printable PDF
exports from a YAML document supplied with every request. Nothing is
persisted: totals and statuses are recomputed from the submitted data
each time.

Run "invoiceportal serve" to start the web portal, or use the render,
export, and seed commands to work with documents offline.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.WithComponent("root")
		log.Info().
			Str("version", version).
			Msg("Invoice Portal executed")

		fmt.Println("Welcome to Invoice Portal!")
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
