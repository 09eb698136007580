package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"invoiceportal/internal/billing"
	"invoiceportal/internal/document"
	"invoiceportal/internal/logger"
	"invoiceportal/internal/pdf"
)

var exportCmd = &cobra.Command{
	Use:   "export [yaml-file]",
	Short: "Export one invoice from a YAML document as a PDF",
	Long: `Look up a single invoice in a YAML document and write its printable
PDF export, with the same layout the web portal serves. The command
fails when the requested invoice id does not exist in the document.`,
	Example: `  # Export invoice 1 to invoice-1.pdf
  invoiceportal export invoices.yaml --invoice 1

  # Export to an explicit path
  invoiceportal export invoices.yaml --invoice 2 -o statement.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().IntP("invoice", "i", 0, "Invoice id to export (required)")
	exportCmd.Flags().StringP("output", "o", "", "Output PDF path (default: invoice-<number>.pdf)")
	exportCmd.MarkFlagRequired("invoice")
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("export")

	invoiceID, _ := cmd.Flags().GetInt("invoice")
	outputPath, _ := cmd.Flags().GetString("output")
	yamlPath := args[0]

	raw, err := os.ReadFile(yamlPath)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	doc := document.Extract(document.Parse(raw))
	detail, err := billing.FindInvoice(doc, invoiceID)
	if err != nil {
		return err
	}

	data, err := pdf.Render(detail)
	if err != nil {
		return err
	}

	if outputPath == "" {
		name := detail.View.Number
		if name == "" {
			name = fmt.Sprintf("%d", invoiceID)
		}
		outputPath = fmt.Sprintf("invoice-%s.pdf", name)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	log.Info().
		Str("file", yamlPath).
		Int("invoice_id", invoiceID).
		Str("output", outputPath).
		Int("bytes", len(data)).
		Msg("Exported invoice PDF")
	fmt.Printf("Wrote %s\n", outputPath)
	return nil
}
