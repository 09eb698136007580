package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"invoiceportal/internal/config"
	"invoiceportal/internal/ingest"
	"invoiceportal/internal/logger"
)

var importCmd = &cobra.Command{
	Use:   "import [pdf-file]",
	Short: "Convert a scanned invoice PDF into a portal YAML document",
	Long: `Process a scanned invoice with Google Document AI's invoice parser and
emit the result as a portal YAML document: the billed party as client,
one invoice header, and its line items. The output can be pasted
straight into the portal form or fed to the render and export commands.

Required environment variables:
  GOOGLE_APPLICATION_CREDENTIALS - Path to service account JSON file, OR
  GOOGLE_CREDENTIALS - Inline JSON credentials string
  GOOGLE_CLOUD_PROJECT - Your Google Cloud project ID
  GOOGLE_CLOUD_LOCATION - Processing location (us, eu, etc.)
  DOCUMENT_AI_PROCESSOR_ID - Your Document AI invoice processor ID`,
	Example: `  # Convert a scan to YAML on stdout
  invoiceportal import scan.pdf

  # Save the document and render it
  invoiceportal import scan.pdf -o imported.yaml
  invoiceportal render imported.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringP("output", "o", "", "Output YAML path (default: stdout)")
}

func runImport(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("import")

	outputPath, _ := cmd.Flags().GetString("output")
	pdfPath := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.DocumentAI.ProcessorID == "" {
		return fmt.Errorf("DOCUMENT_AI_PROCESSOR_ID is required for import")
	}

	importer, err := ingest.NewDocumentAIImporter(cmd.Context(), cfg.DocumentAI)
	if err != nil {
		if errors.Is(err, ingest.ErrMissingCredentials) {
			return fmt.Errorf("set GOOGLE_APPLICATION_CREDENTIALS or GOOGLE_CREDENTIALS: %w", err)
		}
		return err
	}

	pdfFile, err := os.Open(pdfPath)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	defer pdfFile.Close()

	doc, err := importer.ImportInvoice(cmd.Context(), pdfFile)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	log.Info().
		Str("file", pdfPath).
		Str("invoice_number", doc.Invoices[0].Number).
		Int("line_items", len(doc.Items)).
		Msg("Imported scanned invoice")

	if outputPath == "" {
		fmt.Print(string(data))
		return nil
	}
	return os.WriteFile(outputPath, data, 0644)
}
