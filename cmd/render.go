package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"invoiceportal/internal/billing"
	"invoiceportal/internal/document"
	"invoiceportal/internal/logger"
	"invoiceportal/pkg/models"
)

var renderCmd = &cobra.Command{
	Use:   "render [yaml-file]",
	Short: "Compute the invoice list view for a YAML document",
	Long: `Parse a YAML document and print the computed list view as JSON: one
record per invoice with its derived status and totals, plus the
totals-by-id lookup. Malformed or unsafe documents produce an empty
list, exactly as they would in the web portal.`,
	Example: `  # Render the full list view
  invoiceportal render invoices.yaml

  # Only open invoices, written to a file
  invoiceportal render invoices.yaml --status open -o views.json`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

// RenderOutput is the JSON output of the render command.
type RenderOutput struct {
	// Views holds one record per invoice after filtering, in document order.
	Views []models.InvoiceView `json:"views"`

	// Totals maps invoice ids (as strings) to their computed totals.
	Totals map[string]models.Totals `json:"totals"`

	// Filter is the active status filter token.
	Filter string `json:"filter"`

	// Metadata describes the processed input.
	Metadata RenderMetadata `json:"metadata"`
}

// RenderMetadata describes the rendering operation.
type RenderMetadata struct {
	FileName    string    `json:"file_name"`
	FileSize    int64     `json:"file_size_bytes"`
	InvoiceRows int       `json:"invoice_rows"`
	RenderedAt  time.Time `json:"rendered_at"`
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	renderCmd.Flags().String("status", "all", "Status filter (open, paid, overdue, all)")
}

func runRender(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("render")

	outputPath, _ := cmd.Flags().GetString("output")
	status, _ := cmd.Flags().GetString("status")
	yamlPath := args[0]

	raw, err := os.ReadFile(yamlPath)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	doc := document.Extract(document.Parse(raw))
	views, totalsByID := billing.BuildViews(doc)
	filtered := billing.FilterViews(views, status)

	log.Info().
		Str("file", yamlPath).
		Str("status", status).
		Int("invoices", len(views)).
		Int("after_filter", len(filtered)).
		Msg("Rendered list view")

	out := RenderOutput{
		Views:  filtered,
		Totals: totalsByID,
		Filter: status,
		Metadata: RenderMetadata{
			FileName:    yamlPath,
			FileSize:    int64(len(raw)),
			InvoiceRows: len(views),
			RenderedAt:  time.Now(),
		},
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	if outputPath == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(outputPath, data, 0644)
}
