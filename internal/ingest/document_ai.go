// Package ingest converts scanned invoices into portal documents using
// Google Cloud Document AI's invoice parser. The resulting document can
// be saved as YAML and pasted straight into the portal form.
//
// Required environment variables:
//   - GOOGLE_APPLICATION_CREDENTIALS: Path to service account JSON file, OR
//   - GOOGLE_CREDENTIALS: Inline JSON credentials string
//   - GOOGLE_CLOUD_PROJECT: Google Cloud project ID
//   - GOOGLE_CLOUD_LOCATION: Processing location (e.g., "us", "eu")
//   - DOCUMENT_AI_PROCESSOR_ID: Document AI invoice processor ID
package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"invoiceportal/internal/billing"
	"invoiceportal/internal/config"
	"invoiceportal/internal/logger"
	"invoiceportal/pkg/models"
)

// MaxDocumentSizeBytes is the maximum document size for synchronous
// Document AI processing (20MB).
const MaxDocumentSizeBytes = 20 * 1024 * 1024

// Importer converts a scanned invoice into a single-invoice portal document.
type Importer interface {
	// ImportInvoice extracts one invoice from a scanned PDF and returns it
	// as a portal document: the billed party as client, one invoice header
	// with id 1, and its line items. Payments start empty.
	ImportInvoice(ctx context.Context, pdfData io.Reader) (*models.Document, error)
}

// DocumentAIImporter implements Importer using Google Document AI.
type DocumentAIImporter struct {
	client *documentai.DocumentProcessorClient
	config config.DocumentAI
	log    zerolog.Logger
}

// NewDocumentAIImporter creates an importer with credentials from the
// environment. See the package documentation for the expected variables.
func NewDocumentAIImporter(ctx context.Context, cfg config.DocumentAI) (Importer, error) {
	const op = "NewDocumentAIImporter"

	if cfg.ProjectID == "" {
		return nil, wrapImportError(op, ErrInvalidConfiguration, "GOOGLE_CLOUD_PROJECT is required")
	}
	if cfg.Location == "" {
		cfg.Location = "us"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	var clientOptions []option.ClientOption
	if cfg.Location != "us" {
		endpoint := fmt.Sprintf("%s-documentai.googleapis.com:443", cfg.Location)
		clientOptions = append(clientOptions, option.WithEndpoint(endpoint))
	}
	if credJSON := os.Getenv("GOOGLE_CREDENTIALS"); credJSON != "" {
		clientOptions = append(clientOptions, option.WithCredentialsJSON([]byte(credJSON)))
	} else if credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credFile != "" {
		clientOptions = append(clientOptions, option.WithCredentialsFile(credFile))
	}

	client, err := documentai.NewDocumentProcessorClient(ctx, clientOptions...)
	if err != nil {
		if len(clientOptions) == 0 {
			return nil, wrapImportError(op, ErrMissingCredentials, "no credentials found in environment")
		}
		return nil, wrapImportError(op, err, fmt.Sprintf("failed to create Document AI client for location: %s", cfg.Location))
	}

	return &DocumentAIImporter{
		client: client,
		config: cfg,
		log:    logger.WithComponent("document-ai"),
	}, nil
}

// ImportInvoice extracts one invoice from a scanned PDF.
func (p *DocumentAIImporter) ImportInvoice(ctx context.Context, pdfData io.Reader) (*models.Document, error) {
	const op = "ImportInvoice"

	pdfBytes, err := io.ReadAll(pdfData)
	if err != nil {
		return nil, wrapImportError(op, err, "failed to read PDF data")
	}
	if len(pdfBytes) > MaxDocumentSizeBytes {
		return nil, wrapImportError(op, ErrDocumentTooLarge, fmt.Sprintf("file size: %d bytes", len(pdfBytes)))
	}
	if len(pdfBytes) < 4 || string(pdfBytes[:4]) != "%PDF" {
		return nil, wrapImportError(op, ErrInvalidPDF, "missing PDF header")
	}

	processCtx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	req := &documentaipb.ProcessRequest{
		Name: p.processorName(),
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  pdfBytes,
				MimeType: "application/pdf",
			},
		},
	}

	resp, err := p.client.ProcessDocument(processCtx, req)
	if err != nil {
		return nil, p.handleProcessingError(op, err)
	}
	if resp.Document == nil {
		return nil, wrapImportError(op, ErrProcessingFailed, "no document in response")
	}

	doc := p.extractDocument(resp.Document)
	p.log.Info().
		Str("invoice_number", doc.Invoices[0].Number).
		Str("currency", doc.Invoices[0].Currency).
		Int("line_items", len(doc.Items)).
		Msg("Document AI import completed")
	return doc, nil
}

// processorName constructs the full processor resource name.
func (p *DocumentAIImporter) processorName() string {
	if p.config.ProcessorVersion != "" {
		return fmt.Sprintf("projects/%s/locations/%s/processors/%s/processorVersions/%s",
			p.config.ProjectID, p.config.Location, p.config.ProcessorID, p.config.ProcessorVersion)
	}
	return fmt.Sprintf("projects/%s/locations/%s/processors/%s",
		p.config.ProjectID, p.config.Location, p.config.ProcessorID)
}

// handleProcessingError converts Document AI errors to import errors.
func (p *DocumentAIImporter) handleProcessingError(op string, err error) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "PERMISSION_DENIED"):
		return wrapImportError(op, ErrInvalidCredentials, "insufficient permissions for Document AI")
	case strings.Contains(errStr, "QUOTA_EXCEEDED"):
		return wrapImportError(op, ErrQuotaExceeded, "Document AI API quota exceeded")
	case strings.Contains(errStr, "NOT_FOUND"):
		return wrapImportError(op, ErrProcessorNotFound, fmt.Sprintf("processor not found: %s", p.config.ProcessorID))
	case strings.Contains(errStr, "INVALID_ARGUMENT"):
		return wrapImportError(op, ErrInvalidPDF, "document format not supported or corrupted")
	case strings.Contains(errStr, "DeadlineExceeded") || strings.Contains(errStr, "context deadline exceeded"):
		return wrapImportError(op, context.DeadlineExceeded, "processing timeout")
	case strings.Contains(errStr, "Canceled") || strings.Contains(errStr, "context canceled"):
		return wrapImportError(op, ErrContextCanceled, "processing was canceled")
	default:
		return wrapImportError(op, ErrProcessingFailed, fmt.Sprintf("Document AI error: %v", err))
	}
}

// extractDocument maps Document AI entities onto a portal document with
// a single invoice. Extraction is best-effort: fields Document AI does
// not recognize stay at their zero values, matching how the portal
// treats missing fields everywhere else.
func (p *DocumentAIImporter) extractDocument(doc *documentaipb.Document) *models.Document {
	inv := models.Invoice{ID: 1, Status: billing.StatusOpen}
	client := models.Client{}
	var items []models.LineItem
	var netAmount, taxAmount float64

	for _, entity := range doc.Entities {
		value := strings.TrimSpace(entity.MentionText)

		p.log.Debug().
			Str("entity_type", entity.Type).
			Str("value", value).
			Float32("confidence", entity.Confidence).
			Msg("Processing Document AI entity")

		switch entity.Type {
		case "invoice_id", "invoice_number":
			inv.Number = value
		case "receiver_name", "buyer_name", "customer_name":
			client.Name = value
		case "receiver_email", "buyer_email":
			client.Email = value
		case "receiver_address", "buyer_address":
			client.AddressLine1 = strings.ReplaceAll(value, "\n", ", ")
		case "receiver_tax_id", "buyer_tax_id":
			client.TaxID = value
		case "invoice_date":
			inv.IssueDate = p.extractDate(entity)
		case "due_date":
			inv.DueDate = p.extractDate(entity)
		case "currency":
			inv.Currency = strings.ToUpper(value)
		case "net_amount", "subtotal_amount":
			netAmount = p.extractMoneyValue(entity)
		case "total_tax_amount", "vat_amount":
			taxAmount = p.extractMoneyValue(entity)
		case "line_item":
			if item, ok := p.extractLineItem(entity); ok {
				items = append(items, item)
			}
		}
	}

	// The portal stores a rate, not a tax amount; recover it from the
	// extracted net and tax figures when both are present.
	if netAmount > 0 && taxAmount > 0 {
		inv.TaxRate = round4(taxAmount / netAmount)
	}

	return &models.Document{
		Client:   client,
		Invoices: []models.Invoice{inv},
		Items:    items,
		Payments: []models.Payment{},
	}
}

// extractLineItem builds a line item from a line_item entity's
// properties. Items without a description and amount are dropped.
func (p *DocumentAIImporter) extractLineItem(entity *documentaipb.Document_Entity) (models.LineItem, bool) {
	item := models.LineItem{InvoiceID: 1, Quantity: 1}
	var amount float64

	for _, prop := range entity.Properties {
		value := strings.TrimSpace(prop.MentionText)
		switch prop.Type {
		case "line_item/description":
			item.Description = value
		case "line_item/quantity":
			if q, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64); err == nil && q > 0 {
				item.Quantity = q
			}
		case "line_item/unit_price":
			item.UnitPrice = p.extractMoneyValue(prop)
		case "line_item/amount":
			amount = p.extractMoneyValue(prop)
		}
	}

	// Fall back to the line amount when no unit price was recognized.
	if item.UnitPrice == 0 && amount > 0 && item.Quantity > 0 {
		item.UnitPrice = amount / item.Quantity
	}
	if item.Description == "" && item.UnitPrice == 0 {
		return models.LineItem{}, false
	}
	return item, true
}

// extractDate returns the normalized date in the portal's ISO display
// form, or the raw mention text when no normalized value is available.
func (p *DocumentAIImporter) extractDate(entity *documentaipb.Document_Entity) string {
	if entity.NormalizedValue != nil {
		if dateValue := entity.NormalizedValue.GetDateValue(); dateValue != nil {
			return fmt.Sprintf("%04d-%02d-%02d", dateValue.Year, dateValue.Month, dateValue.Day)
		}
	}
	return strings.TrimSpace(entity.MentionText)
}

// extractMoneyValue converts a monetary entity to a float amount,
// preferring the normalized value over the mention text.
func (p *DocumentAIImporter) extractMoneyValue(entity *documentaipb.Document_Entity) float64 {
	if entity.NormalizedValue != nil {
		if moneyValue := entity.NormalizedValue.GetMoneyValue(); moneyValue != nil {
			return float64(moneyValue.Units) + float64(moneyValue.Nanos)/1e9
		}
	}

	cleaned := strings.TrimSpace(entity.MentionText)
	for _, symbol := range []string{" ", "€", "$", "EUR", "USD"} {
		cleaned = strings.ReplaceAll(cleaned, symbol, "")
	}
	// Decimal comma (7.303,08) becomes 7303.08.
	if strings.Contains(cleaned, ",") {
		if strings.Contains(cleaned, ".") {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		p.log.Warn().
			Str("raw_value", entity.MentionText).
			Msg("Failed to parse monetary value")
		return 0
	}
	return amount
}

func round4(x float64) float64 {
	return float64(int64(x*10000+0.5)) / 10000
}
