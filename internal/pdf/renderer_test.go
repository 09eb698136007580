package pdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoiceportal/internal/billing"
	"invoiceportal/internal/pdf"
	"invoiceportal/pkg/models"
)

func TestRenderProducesPDF(t *testing.T) {
	detail := &billing.InvoiceDetail{
		Client: models.Client{
			Name:         "Acme Corp",
			Email:        "acme@example.com",
			AddressLine1: "123 Market St",
			City:         "San Francisco",
			State:        "CA",
			PostalCode:   "94105",
			Country:      "US",
			TaxID:        "US-123456789",
		},
		View: models.InvoiceView{
			Invoice: models.Invoice{
				ID: 1, Number: "INV-1001", Currency: "USD",
				IssueDate: "2024-01-05", DueDate: "2024-02-04",
				Status: "open", TaxRate: 0.07, Notes: "Thank you!",
			},
			DerivedStatus: "open",
		},
		Items: []models.LineItem{
			{InvoiceID: 1, Description: "Design work", Quantity: 10, UnitPrice: 80},
			{InvoiceID: 1, Description: "Development", Quantity: 20, UnitPrice: 120},
		},
		Totals: models.Totals{Subtotal: 3200, Tax: 224, Total: 3424, Due: 3424},
	}

	data, err := pdf.Render(detail)
	require.NoError(t, err)
	require.Greater(t, len(data), 1000)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderSparseInvoice(t *testing.T) {
	detail := &billing.InvoiceDetail{
		View: models.InvoiceView{Invoice: models.Invoice{ID: 7}, DerivedStatus: "open"},
	}

	data, err := pdf.Render(detail)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
