// Package seed produces the demo document used by the seed command and
// the bundled sample: one paid and one open invoice for a single
// client, with dates placed relative to a reference day.
package seed

import (
	"time"

	"gopkg.in/yaml.v3"

	"invoiceportal/pkg/models"
)

const dateLayout = "2006-01-02"

// DemoDocument returns the demo dataset with issue and due dates
// positioned around today.
func DemoDocument(today time.Time) models.Document {
	return models.Document{
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
		Invoices: []models.Invoice{
			{
				ID:        1,
				Number:    "INV-1001",
				Currency:  "USD",
				IssueDate: today.AddDate(0, 0, -5).Format(dateLayout),
				DueDate:   today.AddDate(0, 0, 25).Format(dateLayout),
				Status:    "open",
				TaxRate:   0.07,
				Notes:     "Thank you for your business!",
			},
			{
				ID:        2,
				Number:    "INV-1000",
				Currency:  "USD",
				IssueDate: today.AddDate(0, 0, -40).Format(dateLayout),
				DueDate:   today.AddDate(0, 0, -10).Format(dateLayout),
				Status:    "paid",
				TaxRate:   0.07,
				Notes:     "Paid in full",
			},
		},
		Items: []models.LineItem{
			{InvoiceID: 1, Description: "Design work", Quantity: 10, UnitPrice: 80},
			{InvoiceID: 1, Description: "Development", Quantity: 20, UnitPrice: 120},
			{InvoiceID: 2, Description: "Initial retainer", Quantity: 1, UnitPrice: 5000},
		},
		Payments: []models.Payment{
			{InvoiceID: 2, Amount: 5350, Currency: "USD", Method: "seed", Reference: "paid"},
		},
	}
}

// YAML renders the demo document as a YAML payload ready to paste into
// the portal form.
func YAML(today time.Time) ([]byte, error) {
	return yaml.Marshal(DemoDocument(today))
}
