package billing_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoiceportal/internal/billing"
	"invoiceportal/pkg/models"
)

func sampleDocument() models.Document {
	return models.Document{
		Client: models.Client{Name: "Acme Corp"},
		Invoices: []models.Invoice{
			{ID: 1, Number: "INV-1001", Currency: "USD", DueDate: "2024-02-04", Status: "open", TaxRate: 0.07},
			{ID: 2, Number: "INV-1000", Currency: "USD", Status: "paid", TaxRate: 0.07},
		},
		Items: []models.LineItem{
			{InvoiceID: 1, Description: "Design work", Quantity: 10, UnitPrice: 80},
			{InvoiceID: 1, Description: "Development", Quantity: 20, UnitPrice: 120},
			{InvoiceID: 2, Description: "Initial retainer", Quantity: 1, UnitPrice: 5000},
		},
		Payments: []models.Payment{
			{InvoiceID: 2, Amount: 5350, Currency: "USD"},
		},
	}
}

func TestBuildViews(t *testing.T) {
	views, totalsByID := billing.BuildViews(sampleDocument())

	require.Len(t, views, 2)
	assert.Equal(t, "INV-1001", views[0].Number)
	assert.Equal(t, "INV-1000", views[1].Number)
	assert.Equal(t, "open", views[0].DerivedStatus)
	assert.Equal(t, "paid", views[1].DerivedStatus)

	require.Contains(t, totalsByID, "1")
	require.Contains(t, totalsByID, "2")
	assert.InDelta(t, 3424.00, totalsByID["1"].Due, 1e-9)
	assert.InDelta(t, 0.00, totalsByID["2"].Due, 1e-9)
}

func TestBuildViewsDuplicateIDKeepsLastTotals(t *testing.T) {
	doc := models.Document{
		Invoices: []models.Invoice{
			{ID: 1, Number: "first", TaxRate: 0},
			{ID: 1, Number: "second", TaxRate: 0.5},
		},
		Items: []models.LineItem{{InvoiceID: 1, Quantity: 1, UnitPrice: 100}},
	}

	views, totalsByID := billing.BuildViews(doc)

	require.Len(t, views, 2)
	assert.InDelta(t, 150.00, totalsByID["1"].Total, 1e-9)
}

func TestDeriveStatusDefaultsToOpen(t *testing.T) {
	status := billing.DeriveStatus(models.Invoice{}, models.Totals{})
	assert.Equal(t, billing.StatusOpen, status)
}

func TestDeriveStatusKeepsStoredValue(t *testing.T) {
	cases := []struct {
		name    string
		invoice models.Invoice
		totals  models.Totals
		want    string
	}{
		{"paid stays paid", models.Invoice{Status: "paid"}, models.Totals{}, "paid"},
		{"free text passes through", models.Invoice{Status: "draft"}, models.Totals{}, "draft"},
		{"open with balance and due date", models.Invoice{Status: "open", DueDate: "2024-02-04"}, models.Totals{Due: 100}, "open"},
		{"open without due date", models.Invoice{Status: "open"}, models.Totals{Due: 100}, "open"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, billing.DeriveStatus(tc.invoice, tc.totals))
		})
	}
}

func TestFilterViews(t *testing.T) {
	views, _ := billing.BuildViews(sampleDocument())

	open := billing.FilterViews(views, billing.StatusOpen)
	require.Len(t, open, 1)
	assert.Equal(t, "INV-1001", open[0].Number)

	paid := billing.FilterViews(views, billing.StatusPaid)
	require.Len(t, paid, 1)
	assert.Equal(t, "INV-1000", paid[0].Number)

	assert.Empty(t, billing.FilterViews(views, billing.StatusOverdue))
}

func TestFilterViewsUnrecognizedTokenKeepsAll(t *testing.T) {
	views, _ := billing.BuildViews(sampleDocument())

	for _, token := range []string{billing.StatusAll, "", "bogus", "OPEN"} {
		kept := billing.FilterViews(views, token)
		require.Len(t, kept, 2, "token %q", token)
		assert.Equal(t, "INV-1001", kept[0].Number)
		assert.Equal(t, "INV-1000", kept[1].Number)
	}
}

func TestFilterViewsMatchesDerivedStatus(t *testing.T) {
	// A blank stored status derives to open, and the derived value alone
	// is enough to match the filter.
	doc := models.Document{Invoices: []models.Invoice{{ID: 1, Number: "INV-1"}}}
	views, _ := billing.BuildViews(doc)

	kept := billing.FilterViews(views, billing.StatusOpen)
	require.Len(t, kept, 1)
	assert.Equal(t, "INV-1", kept[0].Number)
}

func TestFindInvoice(t *testing.T) {
	detail, err := billing.FindInvoice(sampleDocument(), 1)
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", detail.Client.Name)
	assert.Equal(t, "INV-1001", detail.View.Number)
	require.Len(t, detail.Items, 2)
	assert.Empty(t, detail.Payments)
	assert.InDelta(t, 3424.00, detail.Totals.Total, 1e-9)
}

func TestFindInvoiceNotFound(t *testing.T) {
	detail, err := billing.FindInvoice(sampleDocument(), 999)
	assert.Nil(t, detail)
	require.Error(t, err)
	assert.True(t, errors.Is(err, billing.ErrInvoiceNotFound))

	var lookupErr *billing.LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, 999, lookupErr.InvoiceID)
}
