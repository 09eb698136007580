package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoiceportal/internal/billing"
	"invoiceportal/pkg/models"
)

func sampleInvoice() models.Invoice {
	return models.Invoice{ID: 1, Number: "INV-1001", Currency: "USD", TaxRate: 0.07}
}

func sampleItems() []models.LineItem {
	return []models.LineItem{
		{InvoiceID: 1, Description: "Design work", Quantity: 10, UnitPrice: 80},
		{InvoiceID: 1, Description: "Development", Quantity: 20, UnitPrice: 120},
	}
}

func TestComputeTotals(t *testing.T) {
	totals := billing.ComputeTotals(sampleInvoice(), sampleItems(), nil)

	assert.InDelta(t, 3200.00, totals.Subtotal, 1e-9)
	assert.InDelta(t, 224.00, totals.Tax, 1e-9)
	assert.InDelta(t, 3424.00, totals.Total, 1e-9)
	assert.InDelta(t, 0.00, totals.Paid, 1e-9)
	assert.InDelta(t, 3424.00, totals.Due, 1e-9)
}

func TestComputeTotalsFullyPaid(t *testing.T) {
	payments := []models.Payment{{InvoiceID: 1, Amount: 3424, Currency: "USD"}}
	totals := billing.ComputeTotals(sampleInvoice(), sampleItems(), payments)

	assert.InDelta(t, 3424.00, totals.Paid, 1e-9)
	assert.InDelta(t, 0.00, totals.Due, 1e-9)
}

func TestComputeTotalsOverpaid(t *testing.T) {
	payments := []models.Payment{
		{InvoiceID: 1, Amount: 3000},
		{InvoiceID: 1, Amount: 1000},
	}
	totals := billing.ComputeTotals(sampleInvoice(), sampleItems(), payments)

	assert.InDelta(t, 4000.00, totals.Paid, 1e-9)
	assert.InDelta(t, -576.00, totals.Due, 1e-9)
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := billing.ComputeTotals(models.Invoice{ID: 1}, nil, nil)
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Tax)
	assert.Zero(t, totals.Total)
	assert.Zero(t, totals.Paid)
	assert.Zero(t, totals.Due)
}

// Subtotal keeps its full precision while every other figure is rounded
// to 2 decimals.
func TestComputeTotalsSubtotalStaysUnrounded(t *testing.T) {
	items := []models.LineItem{{InvoiceID: 1, Quantity: 3, UnitPrice: 1.111}}
	totals := billing.ComputeTotals(models.Invoice{ID: 1}, items, nil)

	assert.InDelta(t, 3.333, totals.Subtotal, 1e-9)
	assert.InDelta(t, 3.33, totals.Total, 1e-9)
}

func TestComputeTotalsInvariants(t *testing.T) {
	invoices := []models.Invoice{
		{ID: 1, TaxRate: 0.07},
		{ID: 1, TaxRate: 0.19},
		{ID: 1, TaxRate: 0},
	}
	items := []models.LineItem{
		{InvoiceID: 1, Quantity: 3.5, UnitPrice: 19.99},
		{InvoiceID: 1, Quantity: 1, UnitPrice: 0.01},
	}
	payments := []models.Payment{{InvoiceID: 1, Amount: 12.34}}

	for _, inv := range invoices {
		totals := billing.ComputeTotals(inv, items, payments)
		assert.InDelta(t, totals.Subtotal+totals.Tax, totals.Total, 0.005, "total = subtotal + tax")
		assert.InDelta(t, totals.Total-totals.Paid, totals.Due, 0.005, "due = total - paid")
	}
}

func TestComputeTotalsDeterministic(t *testing.T) {
	first := billing.ComputeTotals(sampleInvoice(), sampleItems(), nil)
	second := billing.ComputeTotals(sampleInvoice(), sampleItems(), nil)
	assert.Equal(t, first, second)
}

func TestItemsAndPaymentsJoinByID(t *testing.T) {
	items := []models.LineItem{
		{InvoiceID: 1, Description: "a"},
		{InvoiceID: 2, Description: "b"},
		{InvoiceID: 1, Description: "c"},
	}
	payments := []models.Payment{
		{InvoiceID: 2, Amount: 5},
		{InvoiceID: 1, Amount: 7},
	}

	matched := billing.ItemsFor(items, 1)
	require.Len(t, matched, 2)
	assert.Equal(t, "a", matched[0].Description)
	assert.Equal(t, "c", matched[1].Description)

	require.Len(t, billing.PaymentsFor(payments, 1), 1)
	assert.Empty(t, billing.ItemsFor(items, 99))
}
