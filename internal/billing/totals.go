// Package billing computes per-invoice financial summaries, derives
// display statuses, and assembles the view records handed to the
// rendering layer. Everything here is a pure function of the extracted
// document; there is no shared state, so concurrent requests never
// interact.
package billing

import (
	"math"

	"invoiceportal/pkg/models"
)

// ComputeTotals computes the financial summary for one invoice from its
// matching line items and payments.
//
// Subtotal is the raw, unrounded sum of quantity times unit price; tax,
// total, paid, and due are rounded to 2 decimals after aggregation.
// The rounding asymmetry on subtotal is part of the display contract
// and is pinned by tests. Payments are summed without regard to their
// currency label; mixing currencies misstates paid (known limitation,
// conversion is out of scope).
func ComputeTotals(inv models.Invoice, items []models.LineItem, payments []models.Payment) models.Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Amount()
	}

	tax := round2(subtotal * inv.TaxRate)
	total := round2(subtotal + tax)

	var paid float64
	for _, p := range payments {
		paid += p.Amount
	}
	paid = round2(paid)

	return models.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
		Paid:     paid,
		Due:      round2(total - paid),
	}
}

// ItemsFor returns the line items joined to an invoice id, in document
// order.
func ItemsFor(items []models.LineItem, invoiceID int) []models.LineItem {
	var out []models.LineItem
	for _, item := range items {
		if item.InvoiceID == invoiceID {
			out = append(out, item)
		}
	}
	return out
}

// PaymentsFor returns the payments joined to an invoice id, in document
// order.
func PaymentsFor(payments []models.Payment, invoiceID int) []models.Payment {
	var out []models.Payment
	for _, p := range payments {
		if p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	return out
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
