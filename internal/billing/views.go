package billing

import (
	"strconv"

	"github.com/samber/lo"

	"invoiceportal/pkg/models"
)

// InvoiceDetail bundles everything the detail and export views render
// for a single invoice.
type InvoiceDetail struct {
	Client   models.Client      `json:"client"`
	View     models.InvoiceView `json:"invoice"`
	Items    []models.LineItem  `json:"items"`
	Payments []models.Payment   `json:"payments"`
	Totals   models.Totals      `json:"totals"`
}

// BuildViews assembles one view record per invoice, in document order,
// along with a totals lookup keyed by the invoice id's decimal string.
// When a document repeats an invoice id, each occurrence still gets its
// own view record but the lookup keeps only the last occurrence's
// totals.
func BuildViews(doc models.Document) ([]models.InvoiceView, map[string]models.Totals) {
	views := make([]models.InvoiceView, 0, len(doc.Invoices))
	totalsByID := make(map[string]models.Totals, len(doc.Invoices))

	for _, inv := range doc.Invoices {
		totals := ComputeTotals(inv, ItemsFor(doc.Items, inv.ID), PaymentsFor(doc.Payments, inv.ID))
		views = append(views, models.InvoiceView{
			Invoice:       inv,
			DerivedStatus: DeriveStatus(inv, totals),
			Totals:        totals,
		})
		totalsByID[strconv.Itoa(inv.ID)] = totals
	}
	return views, totalsByID
}

// FilterViews keeps the invoices whose stored or derived status matches
// the filter token. Tokens other than open, paid, and overdue
// (including "all", the empty string, and anything unrecognized) keep
// the full set. Relative order is always preserved.
func FilterViews(views []models.InvoiceView, status string) []models.InvoiceView {
	switch status {
	case StatusOpen, StatusPaid, StatusOverdue:
		return lo.Filter(views, func(v models.InvoiceView, _ int) bool {
			return v.Status == status || v.DerivedStatus == status
		})
	default:
		return views
	}
}

// FindInvoice looks up a single invoice by exact id and assembles its
// detail bundle. It returns a LookupError wrapping ErrInvoiceNotFound
// when no invoice matches; it never substitutes an empty view.
func FindInvoice(doc models.Document, invoiceID int) (*InvoiceDetail, error) {
	for _, inv := range doc.Invoices {
		if inv.ID != invoiceID {
			continue
		}
		items := ItemsFor(doc.Items, inv.ID)
		payments := PaymentsFor(doc.Payments, inv.ID)
		totals := ComputeTotals(inv, items, payments)
		return &InvoiceDetail{
			Client: doc.Client,
			View: models.InvoiceView{
				Invoice:       inv,
				DerivedStatus: DeriveStatus(inv, totals),
				Totals:        totals,
			},
			Items:    items,
			Payments: payments,
			Totals:   totals,
		}, nil
	}
	return nil, &LookupError{InvoiceID: invoiceID, Err: ErrInvoiceNotFound}
}
