// Package pdf renders the printable export for a single invoice using
// Maroto.
package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/samber/lo"

	"invoiceportal/internal/billing"
)

const baseHeight = 6

// Render produces the PDF bytes for one invoice detail bundle.
func Render(detail *billing.InvoiceDetail) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		WithBottomMargin(15).
		Build()

	m := maroto.New(cfg)
	view := detail.View
	currency := view.Currency

	title := fmt.Sprintf("Invoice %s", view.Number)
	m.AddRow(10, col.New(12).Add(text.New(title, props.Text{Size: 16, Style: fontstyle.Bold})))
	m.AddRows(row.New(3))

	// Bill To block alongside invoice metadata.
	left := []string{detail.Client.Name, detail.Client.AddressLine1, detail.Client.AddressLine2,
		cityLine(detail), detail.Client.Country, detail.Client.Email}
	if detail.Client.TaxID != "" {
		left = append(left, fmt.Sprintf("Tax ID: %s", detail.Client.TaxID))
	}
	left = lo.Compact(left)
	right := []string{
		fmt.Sprintf("Issue date: %s", view.IssueDate),
		fmt.Sprintf("Due date: %s", view.DueDate),
		fmt.Sprintf("Status: %s", view.DerivedStatus),
	}

	m.AddRow(baseHeight,
		col.New(6).Add(text.New("Bill To", props.Text{Style: fontstyle.Bold})),
		col.New(6).Add(text.New("Details", props.Text{Style: fontstyle.Bold})))
	for i := 0; i < len(left) || i < len(right); i++ {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		m.AddRow(5, col.New(6).Add(text.New(l)), col.New(6).Add(text.New(r)))
	}
	m.AddRows(row.New(4))

	// Line items table.
	header := props.Text{Style: fontstyle.Bold}
	amountHeader := props.Text{Style: fontstyle.Bold, Align: align.Right}
	m.AddRow(baseHeight,
		col.New(6).Add(text.New("Description", header)),
		col.New(2).Add(text.New("Qty", amountHeader)),
		col.New(2).Add(text.New("Unit price", amountHeader)),
		col.New(2).Add(text.New("Amount", amountHeader)))
	for _, item := range detail.Items {
		m.AddRow(baseHeight,
			col.New(6).Add(text.New(item.Description)),
			col.New(2).Add(text.New(trimNumber(item.Quantity), props.Text{Align: align.Right})),
			col.New(2).Add(text.New(money(currency, item.UnitPrice), props.Text{Align: align.Right})),
			col.New(2).Add(text.New(money(currency, item.Amount()), props.Text{Align: align.Right})))
	}
	m.AddRows(row.New(4))

	totals := detail.Totals
	addTotalRow(m, "Subtotal", money(currency, totals.Subtotal), false)
	addTotalRow(m, fmt.Sprintf("Tax (%.2f%%)", view.TaxRate*100), money(currency, totals.Tax), false)
	addTotalRow(m, "Total", money(currency, totals.Total), true)
	addTotalRow(m, "Paid", money(currency, totals.Paid), false)
	addTotalRow(m, "Due", money(currency, totals.Due), true)

	if view.Notes != "" {
		m.AddRows(row.New(4))
		m.AddRow(baseHeight, col.New(12).Add(text.New(view.Notes, props.Text{Style: fontstyle.Italic})))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generating invoice %s: %w", view.Number, err)
	}
	return doc.GetBytes(), nil
}

func addTotalRow(m core.Maroto, label, value string, bold bool) {
	labelProps := props.Text{Align: align.Right}
	valueProps := props.Text{Align: align.Right}
	if bold {
		labelProps.Style = fontstyle.Bold
		valueProps.Style = fontstyle.Bold
	}
	m.AddRow(5,
		col.New(8).Add(text.New(label, labelProps)),
		col.New(4).Add(text.New(value, valueProps)))
}

func cityLine(detail *billing.InvoiceDetail) string {
	c := detail.Client
	line := c.City
	if c.State != "" {
		if line != "" {
			line += ", "
		}
		line += c.State
	}
	if c.PostalCode != "" {
		if line != "" {
			line += " "
		}
		line += c.PostalCode
	}
	return line
}

// money formats an amount with its currency label, always at 2
// decimals.
func money(currency string, amount float64) string {
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%s %.2f", currency, amount)
}

// trimNumber renders a quantity without a decimal part when it is
// integral.
func trimNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
