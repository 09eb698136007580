package models

// Client is the billing profile carried inside a submitted document.
// No field is required; absent fields render blank.
type Client struct {
	Name         string `yaml:"name" json:"name"`
	Email        string `yaml:"email" json:"email"`
	AddressLine1 string `yaml:"address_line1" json:"address_line1"`
	AddressLine2 string `yaml:"address_line2,omitempty" json:"address_line2,omitempty"`
	City         string `yaml:"city" json:"city"`
	State        string `yaml:"state" json:"state"`
	PostalCode   string `yaml:"postal_code" json:"postal_code"`
	Country      string `yaml:"country" json:"country"`
	TaxID        string `yaml:"tax_id" json:"tax_id"`
}

// Invoice is one invoice header from a submitted document.
// ID is the join key to line items and payments. Dates are kept as the
// client supplied them; the portal never parses or validates them.
type Invoice struct {
	ID        int     `yaml:"id" json:"id"`
	Number    string  `yaml:"number" json:"number"`
	Currency  string  `yaml:"currency" json:"currency"`
	IssueDate string  `yaml:"issue_date" json:"issue_date"`
	DueDate   string  `yaml:"due_date" json:"due_date"`
	Status    string  `yaml:"status" json:"status"`
	TaxRate   float64 `yaml:"tax_rate" json:"tax_rate"`
	Notes     string  `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// LineItem is one billable line belonging to an invoice.
type LineItem struct {
	InvoiceID   int     `yaml:"invoice_id" json:"invoice_id"`
	Description string  `yaml:"description" json:"description"`
	Quantity    float64 `yaml:"quantity" json:"quantity"`
	UnitPrice   float64 `yaml:"unit_price" json:"unit_price"`
}

// Amount returns the line contribution to the invoice subtotal.
func (li LineItem) Amount() float64 {
	return li.Quantity * li.UnitPrice
}

// Payment is money received against an invoice. The currency label is
// carried through to display only; no conversion is performed.
type Payment struct {
	InvoiceID int     `yaml:"invoice_id" json:"invoice_id"`
	Amount    float64 `yaml:"amount" json:"amount"`
	Currency  string  `yaml:"currency" json:"currency"`
	Method    string  `yaml:"method" json:"method"`
	Reference string  `yaml:"reference" json:"reference"`
}

// Totals is the computed financial summary for one invoice. Subtotal is
// the raw sum of line amounts and is intentionally not rounded; every
// other figure is rounded to 2 decimals. Due is negative when overpaid.
type Totals struct {
	Subtotal float64 `yaml:"subtotal" json:"subtotal"`
	Tax      float64 `yaml:"tax" json:"tax"`
	Total    float64 `yaml:"total" json:"total"`
	Paid     float64 `yaml:"paid" json:"paid"`
	Due      float64 `yaml:"due" json:"due"`
}

// Document is the fully extracted, typed form of one submitted dataset.
// It lives only for the duration of a single request or command.
type Document struct {
	Client   Client     `yaml:"client" json:"client"`
	Invoices []Invoice  `yaml:"invoices" json:"invoices"`
	Items    []LineItem `yaml:"items" json:"items"`
	Payments []Payment  `yaml:"payments" json:"payments"`
}

// InvoiceView is the render-ready record for one invoice: the stored
// fields plus the per-request derived status and computed totals.
type InvoiceView struct {
	Invoice       `yaml:",inline"`
	DerivedStatus string `yaml:"derived_status" json:"derived_status"`
	Totals        Totals `yaml:"totals" json:"totals"`
}
