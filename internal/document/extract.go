package document

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"invoiceportal/pkg/models"
)

// Extract pulls the four entity collections out of a parsed mapping,
// coercing every field to its typed default when missing or malformed.
// A non-mapping client becomes an empty profile, non-sequence
// collections become empty slices, and non-mapping elements are
// skipped. Extraction never fails; downstream code operates on fully
// typed entities with no missing-key branching.
//
// Id-like fields are normalized to a canonical int here, so a line item
// keyed "1" joins an invoice with id 1. This deliberately diverges from
// join-by-raw-equality, which silently dropped rows on type mismatch.
func Extract(doc map[string]any) models.Document {
	out := models.Document{
		Invoices: []models.Invoice{},
		Items:    []models.LineItem{},
		Payments: []models.Payment{},
	}

	if client, ok := asMapping(doc["client"]); ok {
		out.Client = extractClient(client)
	}
	for _, el := range asSequence(doc["invoices"]) {
		if m, ok := asMapping(el); ok {
			out.Invoices = append(out.Invoices, extractInvoice(m))
		}
	}
	for _, el := range asSequence(doc["items"]) {
		if m, ok := asMapping(el); ok {
			out.Items = append(out.Items, extractLineItem(m))
		}
	}
	for _, el := range asSequence(doc["payments"]) {
		if m, ok := asMapping(el); ok {
			out.Payments = append(out.Payments, extractPayment(m))
		}
	}
	return out
}

func extractClient(m map[string]any) models.Client {
	return models.Client{
		Name:         textField(m, "name"),
		Email:        textField(m, "email"),
		AddressLine1: textField(m, "address_line1"),
		AddressLine2: textField(m, "address_line2"),
		City:         textField(m, "city"),
		State:        textField(m, "state"),
		PostalCode:   textField(m, "postal_code"),
		Country:      textField(m, "country"),
		TaxID:        textField(m, "tax_id"),
	}
}

func extractInvoice(m map[string]any) models.Invoice {
	return models.Invoice{
		ID:        idField(m, "id"),
		Number:    textField(m, "number"),
		Currency:  textField(m, "currency"),
		IssueDate: textField(m, "issue_date"),
		DueDate:   textField(m, "due_date"),
		Status:    textField(m, "status"),
		TaxRate:   numberField(m, "tax_rate"),
		Notes:     textField(m, "notes"),
	}
}

func extractLineItem(m map[string]any) models.LineItem {
	return models.LineItem{
		InvoiceID:   idField(m, "invoice_id"),
		Description: textField(m, "description"),
		Quantity:    numberField(m, "quantity"),
		UnitPrice:   numberField(m, "unit_price"),
	}
}

func extractPayment(m map[string]any) models.Payment {
	return models.Payment{
		InvoiceID: idField(m, "invoice_id"),
		Amount:    numberField(m, "amount"),
		Currency:  textField(m, "currency"),
		Method:    textField(m, "method"),
		Reference: textField(m, "reference"),
	}
}

func asMapping(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asSequence(v any) []any {
	s, _ := v.([]any)
	return s
}

// textField coerces a mapping value to a display string, "" when
// missing or unrenderable. Unquoted YAML dates decode as time.Time and
// come back in ISO form.
func textField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case time.Time:
		return v.Format("2006-01-02")
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(v)
	default:
		return ""
	}
}

// numberField coerces a mapping value to a float, 0 when missing or
// non-numeric.
func numberField(m map[string]any, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
		return 0
	default:
		return 0
	}
}

// idField normalizes an id-like value to a canonical int. Integral
// floats and numeric strings map to the same int as a plain integer;
// anything else is 0, which only ever joins rows that are themselves
// unkeyed.
func idField(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		if v == math.Trunc(v) {
			return int(v)
		}
		return 0
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
		return 0
	default:
		return 0
	}
}
