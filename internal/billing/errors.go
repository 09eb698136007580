package billing

import (
	"errors"
	"fmt"
)

// ErrInvoiceNotFound is returned when a detail or export view targets
// an invoice id with no matching entry in the submitted document. It is
// the only error the core surfaces; partial or malformed entity data
// degrades to zero values instead of failing.
var ErrInvoiceNotFound = errors.New("invoice not found")

// LookupError wraps ErrInvoiceNotFound with the id that missed, for
// request logging.
type LookupError struct {
	InvoiceID int
	Err       error
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	return fmt.Sprintf("billing: invoice %d: %v", e.InvoiceID, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *LookupError) Unwrap() error {
	return e.Err
}
