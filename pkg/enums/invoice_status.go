package enums

import "fmt"

// InvoiceStatus tracks where a recorded purchase sits in fulfilment.
type InvoiceStatus string

const (
	InvoiceStatusPaid     InvoiceStatus = "Paid"
	InvoiceStatusPending  InvoiceStatus = "Pending"
	InvoiceStatusShipped  InvoiceStatus = "Shipped"
	InvoiceStatusRefunded InvoiceStatus = "Refunded"
)

var validInvoiceStatuses = []InvoiceStatus{
	InvoiceStatusPaid,
	InvoiceStatusPending,
	InvoiceStatusShipped,
	InvoiceStatusRefunded,
}

// InvoiceStatuses returns the closed set of statuses in display order.
func InvoiceStatuses() []InvoiceStatus {
	out := make([]InvoiceStatus, len(validInvoiceStatuses))
	copy(out, validInvoiceStatuses)
	return out
}

// String implements fmt.Stringer.
func (s InvoiceStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known InvoiceStatus.
func (s InvoiceStatus) IsValid() bool {
	for _, candidate := range validInvoiceStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseInvoiceStatus converts raw input into an InvoiceStatus.
func ParseInvoiceStatus(value string) (InvoiceStatus, error) {
	for _, candidate := range validInvoiceStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid invoice status %q", value)
}
