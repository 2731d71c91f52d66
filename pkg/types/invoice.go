package types

import "github.com/angelmondragon/applestore-backend/pkg/enums"

// InvoiceDateLayout is the millisecond UTC layout assigned to new invoices.
const InvoiceDateLayout = "2006-01-02T15:04:05.000Z"

// Invoice records one purchase. Product fields are a snapshot taken at
// purchase time and userEmail is not a reference to a user record.
type Invoice struct {
	ID          string              `json:"id"`
	ProductID   string              `json:"productId"`
	ProductName string              `json:"productName"`
	UserEmail   string              `json:"userEmail"`
	Date        string              `json:"date"`
	Status      enums.InvoiceStatus `json:"status"`
}

// NewInvoice is an invoice before the store assigns its id.
type NewInvoice struct {
	ProductID   string              `json:"productId"`
	ProductName string              `json:"productName"`
	UserEmail   string              `json:"userEmail"`
	Date        string              `json:"date"`
	Status      enums.InvoiceStatus `json:"status"`
}

// WithID completes the invoice with the supplied id.
func (n NewInvoice) WithID(id string) Invoice {
	return Invoice{
		ID:          id,
		ProductID:   n.ProductID,
		ProductName: n.ProductName,
		UserEmail:   n.UserEmail,
		Date:        n.Date,
		Status:      n.Status,
	}
}
