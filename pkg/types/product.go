package types

// Product is a catalog entry.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description,omitempty"`
}

// Purchase is the input to recording a purchase.
type Purchase struct {
	Product       Product
	CustomerName  string
	CustomerEmail string
}

// PurchaseResult holds the records written by a successful purchase.
type PurchaseResult struct {
	Invoice Invoice `json:"invoice"`
	User    User    `json:"user"`
}
