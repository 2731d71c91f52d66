// Package seed holds the default storefront datasets used when nothing
// has been persisted yet.
package seed

import (
	"github.com/angelmondragon/applestore-backend/pkg/enums"
	"github.com/angelmondragon/applestore-backend/pkg/types"
)

// Dataset is a full set of store collections.
type Dataset struct {
	Users    []types.User
	Invoices []types.Invoice
}

// Default returns a fresh copy of the default dataset.
func Default() Dataset {
	return Dataset{Users: Users(), Invoices: Invoices()}
}

// Empty returns a dataset with no records.
func Empty() Dataset {
	return Dataset{Users: []types.User{}, Invoices: []types.Invoice{}}
}

func Users() []types.User {
	return []types.User{
		{ID: "1", Name: "Alice Johnson", Email: "alice@example.com", ItemsPurchased: 3},
		{ID: "2", Name: "Bob Smith", Email: "bob.smith@example.com", ItemsPurchased: 1},
		{ID: "3", Name: "Carol Williams", Email: "carol.w@example.com", ItemsPurchased: 5},
		{ID: "4", Name: "David Brown", Email: "david.brown@example.com", ItemsPurchased: 2},
		{ID: "5", Name: "Eve Davis", Email: "eve.davis@example.com", ItemsPurchased: 0},
		{ID: "6", Name: "Frank Miller", Email: "frank.m@example.com", ItemsPurchased: 4},
		{ID: "7", Name: "Grace Lee", Email: "grace.lee@example.com", ItemsPurchased: 2},
		{ID: "8", Name: "Henry Wilson", Email: "henry.wilson@example.com", ItemsPurchased: 7},
		{ID: "9", Name: "Ivy Taylor", Email: "ivy.t@example.com", ItemsPurchased: 1},
		{ID: "10", Name: "Jack Anderson", Email: "jack.a@example.com", ItemsPurchased: 3},
	}
}

// Invoices are ordered newest first.
func Invoices() []types.Invoice {
	return []types.Invoice{
		{ID: "INV-2025-012", ProductID: "1", ProductName: "iPhone 16 Pro", UserEmail: "alice@example.com", Date: "2025-01-28T10:30:00Z", Status: enums.InvoiceStatusShipped},
		{ID: "INV-2025-011", ProductID: "2", ProductName: `MacBook Pro 14"`, UserEmail: "bob.smith@example.com", Date: "2025-01-27T14:00:00Z", Status: enums.InvoiceStatusPaid},
		{ID: "INV-2025-010", ProductID: "1", ProductName: "iPhone 16 Pro", UserEmail: "carol.w@example.com", Date: "2025-01-26T09:15:00Z", Status: enums.InvoiceStatusPaid},
		{ID: "INV-2025-009", ProductID: "5", ProductName: "AirPods Pro", UserEmail: "david.brown@example.com", Date: "2025-01-25T16:45:00Z", Status: enums.InvoiceStatusShipped},
		{ID: "INV-2025-008", ProductID: "3", ProductName: "iPad Pro", UserEmail: "eve.davis@example.com", Date: "2025-01-24T11:20:00Z", Status: enums.InvoiceStatusPending},
		{ID: "INV-2025-007", ProductID: "1", ProductName: "iPhone 16 Pro", UserEmail: "frank.m@example.com", Date: "2025-01-23T08:00:00Z", Status: enums.InvoiceStatusPaid},
		{ID: "INV-2025-006", ProductID: "4", ProductName: "Apple Watch Ultra 2", UserEmail: "grace.lee@example.com", Date: "2025-01-22T13:30:00Z", Status: enums.InvoiceStatusShipped},
		{ID: "INV-2025-005", ProductID: "2", ProductName: `MacBook Pro 14"`, UserEmail: "henry.wilson@example.com", Date: "2025-01-21T10:00:00Z", Status: enums.InvoiceStatusPaid},
		{ID: "INV-2025-004", ProductID: "5", ProductName: "AirPods Pro", UserEmail: "ivy.t@example.com", Date: "2025-01-20T15:22:00Z", Status: enums.InvoiceStatusRefunded},
		{ID: "INV-2025-003", ProductID: "3", ProductName: "iPad Pro", UserEmail: "jack.a@example.com", Date: "2025-01-19T09:45:00Z", Status: enums.InvoiceStatusPaid},
		{ID: "INV-2025-002", ProductID: "1", ProductName: "iPhone 16 Pro", UserEmail: "alice@example.com", Date: "2025-01-18T12:10:00Z", Status: enums.InvoiceStatusShipped},
		{ID: "INV-2025-001", ProductID: "4", ProductName: "Apple Watch Ultra 2", UserEmail: "bob.smith@example.com", Date: "2025-01-17T14:55:00Z", Status: enums.InvoiceStatusPaid},
	}
}

func Products() []types.Product {
	return []types.Product{
		{
			ID:          "1",
			Name:        "iPhone 16 Pro",
			Price:       1199,
			Image:       "https://images.unsplash.com/photo-1695048133142-1a20484d2569?w=600",
			Description: "The ultimate iPhone with A18 Pro chip.",
		},
		{
			ID:          "2",
			Name:        `MacBook Pro 14"`,
			Price:       1999,
			Image:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=600",
			Description: "Supercharged by M3 Pro or M3 Max.",
		},
		{
			ID:          "3",
			Name:        "iPad Pro",
			Price:       1099,
			Image:       "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=600",
			Description: "Powerful. Colorful. Wonderful.",
		},
		{
			ID:          "4",
			Name:        "Apple Watch Ultra 2",
			Price:       799,
			Image:       "https://images.unsplash.com/photo-1434493789847-2f02dc6ca35d?w=600",
			Description: "The most capable Apple Watch ever.",
		},
		{
			ID:          "5",
			Name:        "AirPods Pro",
			Price:       249,
			Image:       "https://images.unsplash.com/photo-1606220588913-b3aacb4d2f46?w=600",
			Description: "Active Noise Cancellation. Transparency mode.",
		},
	}
}
