package store

import (
	"cmp"
	"slices"

	"github.com/angelmondragon/applestore-backend/pkg/pagination"
	"github.com/angelmondragon/applestore-backend/pkg/types"
	"github.com/angelmondragon/applestore-backend/pkg/validation"
)

// InvoicesByDate returns invoices newest first. Equal dates order by id,
// descending. Array position is not used.
func InvoicesByDate(invoices []types.Invoice) []types.Invoice {
	sorted := cloneSlice(invoices)
	slices.SortStableFunc(sorted, func(a, b types.Invoice) int {
		ta, _ := validation.ParseTimestamp(a.Date)
		tb, _ := validation.ParseTimestamp(b.Date)
		if c := tb.Compare(ta); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return sorted
}

// BillingPage pages the invoices newest first.
func (s *Store) BillingPage(params pagination.Params) pagination.Result[types.Invoice] {
	return pagination.Page(InvoicesByDate(s.snap.Load().Invoices), params)
}

// UsersPage pages the users in insertion order.
func (s *Store) UsersPage(params pagination.Params) pagination.Result[types.User] {
	return pagination.Page(s.snap.Load().Users, params)
}
