package store

import (
	"context"
	"slices"
	"strings"

	pkgerrors "github.com/angelmondragon/applestore-backend/pkg/errors"
	"github.com/angelmondragon/applestore-backend/pkg/types"
	"github.com/angelmondragon/applestore-backend/pkg/validation"
)

const (
	invoiceIDPrefix = "INV-"
	maxIDAttempts   = 8
)

// AddInvoice assigns a fresh id to candidate and prepends it.
func (s *Store) AddInvoice(ctx context.Context, candidate types.NewInvoice) (types.Invoice, error) {
	var out types.Invoice
	err := s.run(ctx, opAddInvoice, slotInvoices, func(ctx context.Context) *pkgerrors.Error {
		inv, err := s.addInvoiceLocked(ctx, candidate)
		out = inv
		return err
	})
	return out, err
}

// SetInvoices replaces the whole invoices collection.
func (s *Store) SetInvoices(ctx context.Context, invoices []types.Invoice) ([]types.Invoice, error) {
	var out []types.Invoice
	err := s.run(ctx, opSetInvoices, slotInvoices, func(ctx context.Context) *pkgerrors.Error {
		if v := validation.ValidateInvoices(invoices); !v.Valid {
			return v.Err()
		}
		next := cloneSlice(invoices)
		if err := s.persistInvoices(ctx, next); err != nil {
			return err
		}
		s.invoices = next
		out = cloneSlice(next)
		s.log.Info(s.log.WithField(ctx, "count", len(next)), "invoices replaced")
		return nil
	})
	return out, err
}

// FindInvoice looks an invoice up in the published snapshot.
func (s *Store) FindInvoice(id string) (types.Invoice, bool) {
	for _, inv := range s.snap.Load().Invoices {
		if inv.ID == id {
			return inv, true
		}
	}
	return types.Invoice{}, false
}

func (s *Store) addInvoiceLocked(ctx context.Context, candidate types.NewInvoice) (types.Invoice, *pkgerrors.Error) {
	if v := validation.ValidateNewInvoice(candidate); !v.Valid {
		return types.Invoice{}, v.Err()
	}
	id, err := s.freshID(invoiceIDPrefix, func(candidate string) bool { return s.invoiceIndex(candidate) >= 0 })
	if err != nil {
		return types.Invoice{}, err
	}
	inv := candidate.WithID(id)
	if v := validation.ValidateInvoice(inv); !v.Valid {
		return types.Invoice{}, v.Err()
	}

	next := make([]types.Invoice, 0, len(s.invoices)+1)
	next = append(next, inv)
	next = append(next, s.invoices...)
	if err := s.persistInvoices(ctx, next); err != nil {
		return types.Invoice{}, err
	}
	s.invoices = next
	s.log.Info(s.log.WithInvoiceID(ctx, id), "invoice added")
	return inv, nil
}

// removeInvoiceLocked drops the invoice from memory unconditionally and
// then tries to persist the reverted collection.
func (s *Store) removeInvoiceLocked(ctx context.Context, id string) *pkgerrors.Error {
	next := slices.DeleteFunc(cloneSlice(s.invoices), func(inv types.Invoice) bool {
		return inv.ID == id
	})
	s.invoices = next
	return s.persistInvoices(ctx, next)
}

func (s *Store) invoiceIndex(id string) int {
	for i, inv := range s.invoices {
		if inv.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(types.InvoiceDateLayout)
}

// freshID returns prefix+generated suffix that taken reports as unused.
func (s *Store) freshID(prefix string, taken func(string) bool) (string, *pkgerrors.Error) {
	for range maxIDAttempts {
		suffix := strings.TrimSpace(s.newID())
		if suffix == "" {
			continue
		}
		if id := prefix + suffix; !taken(id) {
			return id, nil
		}
	}
	return "", pkgerrors.New(pkgerrors.CodeValidation, "could not generate a unique id").
		WithDetails(map[string]any{"prefix": prefix})
}
