package controllers

import (
	"context"

	"github.com/angelmondragon/applestore-backend/internal/store"
	"github.com/angelmondragon/applestore-backend/pkg/pagination"
	"github.com/angelmondragon/applestore-backend/pkg/types"
)

// UserStore is the slice of *store.Store the user handlers need.
type UserStore interface {
	UsersPage(params pagination.Params) pagination.Result[types.User]
	SetUsers(ctx context.Context, users []types.User) ([]types.User, error)
	CreateUser(ctx context.Context, in types.NewUser) (types.User, error)
	UpdateUser(ctx context.Context, id string, patch types.UserPatch) (types.User, error)
	DeleteUser(ctx context.Context, id string) (types.User, error)
}

// InvoiceStore is the slice of *store.Store the invoice handlers need.
type InvoiceStore interface {
	BillingPage(params pagination.Params) pagination.Result[types.Invoice]
	SetInvoices(ctx context.Context, invoices []types.Invoice) ([]types.Invoice, error)
	AddInvoice(ctx context.Context, candidate types.NewInvoice) (types.Invoice, error)
}

type PurchaseStore interface {
	RecordPurchase(ctx context.Context, p types.Purchase) (types.PurchaseResult, error)
}

type ErrorStore interface {
	Snapshot() store.Snapshot
	ClearError()
}

var (
	_ UserStore     = (*store.Store)(nil)
	_ InvoiceStore  = (*store.Store)(nil)
	_ PurchaseStore = (*store.Store)(nil)
	_ ErrorStore    = (*store.Store)(nil)
)
