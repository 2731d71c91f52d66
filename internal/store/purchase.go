package store

import (
	"context"
	"strings"

	"github.com/angelmondragon/applestore-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/applestore-backend/pkg/errors"
	"github.com/angelmondragon/applestore-backend/pkg/types"
	"github.com/angelmondragon/applestore-backend/pkg/validation"
)

const (
	stepProduct  = "product"
	stepCustomer = "customer"
	stepInvoice  = "invoice"
	stepUser     = "user"

	rollbackOK     = "ok"
	rollbackFailed = "failed"
)

// RecordPurchase writes a Paid invoice for the product and then creates or
// updates the purchasing user. If the user write fails the invoice is
// removed again, so no invoice is left without its user update. Both error
// slots reflect the outcome.
func (s *Store) RecordPurchase(ctx context.Context, p types.Purchase) (types.PurchaseResult, error) {
	var out types.PurchaseResult
	err := s.run(ctx, opRecordPurchase, slotUsers|slotInvoices, func(ctx context.Context) *pkgerrors.Error {
		if v := validation.ValidateProduct(p.Product); !v.Valid {
			return withStep(v.Err(), stepProduct)
		}
		name := strings.TrimSpace(p.CustomerName)
		email := strings.TrimSpace(p.CustomerEmail)
		switch {
		case name == "":
			return withStep(fieldError(msgUserNameRequired, "name"), stepCustomer)
		case email == "":
			return withStep(fieldError(msgUserEmailRequired, "email"), stepCustomer)
		case !validation.ValidateEmail(email):
			return withStep(fieldError(msgUserEmailInvalid, "email"), stepCustomer)
		}

		inv, err := s.addInvoiceLocked(ctx, types.NewInvoice{
			ProductID:   p.Product.ID,
			ProductName: p.Product.Name,
			UserEmail:   email,
			Date:        s.timestamp(),
			Status:      enums.InvoiceStatusPaid,
		})
		if err != nil {
			return withStep(err, stepInvoice)
		}
		ctx = s.log.WithInvoiceID(ctx, inv.ID)

		user, err := s.upsertPurchaser(ctx, name, email)
		if err != nil {
			return s.rollbackInvoice(ctx, inv.ID, err)
		}

		out = types.PurchaseResult{Invoice: inv, User: user}
		s.log.Info(s.log.WithUserID(ctx, user.ID), "purchase recorded")
		return nil
	})
	return out, err
}

func (s *Store) upsertPurchaser(ctx context.Context, name, email string) (types.User, *pkgerrors.Error) {
	if idx := s.userIndexByEmail(email); idx >= 0 {
		existing := s.users[idx]
		items := existing.ItemsPurchased + 1
		return s.updateUserLocked(s.log.WithUserID(ctx, existing.ID), existing.ID, types.UserPatch{
			Name:           &name,
			ItemsPurchased: &items,
		})
	}
	return s.createUserLocked(ctx, types.NewUser{Name: name, Email: email, ItemsPurchased: 1}, s.beforeUserInsert)
}

// rollbackInvoice removes the invoice written earlier in the purchase and
// returns cause annotated with the rollback outcome.
func (s *Store) rollbackInvoice(ctx context.Context, invoiceID string, cause *pkgerrors.Error) *pkgerrors.Error {
	status := rollbackOK
	if err := s.removeInvoiceLocked(ctx, invoiceID); err != nil {
		status = rollbackFailed
		s.log.Error(s.log.WithFields(ctx, pkgerrors.Dump(err).Fields()), "purchase rollback could not persist reverted invoices", err)
	} else {
		s.log.Warn(s.log.WithField(ctx, "cause", string(cause.Code())), "purchase rolled back")
	}
	s.metrics.IncRollback(status)
	return withDetails(cause, map[string]any{
		"step":       stepUser,
		"rollback":   status,
		"invoice_id": invoiceID,
	})
}

func withStep(err *pkgerrors.Error, step string) *pkgerrors.Error {
	return withDetails(err, map[string]any{"step": step})
}

// withDetails merges extra into err's map details.
func withDetails(err *pkgerrors.Error, extra map[string]any) *pkgerrors.Error {
	merged := map[string]any{}
	if existing, ok := err.Details().(map[string]any); ok {
		for k, v := range existing {
			merged[k] = v
		}
	}
	for k, v := range extra {
		merged[k] = v
	}
	return err.WithDetails(merged)
}
