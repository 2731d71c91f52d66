package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/angelmondragon/applestore-backend/api/responses"
	"github.com/angelmondragon/applestore-backend/api/validators"
	"github.com/angelmondragon/applestore-backend/pkg/logger"
	"github.com/angelmondragon/applestore-backend/pkg/types"
	"github.com/angelmondragon/applestore-backend/pkg/validation"
)

// ListInvoices returns the billing view: newest invoices first, paged.
func ListInvoices(svc InvoiceStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := validators.ParsePage(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, svc.BillingPage(params))
	}
}

func ReplaceInvoices(svc InvoiceStore, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := validators.ReadBody(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		invoices, verdict := validation.DecodeInvoices(raw)
		if !verdict.Valid {
			responses.WriteError(r.Context(), logg, w, verdict.Err())
			return
		}
		saved, err := svc.SetInvoices(r.Context(), invoices)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, saved)
	}
}

// CreateInvoice adds an invoice. A missing date is stamped with now.
func CreateInvoice(svc InvoiceStore, now func() time.Time, logg *logger.Logger) http.HandlerFunc {
	if now == nil {
		now = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var payload types.NewInvoice
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if strings.TrimSpace(payload.Date) == "" {
			payload.Date = now().UTC().Format(types.InvoiceDateLayout)
		}
		inv, err := svc.AddInvoice(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, inv)
	}
}
