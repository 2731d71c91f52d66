package controllers

import (
	"net/http"

	"github.com/angelmondragon/applestore-backend/api/responses"
	pkgerrors "github.com/angelmondragon/applestore-backend/pkg/errors"
	"github.com/angelmondragon/applestore-backend/pkg/types"
)

// StoreErrors reports the last error of each collection, or null.
func StoreErrors(svc ErrorStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := svc.Snapshot()
		responses.WriteSuccess(w, types.StoreErrors{
			Version:  snap.Version,
			Users:    toAPIError(snap.UsersError),
			Invoices: toAPIError(snap.InvoicesError),
		})
	}
}

func ClearStoreErrors(svc ErrorStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.ClearError()
		responses.WriteNoContent(w)
	}
}

func toAPIError(err *pkgerrors.Error) *types.APIError {
	if err == nil {
		return nil
	}
	return &types.APIError{Code: string(err.Code()), Message: err.Message(), Details: err.Details()}
}
