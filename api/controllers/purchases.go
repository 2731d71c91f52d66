package controllers

import (
	"net/http"

	"github.com/angelmondragon/applestore-backend/api/responses"
	"github.com/angelmondragon/applestore-backend/api/validators"
	"github.com/angelmondragon/applestore-backend/internal/catalog"
	"github.com/angelmondragon/applestore-backend/pkg/logger"
	"github.com/angelmondragon/applestore-backend/pkg/types"
)

type purchaseRequest struct {
	ProductID     string `json:"product_id" validate:"notblank"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

// CreatePurchase resolves the product from the catalog and records the
// purchase. Customer fields are validated by the store.
func CreatePurchase(svc PurchaseStore, products catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload purchaseRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		product, err := products.FindByID(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		result, err := svc.RecordPurchase(r.Context(), types.Purchase{
			Product:       product,
			CustomerName:  payload.CustomerName,
			CustomerEmail: payload.CustomerEmail,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
