package controllers

import (
	"net/http"
	"strconv"

	"github.com/angelmondragon/applestore-backend/api/responses"
)

type pingResponse struct {
	Status   string `json:"status"`
	Version  uint64 `json:"version"`
	Users    int    `json:"users"`
	Invoices int    `json:"invoices"`
}

// PublicPing reports the current snapshot version so clients can poll for
// changes without downloading the collections.
func PublicPing(svc ErrorStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := svc.Snapshot()
		w.Header().Set("X-Store-Version", strconv.FormatUint(snap.Version, 10))
		responses.WriteSuccess(w, pingResponse{
			Status:   "ok",
			Version:  snap.Version,
			Users:    len(snap.Users),
			Invoices: len(snap.Invoices),
		})
	}
}
