package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/applestore-backend/api/responses"
	"github.com/angelmondragon/applestore-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/applestore-backend/pkg/errors"
	"github.com/angelmondragon/applestore-backend/pkg/logger"
)

const (
	envHeader        = "X-AppleStore-Env"
	readinessTimeout = 2 * time.Second
)

// Pinger is satisfied by the opened storage backend.
type Pinger interface {
	Ping(context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the storage backend. A nil pinger means the store runs
// without a backend and is always ready.
func HealthReady(cfg *config.Config, logg *logger.Logger, backend Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		if backend != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
			defer cancel()
			if err := backend.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "storage backend not ready").
					WithDetails(map[string]any{"driver": cfg.Storage.NormalizedDriver()}))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{
			"status":  "ready",
			"storage": cfg.Storage.NormalizedDriver(),
		})
	}
}
