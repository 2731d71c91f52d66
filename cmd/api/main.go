package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/angelmondragon/applestore-backend/api"
	"github.com/angelmondragon/applestore-backend/api/controllers"
	"github.com/angelmondragon/applestore-backend/api/routes"
	"github.com/angelmondragon/applestore-backend/internal/catalog"
	"github.com/angelmondragon/applestore-backend/internal/store"
	"github.com/angelmondragon/applestore-backend/pkg/config"
	"github.com/angelmondragon/applestore-backend/pkg/env"
	"github.com/angelmondragon/applestore-backend/pkg/instance"
	"github.com/angelmondragon/applestore-backend/pkg/kv"
	"github.com/angelmondragon/applestore-backend/pkg/logger"
	"github.com/angelmondragon/applestore-backend/pkg/metrics"
	pkgredis "github.com/angelmondragon/applestore-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Env:         cfg.App.Env,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opened, err := kv.Open(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to open storage backend", err)
		os.Exit(1)
	}
	defer func() {
		if err := opened.Close(); err != nil {
			logg.Error(context.Background(), "error closing storage backend", err)
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	storeMetrics := metrics.NewStoreMetrics(reg)

	st := store.New(ctx, opened.Backend,
		store.WithLogger(logg),
		store.WithMetrics(storeMetrics),
		store.WithKeys(store.Keys{Users: cfg.Storage.UsersKey, Invoices: cfg.Storage.InvoicesKey}),
	)
	go st.ReportSizes(ctx, storeMetrics)

	var backend controllers.Pinger
	if opened.Backend != nil {
		backend = opened
	}
	var idempotency pkgredis.IdempotencyStore
	if opened.Redis != nil {
		idempotency = opened.Redis
	}

	addr := ":" + env.Get("PORT", cfg.App.Port)
	ctx = logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"storage":  opened.Driver,
		"instance": instance.GetID(),
	})
	logg.Info(ctx, "starting api server")

	server := api.NewServer(addr, routes.NewRouter(cfg, logg, st, catalog.Default(), backend, idempotency, reg))
	if err := api.Serve(ctx, server, logg); err != nil {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
