package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/applestore-backend/pkg/config"
	"github.com/angelmondragon/applestore-backend/pkg/kv"
	"github.com/angelmondragon/applestore-backend/pkg/logger"
	"github.com/angelmondragon/applestore-backend/pkg/seed"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})
	_ = godotenv.Load()

	mode := flag.String("mode", "write", "seed mode: write|dump")
	force := flag.Bool("force", false, "overwrite collections that already exist (write mode)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}
	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Env:         cfg.App.Env,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx := logg.WithFields(context.Background(), map[string]any{
		"mode":   *mode,
		"driver": cfg.Storage.NormalizedDriver(),
	})

	switch cfg.Storage.NormalizedDriver() {
	case config.StorageDriverNone, config.StorageDriverMemory:
		fmt.Fprintf(os.Stderr, "storage driver %q does not outlive this process; nothing to seed\n", cfg.Storage.NormalizedDriver())
		os.Exit(1)
	}

	opened, err := kv.Open(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to open storage backend", err)
		os.Exit(1)
	}
	defer opened.Close()

	keys := []string{cfg.Storage.UsersKey, cfg.Storage.InvoicesKey}
	switch *mode {
	case "write":
		entries, err := seedEntries(ctx, opened.Backend, cfg.Storage, *force)
		if err != nil {
			logg.Error(ctx, "failed to prepare seed data", err)
			os.Exit(1)
		}
		if len(entries) == 0 {
			logg.Info(ctx, "collections already present; use -force to overwrite")
			return
		}
		if err := kv.SetAll(ctx, opened.Backend, entries); err != nil {
			logg.Error(ctx, "failed to write seed data", err)
			os.Exit(1)
		}
		logg.Info(logg.WithField(ctx, "keys", len(entries)), "seed data written")

	case "dump":
		for _, key := range keys {
			raw, found, err := opened.Backend.Get(ctx, key)
			if err != nil {
				logg.Error(logg.WithStorageKey(ctx, key), "failed to read collection", err)
				os.Exit(1)
			}
			if !found {
				fmt.Printf("%s: <absent>\n", key)
				continue
			}
			fmt.Printf("%s: %s\n", key, raw)
		}

	default:
		fmt.Fprintln(os.Stderr, "unknown -mode value:", *mode)
		os.Exit(1)
	}
}

// seedEntries returns the default payloads for every collection that is
// absent, or for all of them when force is set.
func seedEntries(ctx context.Context, backend kv.Backend, storage config.StorageConfig, force bool) (map[string]string, error) {
	ds := seed.Default()
	payloads := map[string]any{
		storage.UsersKey:    ds.Users,
		storage.InvoicesKey: ds.Invoices,
	}
	entries := make(map[string]string, len(payloads))
	for key, value := range payloads {
		if !force {
			_, found, err := backend.Get(ctx, key)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", key, err)
			}
			if found {
				continue
			}
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", key, err)
		}
		entries[key] = string(raw)
	}
	return entries, nil
}
