package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.Storage.Driver != StorageDriverMemory {
		t.Fatalf("expected memory driver by default, got %q", cfg.Storage.Driver)
	}
	if cfg.Storage.UsersKey != "apple-store-users" {
		t.Fatalf("unexpected users key %q", cfg.Storage.UsersKey)
	}
	if cfg.Storage.InvoicesKey != "apple-store-invoices" {
		t.Fatalf("unexpected invoices key %q", cfg.Storage.InvoicesKey)
	}
	if cfg.Idempotency.TTL != 24*time.Hour || cfg.Idempotency.LockTTL != 30*time.Second {
		t.Fatalf("expected 24h idempotency ttl, got %v", cfg.Idempotency.TTL)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("unexpected port %q", cfg.App.Port)
	}
}

func TestLoad_RedisDriverRequiresEndpoint(t *testing.T) {
	t.Setenv(EnvStorageDriver, "REDIS")
	if _, err := Load(); err == nil {
		t.Fatal("expected redis driver without endpoint to fail")
	}

	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Storage.Driver != StorageDriverRedis {
		t.Fatalf("expected normalized redis driver, got %q", cfg.Storage.Driver)
	}
}

func TestLoad_PostgresDriverRequiresDSN(t *testing.T) {
	t.Setenv(EnvStorageDriver, StorageDriverPostgres)
	if _, err := Load(); err == nil {
		t.Fatal("expected postgres driver without dsn to fail")
	}
}

func TestLoad_SQLiteDefaultsDSN(t *testing.T) {
	t.Setenv(EnvStorageDriver, StorageDriverSQLite)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.DB.DSN != DefaultSQLiteDSN {
		t.Fatalf("expected default sqlite dsn, got %q", cfg.DB.DSN)
	}
	if !cfg.Storage.IsSQL() {
		t.Fatal("expected sqlite to be a sql driver")
	}
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv(EnvStorageDriver, "dynamo")
	if _, err := Load(); err == nil {
		t.Fatal("expected unknown driver to fail")
	}
}

func TestLoad_RejectsSharedKeys(t *testing.T) {
	t.Setenv(EnvStorageUsersKey, "same")
	t.Setenv(EnvStorageInvoicesKey, "same")
	if _, err := Load(); err == nil {
		t.Fatal("expected identical collection keys to fail")
	}
}

func TestLoad_CORSOriginsList(t *testing.T) {
	t.Setenv(EnvCORSOrigins, "http://localhost:4200,https://shop.example.com")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if len(cfg.App.CORSOrigins) != 2 {
		t.Fatalf("expected two origins, got %v", cfg.App.CORSOrigins)
	}
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "prod"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
	if prodConfig.IsDev() {
		t.Fatalf("expected IsDev false for %q", prodConfig.Env)
	}
}
