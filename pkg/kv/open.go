package kv

import (
	"context"
	"fmt"

	"github.com/angelmondragon/applestore-backend/pkg/config"
	"github.com/angelmondragon/applestore-backend/pkg/db"
	"github.com/angelmondragon/applestore-backend/pkg/logger"
	"github.com/angelmondragon/applestore-backend/pkg/migrate"
	"github.com/angelmondragon/applestore-backend/pkg/redis"
	"go.uber.org/multierr"
)

// Opened bundles the backend selected by configuration with the
// connections it owns. Backend is nil for the "none" driver.
type Opened struct {
	Driver  string
	Backend Backend
	Redis   *redis.Client
	DB      *db.Client
}

// Open builds the backend named by cfg.Storage.Driver. A redis client is
// also opened whenever redis is configured, so callers can reuse it.
func Open(ctx context.Context, cfg *config.Config, logg *logger.Logger) (*Opened, error) {
	driver := cfg.Storage.NormalizedDriver()
	out := &Opened{Driver: driver}

	if cfg.Redis.Configured() {
		client, err := redis.New(ctx, cfg.Redis, cfg.Storage.Namespace, logg)
		if err != nil {
			return nil, fmt.Errorf("open redis: %w", err)
		}
		out.Redis = client
	}

	switch driver {
	case config.StorageDriverNone:
	case config.StorageDriverMemory:
		out.Backend = NewMemory()
	case config.StorageDriverRedis:
		if out.Redis == nil {
			return nil, fmt.Errorf("redis driver selected but redis is not configured")
		}
		out.Backend = NewRedis(out.Redis)
	case config.StorageDriverSQLite, config.StorageDriverPostgres:
		client, err := db.New(ctx, driver, cfg.DB, logg)
		if err != nil {
			return nil, multierr.Append(fmt.Errorf("open database: %w", err), out.Close())
		}
		out.DB = client
		if err := migrate.MaybeRun(ctx, cfg, logg, client); err != nil {
			return nil, multierr.Append(err, out.Close())
		}
		out.Backend = NewSQL(client)
	default:
		return nil, multierr.Append(fmt.Errorf("unknown storage driver %q", driver), out.Close())
	}
	return out, nil
}

// Ping checks the backend when it has a remote.
func (o *Opened) Ping(ctx context.Context) error {
	if pinger, ok := o.Backend.(Pinger); ok {
		return pinger.Ping(ctx)
	}
	return nil
}

// Close releases every owned connection.
func (o *Opened) Close() error {
	if o == nil {
		return nil
	}
	var err error
	if o.DB != nil {
		err = multierr.Append(err, o.DB.Close())
	}
	if o.Redis != nil {
		err = multierr.Append(err, o.Redis.Close())
	}
	return err
}
