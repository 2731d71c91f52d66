package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/applestore-backend/pkg/config"
	"github.com/angelmondragon/applestore-backend/pkg/db"
	"github.com/angelmondragon/applestore-backend/pkg/logger"
)

// MaybeRun brings the key-value schema up to date when a SQL driver is
// configured and APPLESTORE_DB_AUTO_MIGRATE is on. The embedded files are
// validated before anything touches the database.
func MaybeRun(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if client == nil || !cfg.Storage.IsSQL() || !cfg.DB.AutoMigrate {
		return nil
	}
	if err := ValidateEmbedded(); err != nil {
		return fmt.Errorf("embedded migrations: %w", err)
	}

	sqlDB, err := client.SQL()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	driver := client.Driver()
	before, err := Version(sqlDB, driver)
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if err := Run(ctx, sqlDB, driver, "up"); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	after, err := Version(sqlDB, driver)
	if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	ctx = logg.WithFields(ctx, map[string]any{"driver": driver, "from_version": before, "to_version": after})
	if after == before {
		logg.Debug(ctx, "schema already current")
		return nil
	}
	logg.Info(ctx, "schema migrated")
	return nil
}
