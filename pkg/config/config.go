package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App         AppConfig
	Storage     StorageConfig
	DB          DBConfig
	Redis       RedisConfig
	Idempotency IdempotencyConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"APPLESTORE_APP_ENV" default:"dev"`
	Port         string   `envconfig:"APPLESTORE_APP_PORT" default:"8080"`
	LogLevel     string   `envconfig:"APPLESTORE_LOG_LEVEL" default:"info"`
	LogFormat    string   `envconfig:"APPLESTORE_LOG_FORMAT"`
	LogWarnStack bool     `envconfig:"APPLESTORE_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"APPLESTORE_CORS_ORIGINS" default:"*"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig selects the key-value backend the store persists through.
type StorageConfig struct {
	Driver      string `envconfig:"APPLESTORE_STORAGE_DRIVER" default:"memory"`
	UsersKey    string `envconfig:"APPLESTORE_STORAGE_USERS_KEY" default:"apple-store-users"`
	InvoicesKey string `envconfig:"APPLESTORE_STORAGE_INVOICES_KEY" default:"apple-store-invoices"`
	Namespace   string `envconfig:"APPLESTORE_STORAGE_NAMESPACE" default:"applestore"`
}

// NormalizedDriver returns the lower-cased driver name.
func (s StorageConfig) NormalizedDriver() string {
	return strings.ToLower(strings.TrimSpace(s.Driver))
}

// IsSQL reports whether the configured driver persists through the database.
func (s StorageConfig) IsSQL() bool {
	switch s.NormalizedDriver() {
	case StorageDriverSQLite, StorageDriverPostgres:
		return true
	}
	return false
}

type DBConfig struct {
	DSN             string        `envconfig:"APPLESTORE_DB_DSN"`
	MaxOpenConns    int           `envconfig:"APPLESTORE_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"APPLESTORE_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"APPLESTORE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"APPLESTORE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
	AutoMigrate     bool          `envconfig:"APPLESTORE_DB_AUTO_MIGRATE" default:"true"`
}

type RedisConfig struct {
	URL          string        `envconfig:"APPLESTORE_REDIS_URL"`
	Address      string        `envconfig:"APPLESTORE_REDIS_ADDR"`
	Password     string        `envconfig:"APPLESTORE_REDIS_PASSWORD"`
	DB           int           `envconfig:"APPLESTORE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"APPLESTORE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"APPLESTORE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"APPLESTORE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"APPLESTORE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"APPLESTORE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Configured reports whether a redis endpoint was supplied.
func (r RedisConfig) Configured() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type IdempotencyConfig struct {
	TTL time.Duration `envconfig:"APPLESTORE_IDEMPOTENCY_TTL" default:"24h"`
	// LockTTL bounds how long an in-flight reservation blocks retries.
	LockTTL time.Duration `envconfig:"APPLESTORE_IDEMPOTENCY_LOCK_TTL" default:"30s"`
}

func (c *Config) validate() error {
	driver := c.Storage.NormalizedDriver()
	if !isKnownDriver(driver) {
		return fmt.Errorf("%s must be one of %s, got %q", EnvStorageDriver, strings.Join(StorageDrivers, ", "), c.Storage.Driver)
	}
	c.Storage.Driver = driver
	if strings.TrimSpace(c.Storage.UsersKey) == "" || strings.TrimSpace(c.Storage.InvoicesKey) == "" {
		return fmt.Errorf("%s and %s must not be blank", EnvStorageUsersKey, EnvStorageInvoicesKey)
	}
	if c.Storage.UsersKey == c.Storage.InvoicesKey {
		return fmt.Errorf("%s and %s must differ", EnvStorageUsersKey, EnvStorageInvoicesKey)
	}

	switch driver {
	case StorageDriverRedis:
		if !c.Redis.Configured() {
			return fmt.Errorf("either %s or %s is required for the redis driver", EnvRedisURL, EnvRedisAddr)
		}
	case StorageDriverPostgres:
		if c.DB.DSN == "" {
			return fmt.Errorf("%s is required for the postgres driver", EnvDBDSN)
		}
	case StorageDriverSQLite:
		if c.DB.DSN == "" {
			c.DB.DSN = DefaultSQLiteDSN
		}
	}
	return nil
}

func isKnownDriver(driver string) bool {
	for _, known := range StorageDrivers {
		if driver == known {
			return true
		}
	}
	return false
}
