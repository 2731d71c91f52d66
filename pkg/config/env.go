package config

const EnvPrefix = "APPLESTORE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	StorageDriverNone     = "none"
	StorageDriverMemory   = "memory"
	StorageDriverRedis    = "redis"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
)

// StorageDrivers lists every accepted APPLESTORE_STORAGE_DRIVER value.
var StorageDrivers = []string{
	StorageDriverNone,
	StorageDriverMemory,
	StorageDriverRedis,
	StorageDriverSQLite,
	StorageDriverPostgres,
}

const DefaultSQLiteDSN = "file:applestore.db?cache=shared&_busy_timeout=5000"

const (
	EnvAppEnv             = "APPLESTORE_APP_ENV"
	EnvPort               = "APPLESTORE_APP_PORT"
	EnvLogLevel           = "APPLESTORE_LOG_LEVEL"
	EnvCORSOrigins        = "APPLESTORE_CORS_ORIGINS"
	EnvStorageDriver      = "APPLESTORE_STORAGE_DRIVER"
	EnvStorageUsersKey    = "APPLESTORE_STORAGE_USERS_KEY"
	EnvStorageInvoicesKey = "APPLESTORE_STORAGE_INVOICES_KEY"
	EnvStorageNamespace   = "APPLESTORE_STORAGE_NAMESPACE"
	EnvDBDSN              = "APPLESTORE_DB_DSN"
	EnvDBAutoMigrate      = "APPLESTORE_DB_AUTO_MIGRATE"
	EnvRedisURL           = "APPLESTORE_REDIS_URL"
	EnvRedisAddr          = "APPLESTORE_REDIS_ADDR"
	EnvIdempotencyTTL     = "APPLESTORE_IDEMPOTENCY_TTL"
)
