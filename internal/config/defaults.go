package config

import (
	"strings"
	"time"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
	DriverMemory   = "memory"
)

// MinTokenSignKeyLength is the minimal HMAC-SHA256 key size, in bytes.
const MinTokenSignKeyLength = 32

// Defaults applied to fields left empty by every configuration source.
const (
	// DefaultTokenSignKey is a development-only secret.
	DefaultTokenSignKey     = "go-user-signup-development-secret-change-me-0123456789"
	DefaultTokenDuration    = 3600000 * time.Millisecond
	DefaultPasswordHashCost = 10
	DefaultVersion          = "N/A"
	DefaultHTTPAddress      = "localhost:8080"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
)

const dotEnvFile = ".env"

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = DefaultTokenSignKey
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = DefaultPasswordHashCost
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	cfg.Storage.DB.Driver = cfg.Storage.DB.ResolveDriver()
}

// ResolveDriver returns the configured driver or, when none is set, derives
// it from the DSN: no DSN means the in-memory store, "file:" URIs and *.db
// paths mean SQLite, anything else is treated as PostgreSQL.
func (db DB) ResolveDriver() string {
	if db.Driver != "" {
		return strings.ToLower(db.Driver)
	}

	dsn := strings.TrimSpace(db.DSN)
	switch {
	case dsn == "":
		return DriverMemory
	case strings.HasPrefix(dsn, "file:"), strings.HasSuffix(dsn, ".db"), strings.HasSuffix(dsn, ".sqlite"):
		return DriverSQLite
	default:
		return DriverPostgres
	}
}
