package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-signup/internal/config"
	"github.com/MKhiriev/go-user-signup/internal/logger"
)

// Storages groups the repositories used by the services together with the
// underlying connection, if any.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages connects to the configured backend, applies migrations for SQL
// backends and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	driver := cfg.DB.ResolveDriver()

	var (
		db  *DB
		err error
	)
	switch driver {
	case config.DriverMemory:
		log.Info().Str("driver", driver).Msg("using in-memory storage")
		return &Storages{UserRepository: NewMemoryUserRepository(log)}, nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the database connection. It is a no-op for the in-memory
// backend.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
