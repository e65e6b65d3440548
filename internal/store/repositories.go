package store

import (
	"context"

	"github.com/MKhiriev/court-fund/internal/config"
	"github.com/MKhiriev/court-fund/internal/logger"
)

// Repositories groups every repository backed by one database connection.
type Repositories struct {
	UserRepository       UserRepository
	FundRepository       FundRepository
	ServiceFeeRepository ServiceFeeRepository

	db *DB
}

// NewRepositories connects to the configured database, applies the
// migrations and builds the repositories on top of the connection.
func NewRepositories(ctx context.Context, cfg config.DB, log *logger.Logger) (*Repositories, error) {
	db, err := NewDB(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewRepositories").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return newRepositories(db, log), nil
}

func newRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db, log),
		FundRepository:       NewFundRepository(db, log),
		ServiceFeeRepository: NewServiceFeeRepository(db, log),
		db:                   db,
	}
}

// Close releases the underlying database connection.
func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
