package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/fitiplus/internal/logger"
	"github.com/MKhiriev/fitiplus/migrations"
)

// DB is the SQLite handle behind the session key/value table.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the session schema up to date.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).Str("func", "DB.Migrate").Msg("session schema migration failed")
		return fmt.Errorf("migrate session schema: %w", err)
	}
	db.logger.Debug().Str("func", "DB.Migrate").Msg("session schema is up to date")
	return nil
}
