package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fitiplus/internal/config"
	"github.com/MKhiriev/fitiplus/internal/logger"
)

// NewKeyValueStore opens the backend selected by cfg.Driver. For SQLite it
// connects to cfg.DSN and runs pending migrations first.
func NewKeyValueStore(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (KeyValueStore, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating session storage...")

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteKeyValueStore(db, logger), nil
	case config.DriverBadger:
		return NewBadgerKeyValueStore(cfg.Dir, logger)
	case config.DriverMemory:
		return NewMemoryKeyValueStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
