package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"

	"github.com/MKhiriev/fitiplus/internal/logger"
)

type badgerKeyValueStore struct {
	db     *badger.DB
	logger *logger.Logger
}

// NewBadgerKeyValueStore opens a Badger database in dir. An empty dir opens
// an in-memory instance.
func NewBadgerKeyValueStore(dir string, log *logger.Logger) (KeyValueStore, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts = opts.WithLogger(&badgerLogger{logger: log}).WithSyncWrites(true)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: open db: %w", err)
	}

	log.Debug().Str("func", "NewBadgerKeyValueStore").Str("dir", dir).Msg("badger store opened")
	return &badgerKeyValueStore{db: db, logger: log}, nil
}

func (b *badgerKeyValueStore) Get(_ context.Context, key string) (string, error) {
	var value []byte

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrKeyNotFound
			}
			return err
		}

		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return "", err
	}

	return string(value), nil
}

func (b *badgerKeyValueStore) Set(_ context.Context, key, value string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		b.logger.Err(err).Str("func", "badgerKeyValueStore.Set").Str("key", key).Msg("failed to set value")
		return fmt.Errorf("badger: set %s: %w", key, err)
	}
	return nil
}

func (b *badgerKeyValueStore) Delete(_ context.Context, keys ...string) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		for _, k := range keys {
			if err := txn.Delete([]byte(k)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		b.logger.Err(err).Str("func", "badgerKeyValueStore.Delete").Strs("keys", keys).Msg("failed to delete values")
		return fmt.Errorf("badger: delete: %w", err)
	}
	return nil
}

func (b *badgerKeyValueStore) Close() error {
	return b.db.Close()
}

// badgerLogger adapts the zerolog wrapper to Badger's Logger interface.
type badgerLogger struct {
	logger *logger.Logger
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error().Msgf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn().Msgf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.logger.Info().Msgf(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug().Msgf(format, args...)
}
