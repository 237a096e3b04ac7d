// Package storage opens the key/value backend selected by STORE_DRIVER and
// hands out per-profile views of it.
package storage

import (
	"context"
	"database/sql"
	"time"

	"meraki_estimator/internal/adapter/persistence/repository"
	"meraki_estimator/internal/infrastructure/config"
	"meraki_estimator/internal/infrastructure/database"
	"meraki_estimator/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var ErrUnknownDriver = errors.New("unknown store driver")

// Storage is one opened backend. Only the sqlite driver can observe writes
// made by other processes; Watch is a no-op for the others.
type Storage struct {
	Driver string
	KV     interfaces.IKeyValueStore

	db     *sql.DB
	sqlite *repository.SQLiteKVRepository
}

func Open(ctx context.Context, cfg config.Config) (*Storage, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		return &Storage{Driver: cfg.StoreDriver, KV: repository.NewMemoryKVRepository()}, nil

	case config.StoreDriverSQLite, "":
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		repo, err := repository.NewSQLiteKVRepository(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		logrus.WithField("path", cfg.SQLitePath).Info("[storage] sqlite store opened")
		return &Storage{Driver: config.StoreDriverSQLite, KV: repo, db: db, sqlite: repo}, nil

	case config.StoreDriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		logrus.WithFields(logrus.Fields{"table": cfg.KVTable, "endpoint": cfg.DynamoDBEndpoint}).Info("[storage] dynamodb store configured")
		return &Storage{Driver: cfg.StoreDriver, KV: repository.NewDynamoKVRepository(ddb, cfg.KVTable)}, nil
	}
	return nil, errors.Wrapf(ErrUnknownDriver, "%q", cfg.StoreDriver)
}

// Scope returns the view of profileID's keys.
func (s *Storage) Scope(profileID string) interfaces.IKeyValueStore {
	return repository.NewNamespacedKVRepository(s.KV, profileID)
}

// Watch blocks until ctx is done, calling onChange whenever another process
// writes to the store.
func (s *Storage) Watch(ctx context.Context, interval time.Duration, onChange func()) error {
	if s.sqlite == nil {
		return nil
	}
	return s.sqlite.Watch(ctx, interval, onChange)
}

func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
