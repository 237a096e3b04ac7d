package repository

import (
	"context"
	"database/sql"
	"time"

	"meraki_estimator/internal/usecase/interfaces"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const sqliteKVSchema = `CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

// SQLiteKVRepository stores keys in a single kv table.
//
// The *sql.DB must be limited to one open connection (see
// database.OpenSQLite): PRAGMA data_version only reports commits made through
// other connections, which is what Watch relies on.
type SQLiteKVRepository struct {
	db  *sql.DB
	now func() time.Time
}

var _ interfaces.IKeyValueStore = (*SQLiteKVRepository)(nil)

func NewSQLiteKVRepository(ctx context.Context, db *sql.DB) (*SQLiteKVRepository, error) {
	if _, err := db.ExecContext(ctx, sqliteKVSchema); err != nil {
		return nil, errors.Wrap(err, "create kv table")
	}
	return &SQLiteKVRepository{db: db, now: time.Now}, nil
}

func (r *SQLiteKVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if !validKey(key) {
		return "", false, ErrEmptyKey
	}
	var v string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "get %q", key)
	}
	return v, true, nil
}

func (r *SQLiteKVRepository) Set(ctx context.Context, key, value string) error {
	if !validKey(key) {
		return ErrEmptyKey
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv(key, value, updated_at) VALUES(?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, stamp(r.now()))
	return errors.Wrapf(err, "set %q", key)
}

func (r *SQLiteKVRepository) Delete(ctx context.Context, key string) error {
	if !validKey(key) {
		return ErrEmptyKey
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	return errors.Wrapf(err, "delete %q", key)
}

// DataVersion returns SQLite's data_version for this connection. It changes
// when another connection (usually another process) commits to the file.
func (r *SQLiteKVRepository) DataVersion(ctx context.Context) (int64, error) {
	var v int64
	if err := r.db.QueryRowContext(ctx, `PRAGMA data_version`).Scan(&v); err != nil {
		return 0, errors.Wrap(err, "read data_version")
	}
	return v, nil
}

// Watch polls DataVersion every interval and calls onChange when another
// process has written to the database. It returns when ctx is done.
func (r *SQLiteKVRepository) Watch(ctx context.Context, interval time.Duration, onChange func()) error {
	last, err := r.DataVersion(ctx)
	if err != nil {
		return err
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			v, err := r.DataVersion(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				logrus.WithError(err).Warn("[store][sqlite] data_version poll failed")
				continue
			}
			if v != last {
				last = v
				logrus.WithField("data_version", v).Debug("[store][sqlite] external change detected")
				onChange()
			}
		}
	}
}
