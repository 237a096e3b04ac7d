package database

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// OpenSQLite opens (creating if needed) the database file at path.
//
// The pool is pinned to one connection: writes from this process then never
// move PRAGMA data_version, so the store watcher only reacts to other
// processes.
func OpenSQLite(path string) (*sql.DB, error) {
	if path == "" {
		path = "meraki.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, errors.Wrap(err, "create sqlite dir")
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite")
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "configure sqlite")
	}
	return db, nil
}
