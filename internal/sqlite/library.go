// Package sqlite implements the pymetheus library store: relational
// persistence of collections, items, and collection membership in a single
// SQLite file.
//
// The Library owns the only storage connection in the process. Every
// exported operation is synchronous and commits before returning; the
// multi-statement operations (deletes with cascades, membership replacement)
// run inside a single transaction.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// Library is a handle to one pymetheus library file.
type Library struct {
	path string
	db   *sql.DB
}

// Open opens an existing library file and ensures its schema is present.
// The file must already exist; locating it is the caller's concern.
func Open(path string) (*Library, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}
	return open(path)
}

// Create initializes a new library file at path. Fails if the file already
// exists.
func Create(path string) (*Library, error) {
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("create library: %s already exists", path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("create library: %w", err)
	}
	return open(path)
}

func open(path string) (*Library, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("init schema: %w", err)
		}
	}

	return &Library{path: path, db: db}, nil
}

// Path returns the location of the library file.
func (l *Library) Path() string { return l.path }

// Close releases the storage connection. Idempotent.
func (l *Library) Close() error {
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// inTx runs fn inside a transaction, committing on success and rolling back
// on error.
func (l *Library) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
