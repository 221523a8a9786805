package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/emreozcan/pymetheus/pkg/types"
)

// ListCollections returns all collections in insertion order.
func (l *Library) ListCollections() ([]types.Collection, error) {
	rows, err := l.db.Query("SELECT id, name FROM collection ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	defer rows.Close()

	var cols []types.Collection
	for rows.Next() {
		var c types.Collection
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning collection: %w", err)
		}
		cols = append(cols, c)
	}
	return cols, rows.Err()
}

// CreateCollection inserts a new collection named "Collection N" for the
// smallest N >= 1 whose name is not already taken.
func (l *Library) CreateCollection() (types.Collection, error) {
	var c types.Collection
	for counter := 1; ; counter++ {
		name := fmt.Sprintf("Collection %d", counter)
		var one int
		err := l.db.QueryRow("SELECT 1 FROM collection WHERE name = ?", name).Scan(&one)
		if err == sql.ErrNoRows {
			c.Name = name
			break
		}
		if err != nil {
			return types.Collection{}, fmt.Errorf("checking collection name: %w", err)
		}
	}

	res, err := l.db.Exec("INSERT INTO collection (name) VALUES (?)", c.Name)
	if err != nil {
		return types.Collection{}, fmt.Errorf("inserting collection: %w", err)
	}
	c.ID, err = res.LastInsertId()
	if err != nil {
		return types.Collection{}, fmt.Errorf("reading collection id: %w", err)
	}
	return c, nil
}

// RenameCollection sets a collection's name. Fails with ErrNotFound when the
// id is stale.
func (l *Library) RenameCollection(id int64, name string) error {
	res, err := l.db.Exec("UPDATE collection SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return fmt.Errorf("renaming collection: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("renaming collection: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("collection %d: %w", id, types.ErrNotFound)
	}
	return nil
}

// DeleteCollection removes a collection and its membership rows. Items are
// never touched. Fails with ErrNotFound when the id is stale.
func (l *Library) DeleteCollection(id int64) error {
	return l.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM collection_entry WHERE collection = ?", id); err != nil {
			return fmt.Errorf("deleting collection entries: %w", err)
		}
		res, err := tx.Exec("DELETE FROM collection WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("deleting collection: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("deleting collection: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("collection %d: %w", id, types.ErrNotFound)
		}
		return nil
	})
}
