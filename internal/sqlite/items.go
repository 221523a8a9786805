package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/emreozcan/pymetheus/pkg/schema"
	"github.com/emreozcan/pymetheus/pkg/types"
)

// ListItems returns items in insertion order (id ascending). When
// collectionID is non-nil the result is restricted to items with a
// membership entry for that collection.
func (l *Library) ListItems(collectionID *int64) ([]*types.Item, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if collectionID != nil {
		rows, err = l.db.Query(`
			SELECT item.id, item.type, item.field_data, item.creators
			FROM collection_entry entry
			JOIN item ON entry.item = item.id
			WHERE entry.collection = ?
			ORDER BY item.id`, *collectionID)
	} else {
		rows, err = l.db.Query(`
			SELECT id, type, field_data, creators
			FROM item
			ORDER BY id`)
	}
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []*types.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetItem returns the item with the given id, or ErrNotFound.
func (l *Library) GetItem(id int64) (*types.Item, error) {
	row := l.db.QueryRow(
		"SELECT id, type, field_data, creators FROM item WHERE id = ?", id)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("item %d: %w", id, types.ErrNotFound)
	}
	return item, err
}

// CreateItem inserts a new item of the given type with empty field and
// creator maps and returns it with its assigned id.
func (l *Library) CreateItem(t *schema.ItemType) (*types.Item, error) {
	res, err := l.db.Exec(
		"INSERT INTO item (type, field_data, creators) VALUES (?, '{}', '{}')",
		t.Name())
	if err != nil {
		return nil, fmt.Errorf("inserting item: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading item id: %w", err)
	}

	item := types.NewItem(t)
	item.ID = id
	return item, nil
}

// DuplicateItem copies an item's type, field data, and creators verbatim
// into a new row and returns the copy. Fails with ErrNotFound when the
// source id is stale. The copy carries no collection memberships.
func (l *Library) DuplicateItem(id int64) (*types.Item, error) {
	res, err := l.db.Exec(`
		INSERT INTO item (type, field_data, creators)
		SELECT type, field_data, creators
		FROM item
		WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("duplicating item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("duplicating item: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("item %d: %w", id, types.ErrNotFound)
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading duplicate id: %w", err)
	}
	return l.GetItem(newID)
}

// DeleteItem removes an item and cascades removal of its membership rows.
// Fails with ErrNotFound when the id is stale.
func (l *Library) DeleteItem(id int64) error {
	return l.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM collection_entry WHERE item = ?", id); err != nil {
			return fmt.Errorf("deleting item entries: %w", err)
		}
		res, err := tx.Exec("DELETE FROM item WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("deleting item: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("deleting item: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("item %d: %w", id, types.ErrNotFound)
		}
		return nil
	})
}

// SaveItem overwrites the stored type, field data, and creators for the
// item's id. Fails with ErrNotFound when the id no longer exists.
func (l *Library) SaveItem(item *types.Item) error {
	typeCode, fieldJSON, creatorsJSON, err := item.ToStored()
	if err != nil {
		return err
	}

	res, err := l.db.Exec(`
		UPDATE item
		SET type = ?, field_data = ?, creators = ?
		WHERE id = ?`,
		typeCode, fieldJSON, creatorsJSON, item.ID)
	if err != nil {
		return fmt.Errorf("saving item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("saving item: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("item %d: %w", item.ID, types.ErrNotFound)
	}
	return nil
}

// scanItem hydrates an item from a row of (id, type, field_data, creators).
func scanItem(scanner interface{ Scan(...any) error }) (*types.Item, error) {
	var (
		id                            int64
		typeCode, fieldJSON, creators string
	)
	if err := scanner.Scan(&id, &typeCode, &fieldJSON, &creators); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning item: %w", err)
	}
	return types.ItemFromStored(id, typeCode, fieldJSON, creators)
}
