package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/emreozcan/pymetheus/pkg/types"
)

// ItemCollections returns the ids of the collections the item belongs to,
// in collection insertion order.
func (l *Library) ItemCollections(itemID int64) ([]int64, error) {
	rows, err := l.db.Query(
		"SELECT collection FROM collection_entry WHERE item = ? ORDER BY collection",
		itemID)
	if err != nil {
		return nil, fmt.Errorf("listing item collections: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning item collection: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// SetItemCollections replaces the item's memberships with exactly the given
// collection ids. The replacement is atomic: either all old rows are gone and
// all new rows are present, or nothing changed. Fails with ErrNotFound when
// the item id is stale.
func (l *Library) SetItemCollections(itemID int64, collectionIDs []int64) error {
	return l.inTx(func(tx *sql.Tx) error {
		var one int
		err := tx.QueryRow("SELECT 1 FROM item WHERE id = ?", itemID).Scan(&one)
		if err == sql.ErrNoRows {
			return fmt.Errorf("item %d: %w", itemID, types.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("checking item: %w", err)
		}

		if _, err := tx.Exec("DELETE FROM collection_entry WHERE item = ?", itemID); err != nil {
			return fmt.Errorf("clearing item entries: %w", err)
		}
		for _, collectionID := range collectionIDs {
			if _, err := tx.Exec(
				"INSERT INTO collection_entry (collection, item) VALUES (?, ?)",
				collectionID, itemID); err != nil {
				return fmt.Errorf("inserting item entry: %w", err)
			}
		}
		return nil
	})
}
