package sqlite

// Schema DDL for the three library tables. The composite primary key on
// collection_entry enforces membership uniqueness at the schema level
// instead of relying on caller discipline.
const (
	createCollection = `CREATE TABLE IF NOT EXISTS collection (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL
);`

	createItem = `CREATE TABLE IF NOT EXISTS item (
    id INTEGER PRIMARY KEY,
    type TEXT NOT NULL,
    field_data TEXT NOT NULL DEFAULT '{}',
    creators TEXT NOT NULL DEFAULT '{}'
);`

	createCollectionEntry = `CREATE TABLE IF NOT EXISTS collection_entry (
    collection INTEGER NOT NULL REFERENCES collection(id),
    item INTEGER NOT NULL REFERENCES item(id),
    PRIMARY KEY (collection, item)
);`
)

// Index DDL for membership lookups by item.
const (
	idxEntryItem = `CREATE INDEX IF NOT EXISTS idx_collection_entry_item ON collection_entry(item);`
)

// schemaDDL lists all statements in dependency order.
var schemaDDL = []string{
	createCollection,
	createItem,
	createCollectionEntry,
	idxEntryItem,
}
