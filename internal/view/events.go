package view

// EventKind classifies a coordinator state change.
type EventKind int

const (
	// EventCollectionsChanged fires when the collection list was reloaded
	// (create, rename, delete).
	EventCollectionsChanged EventKind = iota
	// EventItemsChanged fires when the visible item list changed: a new
	// collection selection, a search submit, or an item-level mutation.
	EventItemsChanged
	// EventItemChanged fires when the selected item's detail rows changed.
	EventItemChanged
	// EventSelectionChanged fires when a selection moved without any data
	// changing underneath it.
	EventSelectionChanged
)

// Event describes one coordinator state change delivered to observers.
type Event struct {
	Kind EventKind

	// CollectionID is the active collection at the time of the event,
	// nil for the root "My Library" scope.
	CollectionID *int64

	// ItemID is the affected item, 0 when no item is involved.
	ItemID int64
}
