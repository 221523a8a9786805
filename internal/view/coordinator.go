// Package view implements the selection coordinator behind the three-pane
// master/detail flow: Collections feed Items, Items feed the field/creator
// detail rows. The coordinator owns all transient selection state, threads
// it into library queries, and publishes typed events to observers instead
// of relying on implicit reactive propagation.
package view

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/emreozcan/pymetheus/internal/sqlite"
	"github.com/emreozcan/pymetheus/pkg/schema"
	"github.com/emreozcan/pymetheus/pkg/types"
)

// RowKind distinguishes the two kinds of detail-panel rows.
type RowKind int

const (
	// RowField is a schema field of the selected item, including the
	// synthetic item-type row.
	RowField RowKind = iota
	// RowCreator is one contributor entry of the selected item.
	RowCreator
)

// Row is one line of the field/creator detail panel.
type Row struct {
	Kind        RowKind
	Field       string // RowField: field code
	CreatorType string // RowCreator: creator-type code
	Index       int    // RowCreator: position within the creator list
	Label       string
	Value       string
}

// Coordinator mediates selection state between the library and the UI
// collaborator. It is constructed with its session dependencies and holds
// no package-level state. All methods are meant for a single goroutine;
// the event-loop model keeps calls serialized.
type Coordinator struct {
	lib      *sqlite.Library
	prompter Prompter

	collections []types.Collection
	items       []*types.Item // fetched set for the active collection
	filtered    []*types.Item // items after the search filter
	search      string

	selectedCollection *int64
	selectedItem       *types.Item
	rows               []Row
	selectedRow        int

	observers map[string]func(Event)
}

// New builds a coordinator over an open library. Initial state is the root
// scope with nothing selected; call Refresh to load it.
func New(lib *sqlite.Library, prompter Prompter) *Coordinator {
	return &Coordinator{
		lib:         lib,
		prompter:    prompter,
		selectedRow: -1,
		observers:   make(map[string]func(Event)),
	}
}

// Subscribe registers an observer for coordinator events and returns a
// token for Unsubscribe. Delivery is synchronous, in publish order.
func (c *Coordinator) Subscribe(fn func(Event)) string {
	token := uuid.NewString()
	c.observers[token] = fn
	return token
}

// Unsubscribe removes the observer registered under token. Unknown tokens
// are a no-op.
func (c *Coordinator) Unsubscribe(token string) {
	delete(c.observers, token)
}

func (c *Coordinator) publish(ev Event) {
	ev.CollectionID = c.selectedCollection
	for _, fn := range c.observers {
		fn(ev)
	}
}

// Refresh reloads collections and the item list for the active collection,
// preserving the current selection where the ids still exist.
func (c *Coordinator) Refresh() error {
	cols, err := c.lib.ListCollections()
	if err != nil {
		return err
	}
	c.collections = cols

	if c.selectedCollection != nil && c.collectionByID(*c.selectedCollection) == nil {
		c.selectedCollection = nil
	}
	if err := c.reloadItems(); err != nil {
		return err
	}

	c.publish(Event{Kind: EventCollectionsChanged})
	c.publish(Event{Kind: EventItemsChanged})
	return nil
}

// reloadItems re-queries the store for the active collection and reapplies
// the search filter and item selection.
func (c *Coordinator) reloadItems() error {
	items, err := c.lib.ListItems(c.selectedCollection)
	if err != nil {
		return err
	}
	c.items = items
	c.applyFilter()

	if c.selectedItem != nil {
		if kept := c.itemByID(c.selectedItem.ID); kept != nil {
			c.setSelectedItem(kept)
		} else {
			c.setSelectedItem(nil)
		}
	}
	return nil
}

// applyFilter recomputes the visible item list from the fetched set. The
// filter never re-queries the store.
func (c *Coordinator) applyFilter() {
	if c.search == "" {
		c.filtered = c.items
		return
	}
	query := strings.ToLower(c.search)
	filtered := make([]*types.Item, 0, len(c.items))
	for _, item := range c.items {
		if item.Matches(query, true) {
			filtered = append(filtered, item)
		}
	}
	c.filtered = filtered
}

// Collections returns the collection list in insertion order.
func (c *Coordinator) Collections() []types.Collection { return c.collections }

// Items returns the visible item list: the active collection's items with
// the search filter applied.
func (c *Coordinator) Items() []*types.Item { return c.filtered }

// SelectedCollection returns the active collection id, nil for the root
// "My Library" scope.
func (c *Coordinator) SelectedCollection() *int64 { return c.selectedCollection }

// SelectedItem returns the item whose detail rows are displayed, or nil.
func (c *Coordinator) SelectedItem() *types.Item { return c.selectedItem }

// Rows returns the detail rows for the selected item.
func (c *Coordinator) Rows() []Row { return c.rows }

// SelectedRow returns the index of the selected detail row, -1 for none.
func (c *Coordinator) SelectedRow() int { return c.selectedRow }

// Search returns the active search string.
func (c *Coordinator) Search() string { return c.search }

// SelectCollection switches the active collection (nil selects the root
// scope), recomputes the item list, and clears the item and row selection.
func (c *Coordinator) SelectCollection(id *int64) error {
	if id != nil && c.collectionByID(*id) == nil {
		return fmt.Errorf("collection %d: %w", *id, types.ErrNotFound)
	}
	c.selectedCollection = id
	c.setSelectedItem(nil)
	if err := c.reloadItems(); err != nil {
		return err
	}
	c.publish(Event{Kind: EventItemsChanged})
	return nil
}

// SelectItem loads the item's current stored state into the detail panel.
func (c *Coordinator) SelectItem(id int64) error {
	item, err := c.lib.GetItem(id)
	if err != nil {
		return err
	}
	c.setSelectedItem(item)
	c.publish(Event{Kind: EventSelectionChanged, ItemID: id})
	return nil
}

// ClearItemSelection empties the detail panel.
func (c *Coordinator) ClearItemSelection() {
	c.setSelectedItem(nil)
	c.publish(Event{Kind: EventSelectionChanged})
}

// SelectRow moves the editing target within the detail panel. No storage
// access; out-of-range indexes clear the row selection.
func (c *Coordinator) SelectRow(i int) {
	if i < 0 || i >= len(c.rows) {
		c.selectedRow = -1
	} else {
		c.selectedRow = i
	}
	c.publish(Event{Kind: EventSelectionChanged, ItemID: c.selectedItemID()})
}

// SetSearch re-filters the current item list client-side. An empty string
// restores the unfiltered set.
func (c *Coordinator) SetSearch(query string) {
	c.search = query
	c.applyFilter()
	if c.selectedItem != nil && c.itemByID(c.selectedItem.ID) == nil {
		c.setSelectedItem(nil)
	}
	c.publish(Event{Kind: EventItemsChanged})
}

func (c *Coordinator) setSelectedItem(item *types.Item) {
	c.selectedItem = item
	c.rows = detailRows(item)
	c.selectedRow = -1
}

func (c *Coordinator) selectedItemID() int64 {
	if c.selectedItem == nil {
		return 0
	}
	return c.selectedItem.ID
}

func (c *Coordinator) collectionByID(id int64) *types.Collection {
	for i := range c.collections {
		if c.collections[i].ID == id {
			return &c.collections[i]
		}
	}
	return nil
}

func (c *Coordinator) itemByID(id int64) *types.Item {
	for _, item := range c.filtered {
		if item.ID == id {
			return item
		}
	}
	return nil
}

// detailRows builds the field/creator panel: the synthetic item-type row,
// then the schema fields in order, then creators grouped by creator type.
func detailRows(item *types.Item) []Row {
	if item == nil {
		return nil
	}

	typeLabel, err := schema.TypeDisplayName(item.Type.Name())
	if err != nil {
		typeLabel = item.Type.Name()
	}
	typeFieldLabel, err := schema.FieldDisplayName(schema.FieldItemType)
	if err != nil {
		typeFieldLabel = schema.FieldItemType
	}
	rows := []Row{{
		Kind:  RowField,
		Field: schema.FieldItemType,
		Label: typeFieldLabel,
		Value: typeLabel,
	}}

	for _, field := range item.Type.Fields() {
		label, err := schema.FieldDisplayName(field)
		if err != nil {
			label = field
		}
		rows = append(rows, Row{
			Kind:  RowField,
			Field: field,
			Label: label,
			Value: item.FieldData[field],
		})
	}

	for _, ctype := range item.Type.CreatorTypes() {
		label, err := schema.CreatorTypeDisplayName(ctype)
		if err != nil {
			label = ctype
		}
		for i, nd := range item.Creators[ctype] {
			rows = append(rows, Row{
				Kind:        RowCreator,
				CreatorType: ctype,
				Index:       i,
				Label:       label,
				Value:       nd.Render(),
			})
		}
	}
	return rows
}
