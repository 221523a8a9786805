package view

import (
	"fmt"

	"github.com/emreozcan/pymetheus/pkg/schema"
	"github.com/emreozcan/pymetheus/pkg/types"
)

// Edit flows. Each flow suspends on the prompter, and a cancelled prompt
// abandons the edit with zero storage mutation. Successful edits persist
// immediately and refresh the derived state.

// CreateCollection adds a collection under an auto-generated unique name and
// returns it.
func (c *Coordinator) CreateCollection() (types.Collection, error) {
	col, err := c.lib.CreateCollection()
	if err != nil {
		return types.Collection{}, err
	}
	cols, err := c.lib.ListCollections()
	if err != nil {
		return types.Collection{}, err
	}
	c.collections = cols
	c.publish(Event{Kind: EventCollectionsChanged})
	return col, nil
}

// RenameCollection prompts for a new name for the collection.
func (c *Coordinator) RenameCollection(id int64) error {
	col := c.collectionByID(id)
	if col == nil {
		return fmt.Errorf("collection %d: %w", id, types.ErrNotFound)
	}

	name, ok := c.prompter.Text("Rename collection", col.Name)
	if !ok {
		return nil
	}
	if err := c.lib.RenameCollection(id, name); err != nil {
		return err
	}
	col.Name = name
	c.publish(Event{Kind: EventCollectionsChanged})
	return nil
}

// DeleteCollection asks for confirmation and removes the collection. Its
// items survive; if it was the active collection the scope resets to the
// root.
func (c *Coordinator) DeleteCollection(id int64) error {
	col := c.collectionByID(id)
	if col == nil {
		return fmt.Errorf("collection %d: %w", id, types.ErrNotFound)
	}
	if !c.prompter.Confirm(fmt.Sprintf("Delete collection %q?", col.Name)) {
		return nil
	}

	if err := c.lib.DeleteCollection(id); err != nil {
		return err
	}
	if c.selectedCollection != nil && *c.selectedCollection == id {
		c.selectedCollection = nil
	}
	return c.Refresh()
}

// CreateItem prompts for an item type and adds a fresh item. When a
// collection is active the new item joins it, so it stays visible.
func (c *Coordinator) CreateItem() (*types.Item, error) {
	allTypes := schema.Types()
	options := make([]string, len(allTypes))
	for i, t := range allTypes {
		label, err := schema.TypeDisplayName(t.Name())
		if err != nil {
			label = t.Name()
		}
		options[i] = label
	}

	choice, ok := c.prompter.Pick("New item type", options)
	if !ok {
		return nil, nil
	}
	if choice < 0 || choice >= len(allTypes) {
		return nil, fmt.Errorf("item type choice %d: %w", choice, types.ErrNotFound)
	}

	item, err := c.lib.CreateItem(allTypes[choice])
	if err != nil {
		return nil, err
	}
	if c.selectedCollection != nil {
		if err := c.lib.SetItemCollections(item.ID, []int64{*c.selectedCollection}); err != nil {
			return nil, err
		}
	}

	if err := c.reloadItems(); err != nil {
		return nil, err
	}
	c.setSelectedItem(item)
	c.publish(Event{Kind: EventItemsChanged, ItemID: item.ID})
	return item, nil
}

// DuplicateItem copies an item verbatim into a new record. The copy carries
// no collection memberships.
func (c *Coordinator) DuplicateItem(id int64) (*types.Item, error) {
	dup, err := c.lib.DuplicateItem(id)
	if err != nil {
		return nil, err
	}
	if err := c.reloadItems(); err != nil {
		return nil, err
	}
	c.publish(Event{Kind: EventItemsChanged, ItemID: dup.ID})
	return dup, nil
}

// DeleteItem asks for confirmation and removes the item together with its
// memberships.
func (c *Coordinator) DeleteItem(id int64) error {
	if !c.prompter.Confirm("Delete item?") {
		return nil
	}
	if err := c.lib.DeleteItem(id); err != nil {
		return err
	}
	if c.selectedItem != nil && c.selectedItem.ID == id {
		c.setSelectedItem(nil)
	}
	if err := c.reloadItems(); err != nil {
		return err
	}
	c.publish(Event{Kind: EventItemsChanged})
	return nil
}

// EditField prompts for a new value for one field of the selected item.
// Date-classified fields must parse as real calendar dates; an invalid
// entry discards the edit and surfaces ErrInvalidDate. Editing the
// synthetic item-type row opens the type picker instead.
func (c *Coordinator) EditField(field string) error {
	item := c.selectedItem
	if item == nil {
		return fmt.Errorf("no item selected: %w", types.ErrNotFound)
	}
	if field == schema.FieldItemType {
		return c.changeItemType(item)
	}

	label, err := schema.FieldDisplayName(field)
	if err != nil {
		label = field
	}
	value, ok := c.prompter.Text(label, item.FieldData[field])
	if !ok {
		return nil
	}
	if schema.IsDateField(field) {
		if err := types.ValidateDate(value); err != nil {
			return err
		}
	}

	item.SetField(field, value)
	return c.persistSelected()
}

// changeItemType switches the selected item to another type. Field values
// not valid for the new type are preserved as stale keys.
func (c *Coordinator) changeItemType(item *types.Item) error {
	allTypes := schema.Types()
	options := make([]string, len(allTypes))
	for i, t := range allTypes {
		label, err := schema.TypeDisplayName(t.Name())
		if err != nil {
			label = t.Name()
		}
		options[i] = label
	}

	choice, ok := c.prompter.Pick("Item type", options)
	if !ok {
		return nil
	}
	if choice < 0 || choice >= len(allTypes) {
		return fmt.Errorf("item type choice %d: %w", choice, types.ErrNotFound)
	}

	item.Type = allTypes[choice]
	return c.persistSelected()
}

// ClearField removes a field value from the selected item. The synthetic
// item-type row cannot be cleared.
func (c *Coordinator) ClearField(field string) error {
	item := c.selectedItem
	if item == nil {
		return fmt.Errorf("no item selected: %w", types.ErrNotFound)
	}
	if err := item.ClearField(field); err != nil {
		return err
	}
	return c.persistSelected()
}

// AddCreator prompts for a creator type and a name, then appends the
// creator to the selected item. An empty name cancels the flow.
func (c *Coordinator) AddCreator() error {
	item := c.selectedItem
	if item == nil {
		return fmt.Errorf("no item selected: %w", types.ErrNotFound)
	}

	ctypes := item.Type.CreatorTypes()
	options := make([]string, len(ctypes))
	for i, ctype := range ctypes {
		label, err := schema.CreatorTypeDisplayName(ctype)
		if err != nil {
			label = ctype
		}
		options[i] = label
	}

	choice, ok := c.prompter.Pick("Creator type", options)
	if !ok {
		return nil
	}
	if choice < 0 || choice >= len(ctypes) {
		return fmt.Errorf("creator type choice %d: %w", choice, types.ErrNotFound)
	}

	name, ok := c.prompter.Name("New creator", types.NameData{})
	if !ok || name.IsEmpty() {
		return nil
	}

	item.AddCreator(ctypes[choice], name)
	return c.persistSelected()
}

// EditCreator prompts with the current name parts. Emptying every part
// removes the creator, and removing the last of a type drops the type key.
func (c *Coordinator) EditCreator(creatorType string, index int) error {
	item := c.selectedItem
	if item == nil {
		return fmt.Errorf("no item selected: %w", types.ErrNotFound)
	}
	names := item.Creators[creatorType]
	if index < 0 || index >= len(names) {
		return fmt.Errorf("creator %s[%d]: %w", creatorType, index, types.ErrNotFound)
	}

	name, ok := c.prompter.Name("Edit creator", names[index])
	if !ok {
		return nil
	}
	if name.IsEmpty() {
		if err := item.RemoveCreator(creatorType, index); err != nil {
			return err
		}
	} else {
		names[index] = name
	}
	return c.persistSelected()
}

// RemoveCreator removes one creator from the selected item by position.
func (c *Coordinator) RemoveCreator(creatorType string, index int) error {
	item := c.selectedItem
	if item == nil {
		return fmt.Errorf("no item selected: %w", types.ErrNotFound)
	}
	if err := item.RemoveCreator(creatorType, index); err != nil {
		return err
	}
	return c.persistSelected()
}

// AssignCollections prompts with a checkbox list of every collection and
// replaces the item's membership set with the chosen one in a single step.
func (c *Coordinator) AssignCollections(itemID int64) error {
	current, err := c.lib.ItemCollections(itemID)
	if err != nil {
		return err
	}
	member := make(map[int64]bool, len(current))
	for _, id := range current {
		member[id] = true
	}

	options := make([]string, len(c.collections))
	selected := make([]bool, len(c.collections))
	for i, col := range c.collections {
		options[i] = col.Name
		selected[i] = member[col.ID]
	}

	chosen, ok := c.prompter.MultiSelect("Collections", options, selected)
	if !ok {
		return nil
	}

	var ids []int64
	for i, col := range c.collections {
		if i < len(chosen) && chosen[i] {
			ids = append(ids, col.ID)
		}
	}
	if err := c.lib.SetItemCollections(itemID, ids); err != nil {
		return err
	}

	// Membership affects which items the active collection shows.
	if err := c.reloadItems(); err != nil {
		return err
	}
	c.publish(Event{Kind: EventItemsChanged, ItemID: itemID})
	return nil
}

// persistSelected writes the selected item back to the store and refreshes
// the detail rows and item list from the persisted state.
func (c *Coordinator) persistSelected() error {
	item := c.selectedItem
	if err := c.lib.SaveItem(item); err != nil {
		return err
	}
	if err := c.reloadItems(); err != nil {
		return err
	}

	fresh, err := c.lib.GetItem(item.ID)
	if err != nil {
		return err
	}
	c.setSelectedItem(fresh)
	c.publish(Event{Kind: EventItemChanged, ItemID: item.ID})
	c.publish(Event{Kind: EventItemsChanged, ItemID: item.ID})
	return nil
}
