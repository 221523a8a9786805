package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/emreozcan/pymetheus/pkg/schema"
)

// Item is one bibliographic record: a schema type, a field-value mapping,
// and ordered lists of creators keyed by creator type.
//
// ID is assigned by the library store on creation and immutable thereafter;
// a zero ID marks an item that has not been persisted. FieldData may carry
// keys that are not valid for Type (written by a newer schema); they are
// tolerated on read and preserved on write, but editors only expose valid
// ones.
type Item struct {
	ID        int64
	Type      *schema.ItemType
	FieldData map[string]string
	Creators  map[string][]NameData
}

// NewItem returns an unpersisted item of the given type with empty field and
// creator maps.
func NewItem(t *schema.ItemType) *Item {
	return &Item{
		Type:      t,
		FieldData: make(map[string]string),
		Creators:  make(map[string][]NameData),
	}
}

// ItemFromStored rebuilds an item from its persisted column triplet.
// An unknown type code fails with ErrSchemaViolation; malformed JSON in
// either column surfaces as an error. The id is supplied by the store.
func ItemFromStored(id int64, typeCode, fieldJSON, creatorsJSON string) (*Item, error) {
	t, err := schema.TypeByName(typeCode)
	if err != nil {
		return nil, fmt.Errorf("item %d type %q: %w", id, typeCode, ErrSchemaViolation)
	}

	fieldData := make(map[string]string)
	if err := json.Unmarshal([]byte(fieldJSON), &fieldData); err != nil {
		return nil, fmt.Errorf("item %d field data: %w", id, err)
	}

	rawCreators := make(map[string][]map[string]string)
	if err := json.Unmarshal([]byte(creatorsJSON), &rawCreators); err != nil {
		return nil, fmt.Errorf("item %d creators: %w", id, err)
	}
	creators := make(map[string][]NameData, len(rawCreators))
	for ctype, raw := range rawCreators {
		if len(raw) == 0 {
			continue // empty lists are never retained
		}
		names := make([]NameData, 0, len(raw))
		for _, m := range raw {
			names = append(names, NameFromTransport(m))
		}
		creators[ctype] = names
	}

	return &Item{ID: id, Type: t, FieldData: fieldData, Creators: creators}, nil
}

// ToStored converts the item to its persisted column triplet. Map keys are
// serialized in sorted order, so the output is deterministic and
// ItemFromStored(ToStored(x)) == x for any item whose keys are schema-valid.
func (i *Item) ToStored() (typeCode, fieldJSON, creatorsJSON string, err error) {
	fd, err := json.Marshal(i.FieldData)
	if err != nil {
		return "", "", "", fmt.Errorf("item %d field data: %w", i.ID, err)
	}

	transport := make(map[string][]map[string]string, len(i.Creators))
	for ctype, names := range i.Creators {
		if len(names) == 0 {
			continue
		}
		out := make([]map[string]string, 0, len(names))
		for _, n := range names {
			out = append(out, n.ToTransport())
		}
		transport[ctype] = out
	}
	cr, err := json.Marshal(transport)
	if err != nil {
		return "", "", "", fmt.Errorf("item %d creators: %w", i.ID, err)
	}

	return i.Type.Name(), string(fd), string(cr), nil
}

// Clone returns a deep copy of the item's type, fields, and creators with a
// zero ID. Backs the duplicate operation.
func (i *Item) Clone() *Item {
	dup := NewItem(i.Type)
	for k, v := range i.FieldData {
		dup.FieldData[k] = v
	}
	for ctype, names := range i.Creators {
		dup.Creators[ctype] = append([]NameData(nil), names...)
	}
	return dup
}

// MainCreator returns the creator shown in item tables: the first creator in
// the type's primary slot, else the first creator of any valid type in
// schema order, else the first of any remaining type in sorted order, else
// nil.
func (i *Item) MainCreator() *NameData {
	if names := i.Creators[i.Type.PrimaryCreatorType()]; len(names) > 0 {
		return &names[0]
	}
	for _, ctype := range i.Type.CreatorTypes() {
		if names := i.Creators[ctype]; len(names) > 0 {
			return &names[0]
		}
	}
	// Stale creator types persisted by a newer schema.
	extra := make([]string, 0, len(i.Creators))
	for ctype := range i.Creators {
		extra = append(extra, ctype)
	}
	sort.Strings(extra)
	for _, ctype := range extra {
		if names := i.Creators[ctype]; len(names) > 0 {
			return &names[0]
		}
	}
	return nil
}

// Title returns the item's title field, blank when unset.
func (i *Item) Title() string {
	return i.FieldData["title"]
}

// Matches reports whether the case-folded query is a substring of the
// item's type display name, any field value, or any rendered creator name.
// Pass casefolded == true when the query is already lower-cased.
func (i *Item) Matches(query string, casefolded bool) bool {
	if !casefolded {
		query = strings.ToLower(query)
	}
	if query == "" {
		return true
	}

	typeName := i.Type.Name()
	if display, err := schema.TypeDisplayName(typeName); err == nil {
		typeName = display
	}
	if strings.Contains(strings.ToLower(typeName), query) {
		return true
	}
	for _, value := range i.FieldData {
		if strings.Contains(strings.ToLower(value), query) {
			return true
		}
	}
	for _, names := range i.Creators {
		for _, n := range names {
			if strings.Contains(strings.ToLower(n.Render()), query) {
				return true
			}
		}
	}
	return false
}

// SetField sets a field value directly.
func (i *Item) SetField(name, value string) {
	i.FieldData[name] = value
}

// ClearField removes a field value. Clearing the synthetic item-type
// pseudo-field fails with ErrProtectedField.
func (i *Item) ClearField(name string) error {
	if name == schema.FieldItemType {
		return fmt.Errorf("clear %s: %w", name, ErrProtectedField)
	}
	delete(i.FieldData, name)
	return nil
}

// AddCreator appends a creator to the ordered list for the given type,
// creating the list if absent.
func (i *Item) AddCreator(creatorType string, name NameData) {
	i.Creators[creatorType] = append(i.Creators[creatorType], name)
}

// RemoveCreator removes the creator at the given position. When the list
// becomes empty the creator-type key is removed entirely; empty lists are
// never retained. Fails with ErrNotFound when the type or index is stale.
func (i *Item) RemoveCreator(creatorType string, index int) error {
	names, ok := i.Creators[creatorType]
	if !ok || index < 0 || index >= len(names) {
		return fmt.Errorf("creator %s[%d]: %w", creatorType, index, ErrNotFound)
	}
	names = append(names[:index], names[index+1:]...)
	if len(names) == 0 {
		delete(i.Creators, creatorType)
	} else {
		i.Creators[creatorType] = names
	}
	return nil
}
