// Package schema defines the compiled-in bibliographic schema: the set of
// item types, the fields and creator types valid for each, human-readable
// display names, and field classification (date fields, standard fields).
//
// The schema is fixed at build time. Every ItemType has exactly one shared
// instance; callers compare types by pointer or by Name.
package schema

import (
	"errors"
	"fmt"
)

// ErrUnknownSchemaCode is returned when a type, field, or creator-type code
// is not part of the compiled-in schema.
var ErrUnknownSchemaCode = errors.New("unknown schema code")

// FieldItemType is the synthetic pseudo-field presented as the first row of
// a field editor. It is not part of any ItemType's field list and cannot be
// cleared or edited like a regular field.
const FieldItemType = "itemType"

// ItemType describes one bibliographic record type: its code name, the
// ordered set of fields valid for it, and the ordered set of creator types
// valid for it. The first creator type is the primary slot (usually author).
type ItemType struct {
	name         string
	fields       []string
	creatorTypes []string
}

// Name returns the type's code name (e.g. "journalArticle").
func (t *ItemType) Name() string { return t.name }

// Fields returns the ordered field codes valid for this type.
// The returned slice is a copy; mutating it does not affect the schema.
func (t *ItemType) Fields() []string {
	out := make([]string, len(t.fields))
	copy(out, t.fields)
	return out
}

// CreatorTypes returns the ordered creator-type codes valid for this type.
func (t *ItemType) CreatorTypes() []string {
	out := make([]string, len(t.creatorTypes))
	copy(out, t.creatorTypes)
	return out
}

// PrimaryCreatorType returns the primary creator slot for this type, the
// first entry of its creator-type list.
func (t *ItemType) PrimaryCreatorType() string {
	return t.creatorTypes[0]
}

// ValidField reports whether the field code is valid for this type.
func (t *ItemType) ValidField(code string) bool {
	for _, f := range t.fields {
		if f == code {
			return true
		}
	}
	return false
}

// ValidCreatorType reports whether the creator-type code is valid for this
// type.
func (t *ItemType) ValidCreatorType(code string) bool {
	for _, c := range t.creatorTypes {
		if c == code {
			return true
		}
	}
	return false
}

// Types returns all item types in schema order.
func Types() []*ItemType {
	out := make([]*ItemType, len(itemTypes))
	copy(out, itemTypes)
	return out
}

// TypeByName returns the shared ItemType instance for the given code.
// Returns ErrUnknownSchemaCode if the code is not a known item type.
func TypeByName(code string) (*ItemType, error) {
	t, ok := itemTypesByName[code]
	if !ok {
		return nil, fmt.Errorf("item type %q: %w", code, ErrUnknownSchemaCode)
	}
	return t, nil
}

// TypeDisplayName returns the human-readable name of an item type code.
// Returns ErrUnknownSchemaCode for codes outside the schema.
func TypeDisplayName(code string) (string, error) {
	name, ok := itemTypeNames[code]
	if !ok {
		return "", fmt.Errorf("item type %q: %w", code, ErrUnknownSchemaCode)
	}
	return name, nil
}

// FieldDisplayName returns the human-readable name of a field code,
// including the synthetic itemType pseudo-field.
// Returns ErrUnknownSchemaCode for codes outside the schema.
func FieldDisplayName(code string) (string, error) {
	name, ok := fieldNames[code]
	if !ok {
		return "", fmt.Errorf("field %q: %w", code, ErrUnknownSchemaCode)
	}
	return name, nil
}

// CreatorTypeDisplayName returns the human-readable name of a creator-type
// code. Returns ErrUnknownSchemaCode for codes outside the schema.
func CreatorTypeDisplayName(code string) (string, error) {
	name, ok := creatorTypeNames[code]
	if !ok {
		return "", fmt.Errorf("creator type %q: %w", code, ErrUnknownSchemaCode)
	}
	return name, nil
}

// IsDateField reports whether the field holds a calendar date and should be
// edited and validated as YYYY-MM-DD.
func IsDateField(code string) bool {
	return dateFields[code]
}

// IsStandardField reports whether the field is one of the standard fields
// shared by every item type, as opposed to a type-specific field.
func IsStandardField(code string) bool {
	return standardFieldSet[code]
}
