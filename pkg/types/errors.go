package types

import "errors"

// Entity and storage errors. Callers match these with errors.Is; the
// storage and view layers wrap them with context.
var (
	// ErrNotFound reports a stale id: the referenced collection or item no
	// longer exists in the library.
	ErrNotFound = errors.New("not found")

	// ErrSchemaViolation reports a persisted or supplied item type code that
	// is not part of the compiled-in schema.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrProtectedField reports an attempt to clear the synthetic item-type
	// pseudo-field.
	ErrProtectedField = errors.New("protected field")

	// ErrInvalidDate reports a user-entered date that does not match
	// YYYY-MM-DD calendar rules.
	ErrInvalidDate = errors.New("invalid date")
)
