package types

// Collection is a user-named grouping of items. Membership is many-to-many
// and lives in the library store; deleting a collection never deletes its
// items. Names are mutable and not required to be unique.
type Collection struct {
	ID   int64
	Name string
}
