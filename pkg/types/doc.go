// Package types defines the entities of a pymetheus library (items,
// contributor names, collections) together with the standard error values
// shared by the storage and view layers.
package types
