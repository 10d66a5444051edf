// Package kv provides the asynchronous key/value persistence primitive the
// expense store writes through. Implementations store opaque UTF-8 strings
// under string keys; the store treats them as a black box.
package kv

import "context"

// Well-known keys. The version suffix identifies the serialization schema
// so a future format change can migrate or reject older blobs.
const (
	ExpensesKey = "expenses:v1"
	BudgetsKey  = "budgets:v1"
)

// Store is the persistence port.
type Store interface {
	// Get returns the value at key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites the value at key. The write must be atomic: a
	// subsequent Get never observes a partially written value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
