// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/person-search/internal/domain/entities"
)

// PersonStore defines the persistent collection of identity records.
// Implementations wrap driver failures with entities.ErrStoreUnavailable.
type PersonStore interface {
	// EnsureSchema creates the persons table if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the database connection.
	Close() error

	// Insert validates the record, assigns it a unique ID and persists it.
	// On success person.ID holds the assigned ID.
	Insert(ctx context.Context, person *entities.Person) error

	// ListAll returns every record in insertion order.
	ListAll(ctx context.Context) ([]entities.Person, error)

	// SearchByNameFragment returns the records whose name contains fragment,
	// compared case-insensitively, ordered by confidence descending with ties
	// in insertion order, capped at entities.MaxSearchResults.
	SearchByNameFragment(ctx context.Context, fragment string) ([]entities.Person, error)

	// Clear removes all records.
	Clear(ctx context.Context) error

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Ping checks the store is reachable.
	Ping(ctx context.Context) error
}
