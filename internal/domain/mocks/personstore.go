// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/ersonp/person-search/internal/domain/entities"
)

// PersonStore is an in-memory mock implementation of ports.PersonStore.
// It follows the same matching and ordering rules as the real stores.
type PersonStore struct {
	Persons []entities.Person
	Err     error

	// Call counters, for asserting whether the store was touched.
	InsertCalls int
	SearchCalls int
	ClearCalls  int

	// LastFragment is the fragment passed to the most recent search.
	LastFragment string

	nextID int64
}

// NewPersonStore creates a mock store preloaded with the given records.
// Records without an ID are assigned one in order.
func NewPersonStore(persons ...entities.Person) *PersonStore {
	m := &PersonStore{}
	for i := range persons {
		p := persons[i]
		m.assignID(&p)
		m.Persons = append(m.Persons, p)
	}
	return m
}

func (m *PersonStore) assignID(p *entities.Person) {
	if p.ID == 0 {
		m.nextID++
		p.ID = m.nextID
	} else if p.ID > m.nextID {
		m.nextID = p.ID
	}
}

// EnsureSchema returns the configured error.
func (m *PersonStore) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close closes the mock store.
func (m *PersonStore) Close() error {
	return nil
}

// Insert validates and appends the record.
func (m *PersonStore) Insert(_ context.Context, person *entities.Person) error {
	m.InsertCalls++
	if m.Err != nil {
		return m.Err
	}
	if err := person.Validate(); err != nil {
		return err
	}
	person.ID = 0
	m.assignID(person)
	m.Persons = append(m.Persons, *person)
	return nil
}

// ListAll returns a copy of all records.
func (m *PersonStore) ListAll(_ context.Context) ([]entities.Person, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]entities.Person, len(m.Persons))
	copy(result, m.Persons)
	return result, nil
}

// SearchByNameFragment matches case-insensitively and returns the top results.
func (m *PersonStore) SearchByNameFragment(_ context.Context, fragment string) ([]entities.Person, error) {
	m.SearchCalls++
	m.LastFragment = fragment
	if m.Err != nil {
		return nil, m.Err
	}

	needle := entities.NormalizeName(fragment)
	result := make([]entities.Person, 0, entities.MaxSearchResults)
	for _, p := range m.Persons {
		if strings.Contains(p.NormalizedName(), needle) {
			result = append(result, p)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Confidence > result[j].Confidence
	})
	if len(result) > entities.MaxSearchResults {
		result = result[:entities.MaxSearchResults]
	}
	return result, nil
}

// Clear removes all records.
func (m *PersonStore) Clear(_ context.Context) error {
	m.ClearCalls++
	if m.Err != nil {
		return m.Err
	}
	m.Persons = nil
	return nil
}

// Count returns the number of records.
func (m *PersonStore) Count(_ context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Persons), nil
}

// Ping returns the configured error.
func (m *PersonStore) Ping(_ context.Context) error {
	return m.Err
}
