package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/person-search/internal/domain/entities"
	"github.com/ersonp/person-search/internal/domain/mocks"
)

func strPtr(s string) *string { return &s }

func TestSearchService_Search_BlankInput(t *testing.T) {
	tests := []struct {
		name  string
		input *string
	}{
		{name: "nil", input: nil},
		{name: "empty", input: strPtr("")},
		{name: "spaces", input: strPtr("   ")},
		{name: "tabs and newlines", input: strPtr("\t\n ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewPersonStore(entities.SampleRecords()...)
			svc := NewSearchService(store, nil)

			result, err := svc.Search(context.Background(), tt.input)
			require.NoError(t, err)
			assert.NotNil(t, result)
			assert.Empty(t, result)
			assert.Equal(t, 0, store.SearchCalls, "blank input must not reach the store")
		})
	}
}

func TestSearchService_Search_TrimsInput(t *testing.T) {
	store := mocks.NewPersonStore(entities.SampleRecords()...)
	svc := NewSearchService(store, nil)

	_, err := svc.Search(context.Background(), strPtr("  John  "))
	require.NoError(t, err)
	assert.Equal(t, "John", store.LastFragment)
}

func TestSearchService_Search_JohnSmithScenario(t *testing.T) {
	store := mocks.NewPersonStore(
		entities.NewPerson("John Smith", "Twitter", "", 0.88, true),
		entities.NewPerson("John Smith", "LinkedIn", "", 0.95, true),
	)
	svc := NewSearchService(store, nil)

	result, err := svc.Search(context.Background(), strPtr("john"))
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "LinkedIn", result[0].Platform)
	assert.Equal(t, "Twitter", result[1].Platform)
}

func TestSearchService_Search_CapsAtFive(t *testing.T) {
	var records []entities.Person
	for i := 0; i < 8; i++ {
		records = append(records, entities.NewPerson(fmt.Sprintf("Anna %d", i), "LinkedIn", "", float64(i)/10, false))
	}
	store := mocks.NewPersonStore(records...)
	svc := NewSearchService(store, nil)

	result, err := svc.Search(context.Background(), strPtr("a"))
	require.NoError(t, err)
	require.Len(t, result, entities.MaxSearchResults)

	expected := []float64{0.7, 0.6, 0.5, 0.4, 0.3}
	for i, p := range result {
		assert.InDelta(t, expected[i], p.Confidence, 1e-9)
	}
}

func TestSearchService_Search_Properties(t *testing.T) {
	store := mocks.NewPersonStore(entities.SampleRecords()...)
	svc := NewSearchService(store, nil)
	ctx := context.Background()

	for _, query := range []string{"a", "JOHN", "son", "e", "Garcia", " davis "} {
		t.Run(query, func(t *testing.T) {
			result, err := svc.Search(ctx, strPtr(query))
			require.NoError(t, err)
			assert.LessOrEqual(t, len(result), entities.MaxSearchResults)

			fragment := strings.ToLower(strings.TrimSpace(query))
			for i, p := range result {
				assert.Contains(t, strings.ToLower(p.Name), fragment)
				if i > 0 {
					assert.GreaterOrEqual(t, result[i-1].Confidence, p.Confidence)
				}
			}

			again, err := svc.Search(ctx, strPtr(query))
			require.NoError(t, err)
			assert.Equal(t, result, again)
		})
	}
}

func TestSearchService_Search_NoMatch(t *testing.T) {
	store := mocks.NewPersonStore(entities.SampleRecords()...)
	svc := NewSearchService(store, nil)

	result, err := svc.Search(context.Background(), strPtr("zzz-no-match"))
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestSearchService_Search_StoreErrorPropagates(t *testing.T) {
	storeErr := fmt.Errorf("searching persons: %w", entities.ErrStoreUnavailable)
	store := &mocks.PersonStore{Err: storeErr}
	svc := NewSearchService(store, nil)

	_, err := svc.Search(context.Background(), strPtr("john"))
	require.Error(t, err)
	assert.Same(t, storeErr, err)
	assert.True(t, errors.Is(err, entities.ErrStoreUnavailable))
}

func TestSearchService_ListAll(t *testing.T) {
	store := mocks.NewPersonStore(entities.SampleRecords()...)
	svc := NewSearchService(store, nil)

	all, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 24)
}

func TestSearchService_Save(t *testing.T) {
	t.Run("assigns id", func(t *testing.T) {
		store := mocks.NewPersonStore()
		svc := NewSearchService(store, nil)

		saved, err := svc.Save(context.Background(), entities.NewPerson("Lisa Anderson", "Facebook", "", 0.88, true))
		require.NoError(t, err)
		assert.NotZero(t, saved.ID)
		assert.Len(t, store.Persons, 1)
	})

	t.Run("validation error", func(t *testing.T) {
		store := mocks.NewPersonStore()
		svc := NewSearchService(store, nil)

		_, err := svc.Save(context.Background(), entities.NewPerson("", "Facebook", "", 0.88, true))
		require.Error(t, err)
		assert.True(t, entities.IsValidationError(err))
		assert.Empty(t, store.Persons)
	})
}
