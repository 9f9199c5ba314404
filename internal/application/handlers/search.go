package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/person-search/internal/domain/entities"
	"github.com/ersonp/person-search/internal/domain/services"
)

// SearchHandler handles name searches and record browsing.
type SearchHandler struct {
	searchService *services.SearchService
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// SearchResult contains the result of a name search.
type SearchResult struct {
	Query   string
	Persons []entities.Person
}

// AddRequest describes a single record to insert.
type AddRequest struct {
	Name       string
	Platform   string
	ProfileURL string
	Confidence float64
	IsVerified bool
}

// HandleSearch returns the best matches for a name fragment.
// Store failures are returned unwrapped so callers can classify them.
func (h *SearchHandler) HandleSearch(ctx context.Context, name *string) (*SearchResult, error) {
	persons, err := h.searchService.Search(ctx, name)
	if err != nil {
		return nil, err
	}

	query := ""
	if name != nil {
		query = *name
	}

	return &SearchResult{
		Query:   query,
		Persons: persons,
	}, nil
}

// HandleList returns every stored record.
func (h *SearchHandler) HandleList(ctx context.Context) ([]entities.Person, error) {
	persons, err := h.searchService.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	return persons, nil
}

// HandleAdd builds a record stamped with the current time and saves it.
func (h *SearchHandler) HandleAdd(ctx context.Context, req AddRequest) (entities.Person, error) {
	person := entities.NewPerson(req.Name, req.Platform, req.ProfileURL, req.Confidence, req.IsVerified)

	saved, err := h.searchService.Save(ctx, person)
	if err != nil {
		return entities.Person{}, fmt.Errorf("saving record: %w", err)
	}
	return saved, nil
}
