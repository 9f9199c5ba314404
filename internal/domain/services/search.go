// Package services implements the person search use cases.
package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ersonp/person-search/internal/domain/entities"
	"github.com/ersonp/person-search/internal/domain/ports"
)

// SearchService answers name searches against the person store.
type SearchService struct {
	store  ports.PersonStore
	logger *zap.Logger
}

// NewSearchService creates a new search service. A nil logger disables logging.
func NewSearchService(store ports.PersonStore, logger *zap.Logger) *SearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{
		store:  store,
		logger: logger,
	}
}

// Search returns up to entities.MaxSearchResults records whose name contains
// the trimmed rawName, highest confidence first. A nil or blank rawName yields
// an empty result without touching the store. Store errors are returned as is.
func (s *SearchService) Search(ctx context.Context, rawName *string) ([]entities.Person, error) {
	if rawName == nil {
		return []entities.Person{}, nil
	}
	fragment := strings.TrimSpace(*rawName)
	if fragment == "" {
		return []entities.Person{}, nil
	}

	persons, err := s.store.SearchByNameFragment(ctx, fragment)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("name search",
		zap.String("fragment", fragment),
		zap.Int("results", len(persons)),
	)
	return persons, nil
}

// ListAll returns every stored record.
func (s *SearchService) ListAll(ctx context.Context) ([]entities.Person, error) {
	return s.store.ListAll(ctx)
}

// Save persists a single record and returns it with its assigned ID.
func (s *SearchService) Save(ctx context.Context, person entities.Person) (entities.Person, error) {
	if err := s.store.Insert(ctx, &person); err != nil {
		return entities.Person{}, err
	}
	return person, nil
}
