package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ersonp/person-search/internal/domain/entities"
	"github.com/ersonp/person-search/internal/domain/ports"
)

// ProvisionService loads records into the store outside the search path.
type ProvisionService struct {
	store  ports.PersonStore
	logger *zap.Logger
}

// NewProvisionService creates a new provisioning service.
func NewProvisionService(store ports.PersonStore, logger *zap.Logger) *ProvisionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProvisionService{
		store:  store,
		logger: logger,
	}
}

// Seed clears the store and inserts the given records in order.
// It stops at the first failed insert.
func (s *ProvisionService) Seed(ctx context.Context, records []entities.Person) (int, error) {
	if err := s.store.Clear(ctx); err != nil {
		return 0, fmt.Errorf("clearing store: %w", err)
	}

	inserted, err := s.insertAll(ctx, records)
	if err != nil {
		return inserted, err
	}

	s.logger.Info("store seeded", zap.Int("records", inserted))
	return inserted, nil
}

// SeedSamples replaces the store contents with the built-in sample records.
func (s *ProvisionService) SeedSamples(ctx context.Context) (int, error) {
	return s.Seed(ctx, entities.SampleRecords())
}

// Append inserts records without clearing the store first.
func (s *ProvisionService) Append(ctx context.Context, records []entities.Person) (int, error) {
	inserted, err := s.insertAll(ctx, records)
	if err != nil {
		return inserted, err
	}

	s.logger.Info("records appended", zap.Int("records", inserted))
	return inserted, nil
}

func (s *ProvisionService) insertAll(ctx context.Context, records []entities.Person) (int, error) {
	for i := range records {
		record := records[i]
		if err := s.store.Insert(ctx, &record); err != nil {
			return i, fmt.Errorf("inserting record %d (%s/%s): %w", i+1, record.Name, record.Platform, err)
		}
	}
	return len(records), nil
}
