package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/person-search/internal/domain/services"
)

// SeedHandler replaces the store contents with the sample records.
type SeedHandler struct {
	provisioner *services.ProvisionService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(provisioner *services.ProvisionService) *SeedHandler {
	return &SeedHandler{
		provisioner: provisioner,
	}
}

// SeedResult contains the number of records written.
type SeedResult struct {
	Seeded int
}

// Handle clears the store and loads the sample records.
func (h *SeedHandler) Handle(ctx context.Context) (*SeedResult, error) {
	n, err := h.provisioner.SeedSamples(ctx)
	if err != nil {
		return nil, fmt.Errorf("seeding sample records: %w", err)
	}
	return &SeedResult{Seeded: n}, nil
}
