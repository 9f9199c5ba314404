package handlers

import (
	"context"

	"github.com/ersonp/person-search/internal/domain/services"
)

// ResearchHandler handles person research lookups.
type ResearchHandler struct {
	service *services.ResearchService
}

// NewResearchHandler creates a new research handler.
func NewResearchHandler(service *services.ResearchService) *ResearchHandler {
	return &ResearchHandler{
		service: service,
	}
}

// ResearchResult contains a research summary.
type ResearchResult struct {
	Name    string
	Summary string
}

// Enabled reports whether a researcher is configured.
func (h *ResearchHandler) Enabled() bool {
	return h.service.Enabled()
}

// Handle researches the named person using optional free-text context.
func (h *ResearchHandler) Handle(ctx context.Context, name, extra string) (*ResearchResult, error) {
	summary, err := h.service.Research(ctx, name, extra)
	if err != nil {
		return nil, err
	}
	return &ResearchResult{
		Name:    name,
		Summary: summary,
	}, nil
}
