package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ersonp/person-search/internal/domain/ports"
)

// ResearchDisclaimer is appended to every research summary.
const ResearchDisclaimer = "\n\nAlways verify information independently."

// ErrResearchUnavailable is returned when no researcher is configured.
var ErrResearchUnavailable = errors.New("person research is not configured")

// ErrBlankName is returned when a research request has no name.
var ErrBlankName = errors.New("name is required")

// ResearchService asks an external researcher about a person.
type ResearchService struct {
	researcher ports.Researcher
}

// NewResearchService creates a new research service. A nil researcher makes
// every call fail with ErrResearchUnavailable.
func NewResearchService(researcher ports.Researcher) *ResearchService {
	return &ResearchService{
		researcher: researcher,
	}
}

// Enabled reports whether a researcher is configured.
func (s *ResearchService) Enabled() bool {
	return s.researcher != nil
}

// Research returns the researcher's summary for name with the disclaimer appended.
func (s *ResearchService) Research(ctx context.Context, name, extra string) (string, error) {
	if s.researcher == nil {
		return "", ErrResearchUnavailable
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrBlankName
	}

	summary, err := s.researcher.Research(ctx, name, strings.TrimSpace(extra))
	if err != nil {
		return "", fmt.Errorf("researching person: %w", err)
	}

	return strings.TrimSpace(summary) + ResearchDisclaimer, nil
}
