package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ersonp/person-search/internal/domain/entities"
	"github.com/ersonp/person-search/internal/infrastructure/parsers"
)

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun  bool // Validate without saving
	Replace bool // Clear the store before inserting
}

// ImportError represents an error for a specific record during import.
type ImportError struct {
	Line    int    // Line number (1-indexed, 0 if unknown)
	Message string // Human-readable error message
}

func (e ImportError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported int
	Errors   []ImportError
}

// ImportService handles importing records from external sources.
type ImportService struct {
	provisioner *ProvisionService
}

// NewImportService creates a new import service.
func NewImportService(provisioner *ProvisionService) *ImportService {
	return &ImportService{
		provisioner: provisioner,
	}
}

// Import validates raw records and inserts the valid ones. Invalid rows are
// reported in the result and do not stop the import.
func (s *ImportService) Import(ctx context.Context, raws []parsers.RawPerson, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}

	persons, importErrors := convertRawPersons(raws)
	result.Errors = importErrors

	if opts.DryRun {
		result.Imported = len(persons)
		return result, nil
	}

	if len(persons) == 0 {
		return result, nil
	}

	var (
		imported int
		err      error
	)
	if opts.Replace {
		imported, err = s.provisioner.Seed(ctx, persons)
	} else {
		imported, err = s.provisioner.Append(ctx, persons)
	}
	result.Imported = imported
	if err != nil {
		return result, fmt.Errorf("saving records: %w", err)
	}

	return result, nil
}

// convertRawPersons validates raw records and converts the valid ones.
func convertRawPersons(raws []parsers.RawPerson) ([]entities.Person, []ImportError) {
	persons := make([]entities.Person, 0, len(raws))
	var errs []ImportError
	now := time.Now()

	for i := range raws {
		raw := &raws[i]
		lineNum := raw.LineNum
		if lineNum == 0 {
			lineNum = i + 1
		}

		if raw.Confidence == nil {
			errs = append(errs, ImportError{Line: lineNum, Message: "confidence is required"})
			continue
		}

		person := entities.Person{
			Name:       raw.Name,
			Platform:   raw.Platform,
			ProfileURL: raw.ProfileURL,
			Confidence: *raw.Confidence,
			IsVerified: raw.IsVerified,
			LastSeen:   now,
		}
		if raw.LastSeen != nil {
			person.LastSeen = *raw.LastSeen
		}

		if err := person.Validate(); err != nil {
			errs = append(errs, ImportError{Line: lineNum, Message: err.Error()})
			continue
		}

		persons = append(persons, person)
	}

	return persons, errs
}
