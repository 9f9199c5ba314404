package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ersonp/person-search/internal/domain/services"
	"github.com/ersonp/person-search/internal/infrastructure/parsers"
)

// ImportHandler loads identity records from JSON or CSV files.
type ImportHandler struct {
	service *services.ImportService
}

// NewImportHandler creates a new import handler.
func NewImportHandler(service *services.ImportService) *ImportHandler {
	return &ImportHandler{service: service}
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	// Format is "json", "csv", or "auto" (by file extension). Empty means auto.
	Format  string
	DryRun  bool
	Replace bool
}

// ImportResult reports how many records were accepted and which rows were rejected.
type ImportResult = services.ImportResult

// Handle parses filePath and hands the rows to the import service.
// An empty file imports nothing and leaves the store untouched, even with Replace.
func (h *ImportHandler) Handle(ctx context.Context, filePath string, opts ImportOptions) (*ImportResult, error) {
	parser, err := resolveParser(filePath, opts.Format)
	if err != nil {
		return nil, err
	}

	raws, err := readRecords(filePath, parser)
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return &ImportResult{}, nil
	}

	return h.service.Import(ctx, raws, services.ImportOptions{
		DryRun:  opts.DryRun,
		Replace: opts.Replace,
	})
}

func resolveParser(filePath, format string) (parsers.Parser, error) {
	if format == "" || format == "auto" {
		if p := parsers.ForFile(filePath); p != nil {
			return p, nil
		}
		return nil, fmt.Errorf("unsupported format for file %s (extension %q)", filePath, filepath.Ext(filePath))
	}
	if p := parsers.ForFormat(format); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("unsupported format %q", format)
}

func readRecords(filePath string, parser parsers.Parser) ([]parsers.RawPerson, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	raws, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}
	return raws, nil
}
