// Package parsers provides parsers for importing person records from various formats.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
	"time"
)

// RawPerson represents a record parsed from an external source before validation.
type RawPerson struct {
	Name       string     `json:"name"`
	Platform   string     `json:"platform"`
	ProfileURL string     `json:"profileUrl,omitempty"`
	Confidence *float64   `json:"confidence,omitempty"` // Pointer to distinguish 0 from unset
	IsVerified bool       `json:"isVerified,omitempty"`
	LastSeen   *time.Time `json:"lastSeen,omitempty"`
	LineNum    int        `json:"-"` // Line number in source file (set by parser)
}

// Parser defines the interface for parsing records from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawPerson, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	default:
		return nil
	}
}
