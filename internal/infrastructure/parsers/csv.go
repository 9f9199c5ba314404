package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// CSVParser parses records from CSV format.
type CSVParser struct{}

// Parse reads CSV from the reader and returns parsed records.
// Expected columns: name, platform, profile_url, confidence, is_verified, last_seen
func (p *CSVParser) Parse(r io.Reader) ([]RawPerson, error) {
	reader := csv.NewReader(r)

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}

	requiredCols := []string{"name", "platform", "confidence"}
	for _, col := range requiredCols {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// readRecords reads all data rows and converts them to RawPersons.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) ([]RawPerson, error) {
	var persons []RawPerson
	lineNum := 1 // Header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		person, err := p.parseRecord(record, colIndex, lineNum)
		if err != nil {
			return nil, err
		}
		persons = append(persons, person)
	}

	return persons, nil
}

// parseRecord converts a CSV record to a RawPerson.
func (p *CSVParser) parseRecord(record []string, colIndex map[string]int, lineNum int) (RawPerson, error) {
	person := RawPerson{
		Name:       getColumn(record, colIndex, "name"),
		Platform:   getColumn(record, colIndex, "platform"),
		ProfileURL: getColumn(record, colIndex, "profile_url"),
		LineNum:    lineNum,
	}

	if confStr := getColumn(record, colIndex, "confidence"); confStr != "" {
		conf, err := strconv.ParseFloat(confStr, 64)
		if err != nil {
			return RawPerson{}, fmt.Errorf("line %d: invalid confidence value %q: %w", lineNum, confStr, err)
		}
		person.Confidence = &conf
	}

	if verifiedStr := getColumn(record, colIndex, "is_verified"); verifiedStr != "" {
		verified, err := strconv.ParseBool(verifiedStr)
		if err != nil {
			return RawPerson{}, fmt.Errorf("line %d: invalid is_verified value %q: %w", lineNum, verifiedStr, err)
		}
		person.IsVerified = verified
	}

	if seenStr := getColumn(record, colIndex, "last_seen"); seenStr != "" {
		seen, err := time.Parse(time.RFC3339, seenStr)
		if err != nil {
			return RawPerson{}, fmt.Errorf("line %d: invalid last_seen value %q: %w", lineNum, seenStr, err)
		}
		person.LastSeen = &seen
	}

	return person, nil
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return strings.TrimSpace(record[idx])
	}
	return ""
}
