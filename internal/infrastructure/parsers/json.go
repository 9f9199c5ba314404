package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses records from a JSON array.
type JSONParser struct{}

// Parse reads JSON from the reader and returns parsed records.
func (p *JSONParser) Parse(r io.Reader) ([]RawPerson, error) {
	var persons []RawPerson

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&persons); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	// Array index + 1
	for i := range persons {
		persons[i].LineNum = i + 1
	}

	return persons, nil
}
