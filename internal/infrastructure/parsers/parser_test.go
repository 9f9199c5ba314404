package parsers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestJSONParser_Parse_ValidInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []RawPerson
	}{
		{
			name:  "single record",
			input: `[{"name": "John Smith", "platform": "LinkedIn", "confidence": 0.95}]`,
			expected: []RawPerson{
				{Name: "John Smith", Platform: "LinkedIn", Confidence: floatPtr(0.95), LineNum: 1},
			},
		},
		{
			name:     "empty array",
			input:    "[]",
			expected: []RawPerson{},
		},
		{
			name:  "missing confidence stays nil",
			input: `[{"name": "John Smith", "platform": "LinkedIn"}]`,
			expected: []RawPerson{
				{Name: "John Smith", Platform: "LinkedIn", LineNum: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &JSONParser{}
			result, err := parser.Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestJSONParser_Parse_AllFields(t *testing.T) {
	input := `[{
		"id": 7,
		"name": "Sarah Johnson",
		"platform": "Twitter",
		"profileUrl": "https://twitter.com/sarahjohnson",
		"confidence": 0.91,
		"isVerified": true,
		"lastSeen": "2025-03-01T12:00:00Z"
	}]`

	parser := &JSONParser{}
	result, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result, 1)

	person := result[0]
	assert.Equal(t, "Sarah Johnson", person.Name)
	assert.Equal(t, "Twitter", person.Platform)
	assert.Equal(t, "https://twitter.com/sarahjohnson", person.ProfileURL)
	require.NotNil(t, person.Confidence)
	assert.Equal(t, 0.91, *person.Confidence)
	assert.True(t, person.IsVerified)
	require.NotNil(t, person.LastSeen)
	assert.True(t, person.LastSeen.Equal(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)))
}

func TestJSONParser_Parse_InvalidInput(t *testing.T) {
	parser := &JSONParser{}
	_, err := parser.Parse(strings.NewReader("not json"))
	require.Error(t, err)
}

func TestCSVParser_Parse_ValidInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []RawPerson
	}{
		{
			name:  "required columns only",
			input: "name,platform,confidence\nJohn Smith,LinkedIn,0.95\n",
			expected: []RawPerson{
				{Name: "John Smith", Platform: "LinkedIn", Confidence: floatPtr(0.95), LineNum: 2},
			},
		},
		{
			name:     "empty CSV (header only)",
			input:    "name,platform,confidence\n",
			expected: nil,
		},
		{
			name:  "columns in different order",
			input: "confidence,platform,name\n0.88,Twitter,John Smith\n",
			expected: []RawPerson{
				{Name: "John Smith", Platform: "Twitter", Confidence: floatPtr(0.88), LineNum: 2},
			},
		},
		{
			name:  "empty confidence stays nil",
			input: "name,platform,confidence\nJohn Smith,Twitter,\n",
			expected: []RawPerson{
				{Name: "John Smith", Platform: "Twitter", LineNum: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &CSVParser{}
			result, err := parser.Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCSVParser_Parse_AllColumns(t *testing.T) {
	input := "name,platform,profile_url,confidence,is_verified,last_seen\n" +
		"Michael Brown,Instagram,https://instagram.com/michaelbrown,0.87,false,2025-03-01T12:00:00Z\n" +
		"Michael Brown,LinkedIn,https://linkedin.com/in/michaelbrown,0.93,true,\n"

	parser := &CSVParser{}
	result, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result, 2)

	first := result[0]
	assert.Equal(t, "Michael Brown", first.Name)
	assert.Equal(t, "Instagram", first.Platform)
	assert.Equal(t, "https://instagram.com/michaelbrown", first.ProfileURL)
	assert.Equal(t, 0.87, *first.Confidence)
	assert.False(t, first.IsVerified)
	require.NotNil(t, first.LastSeen)
	assert.Equal(t, 2, first.LineNum)

	second := result[1]
	assert.True(t, second.IsVerified)
	assert.Nil(t, second.LastSeen)
	assert.Equal(t, 3, second.LineNum)
}

func TestCSVParser_Parse_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{
			name:   "empty input",
			input:  "",
			errMsg: "reading CSV header",
		},
		{
			name:   "missing name column",
			input:  "platform,confidence\nLinkedIn,0.9\n",
			errMsg: "missing required column: name",
		},
		{
			name:   "missing confidence column",
			input:  "name,platform\nJohn,LinkedIn\n",
			errMsg: "missing required column: confidence",
		},
		{
			name:   "invalid confidence value",
			input:  "name,platform,confidence\nJohn,LinkedIn,high\n",
			errMsg: "invalid confidence value",
		},
		{
			name:   "invalid is_verified value",
			input:  "name,platform,confidence,is_verified\nJohn,LinkedIn,0.9,maybe\n",
			errMsg: "invalid is_verified value",
		},
		{
			name:   "invalid last_seen value",
			input:  "name,platform,confidence,last_seen\nJohn,LinkedIn,0.9,yesterday\n",
			errMsg: "invalid last_seen value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &CSVParser{}
			_, err := parser.Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestForFormat(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFormat("json"))
	assert.IsType(t, &CSVParser{}, ForFormat("CSV"))
	assert.Nil(t, ForFormat("unknown"))
}

func TestForFile(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFile("persons.json"))
	assert.IsType(t, &CSVParser{}, ForFile("data.csv"))
	assert.Nil(t, ForFile("file.txt"))
	assert.Nil(t, ForFile("noextension"))
}
