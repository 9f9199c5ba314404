// Package entities defines the core domain types.
package entities

import (
	"strings"
	"time"
)

// MaxSearchResults caps the number of records a name search returns.
const MaxSearchResults = 5

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Person is one platform-specific sighting of a person. Several records
// usually share a Name, one per platform the person was seen on.
type Person struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name" validate:"required"`
	Platform   string    `json:"platform" validate:"required"`
	ProfileURL string    `json:"profileUrl"`
	Confidence float64   `json:"confidence" validate:"gte=0,lte=1"`
	IsVerified bool      `json:"isVerified"`
	LastSeen   time.Time `json:"lastSeen"`
}

// NewPerson creates a record stamped with the current time as LastSeen.
// The ID is left zero; the store assigns it on insert.
func NewPerson(name, platform, profileURL string, confidence float64, verified bool) Person {
	return Person{
		Name:       name,
		Platform:   platform,
		ProfileURL: profileURL,
		Confidence: confidence,
		IsVerified: verified,
		LastSeen:   timeNow(),
	}
}

// NormalizedName returns the case-folded name used for substring matching.
func (p Person) NormalizedName() string {
	return NormalizeName(p.Name)
}

// NormalizeName converts a name to lowercase for case-insensitive matching.
// Surrounding whitespace is kept so stored names match exactly as written.
func NormalizeName(name string) string {
	return strings.ToLower(name)
}
