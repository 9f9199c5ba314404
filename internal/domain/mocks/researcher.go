package mocks

import "context"

// Researcher is a mock implementation of ports.Researcher.
type Researcher struct {
	Summary string
	Err     error

	Calls     int
	LastName  string
	LastExtra string
}

// Research returns the configured summary or error.
func (m *Researcher) Research(_ context.Context, name, extra string) (string, error) {
	m.Calls++
	m.LastName = name
	m.LastExtra = extra
	if m.Err != nil {
		return "", m.Err
	}
	return m.Summary, nil
}
