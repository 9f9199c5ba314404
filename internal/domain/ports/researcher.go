package ports

import "context"

// Researcher produces a free-text web-presence summary for a person.
type Researcher interface {
	// Research looks up name, using extra as optional hints about the person.
	Research(ctx context.Context, name, extra string) (string, error)
}
