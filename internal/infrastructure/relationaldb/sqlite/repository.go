// Package sqlite provides a SQLite implementation of the PersonStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ersonp/person-search/internal/domain/entities"
	"github.com/ersonp/person-search/internal/infrastructure/config"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// likeEscaper escapes LIKE wildcards so fragments match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repository implements ports.PersonStore using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	if cfg.Path != ":memory:" && !strings.HasPrefix(cfg.Path, "file:") {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Each pooled connection to ":memory:" would get its own empty database
	if cfg.Path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// unavailable wraps a driver failure so callers can detect it with errors.Is.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, entities.ErrStoreUnavailable, err)
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- One row per platform sighting of a person
	CREATE TABLE IF NOT EXISTS persons (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		normalized_name TEXT NOT NULL,
		platform TEXT NOT NULL,
		profile_url TEXT,
		confidence REAL NOT NULL,
		is_verified INTEGER NOT NULL DEFAULT 0,
		last_seen TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_persons_normalized_name ON persons(normalized_name);
	CREATE INDEX IF NOT EXISTS idx_persons_confidence ON persons(confidence DESC);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return unavailable("creating schema", err)
	}
	return nil
}

// Insert validates and saves a new record, setting person.ID.
func (r *Repository) Insert(ctx context.Context, person *entities.Person) error {
	if err := person.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO persons (name, normalized_name, platform, profile_url, confidence, is_verified, last_seen)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	result, err := r.db.ExecContext(ctx, query,
		person.Name,
		person.NormalizedName(),
		person.Platform,
		nullString(person.ProfileURL),
		person.Confidence,
		person.IsVerified,
		person.LastSeen.UTC(),
	)
	if err != nil {
		return unavailable("inserting person", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return unavailable("reading inserted id", err)
	}
	person.ID = id
	return nil
}

// ListAll returns every record in insertion order.
func (r *Repository) ListAll(ctx context.Context) ([]entities.Person, error) {
	query := `
		SELECT id, name, platform, profile_url, confidence, is_verified, last_seen
		FROM persons
		ORDER BY id ASC
	`
	return r.queryPersons(ctx, "listing persons", query)
}

// SearchByNameFragment returns the top records whose name contains fragment.
// Equal confidences keep insertion order.
func (r *Repository) SearchByNameFragment(ctx context.Context, fragment string) ([]entities.Person, error) {
	pattern := "%" + likeEscaper.Replace(entities.NormalizeName(fragment)) + "%"
	query := `
		SELECT id, name, platform, profile_url, confidence, is_verified, last_seen
		FROM persons
		WHERE normalized_name LIKE ? ESCAPE '\'
		ORDER BY confidence DESC, id ASC
		LIMIT ?
	`
	return r.queryPersons(ctx, "searching persons", query, pattern, entities.MaxSearchResults)
}

// Clear removes all records.
func (r *Repository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM persons`); err != nil {
		return unavailable("clearing persons", err)
	}
	return nil
}

// Count returns the number of stored records.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM persons`).Scan(&count)
	if err != nil {
		return 0, unavailable("counting persons", err)
	}
	return count, nil
}

// Ping checks the database connection.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return unavailable("pinging sqlite", err)
	}
	return nil
}

// queryPersons runs a query and scans the persons it returns.
func (r *Repository) queryPersons(ctx context.Context, op, query string, args ...any) ([]entities.Person, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, unavailable(op, err)
	}
	defer rows.Close()

	result := make([]entities.Person, 0)
	for rows.Next() {
		var (
			person     entities.Person
			profileURL sql.NullString
			lastSeen   sql.NullTime
		)
		if err := rows.Scan(
			&person.ID,
			&person.Name,
			&person.Platform,
			&profileURL,
			&person.Confidence,
			&person.IsVerified,
			&lastSeen,
		); err != nil {
			return nil, unavailable("scanning person", err)
		}
		person.ProfileURL = profileURL.String
		if lastSeen.Valid {
			person.LastSeen = lastSeen.Time
		}
		result = append(result, person)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(op, err)
	}
	return result, nil
}

// nullString stores empty strings as NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
