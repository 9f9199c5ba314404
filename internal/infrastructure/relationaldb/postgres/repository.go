// Package postgres provides a PostgreSQL implementation of the PersonStore
// interface on top of GORM.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ersonp/person-search/internal/domain/entities"
	"github.com/ersonp/person-search/internal/infrastructure/config"
)

// likeEscaper escapes LIKE wildcards so fragments match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// personRow is the persisted shape of entities.Person.
type personRow struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	Name           string  `gorm:"not null"`
	NormalizedName string  `gorm:"not null;index"`
	Platform       string  `gorm:"not null"`
	ProfileURL     *string `gorm:"column:profile_url"`
	Confidence     float64 `gorm:"not null"`
	IsVerified     bool    `gorm:"not null;default:false"`
	LastSeen       time.Time
}

// TableName keeps the table name aligned with the SQLite store.
func (personRow) TableName() string {
	return "persons"
}

func toRow(p *entities.Person) personRow {
	row := personRow{
		Name:           p.Name,
		NormalizedName: p.NormalizedName(),
		Platform:       p.Platform,
		Confidence:     p.Confidence,
		IsVerified:     p.IsVerified,
		LastSeen:       p.LastSeen.UTC(),
	}
	if p.ProfileURL != "" {
		url := p.ProfileURL
		row.ProfileURL = &url
	}
	return row
}

func (r personRow) toEntity() entities.Person {
	p := entities.Person{
		ID:         r.ID,
		Name:       r.Name,
		Platform:   r.Platform,
		Confidence: r.Confidence,
		IsVerified: r.IsVerified,
		LastSeen:   r.LastSeen,
	}
	if r.ProfileURL != nil {
		p.ProfileURL = *r.ProfileURL
	}
	return p
}

// Repository implements ports.PersonStore using PostgreSQL.
type Repository struct {
	db *gorm.DB
}

// NewRepository connects to PostgreSQL using the configured DSN.
func NewRepository(cfg config.PostgresConfig) (*Repository, error) {
	if cfg.DSN == "" {
		return nil, errors.New("postgres dsn is required")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w: %w", entities.ErrStoreUnavailable, err)
	}

	return &Repository{db: db}, nil
}

// NewRepositoryFromDB wraps an existing GORM connection.
func NewRepositoryFromDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// unavailable wraps a driver failure so callers can detect it with errors.Is.
func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, entities.ErrStoreUnavailable, err)
}

// EnsureSchema migrates the persons table.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&personRow{}); err != nil {
		return unavailable("migrating persons table", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("getting underlying connection: %w", err)
	}
	return sqlDB.Close()
}

// Insert validates and saves a new record, setting person.ID.
func (r *Repository) Insert(ctx context.Context, person *entities.Person) error {
	if err := person.Validate(); err != nil {
		return err
	}

	row := toRow(person)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return unavailable("inserting person", err)
	}
	person.ID = row.ID
	return nil
}

// ListAll returns every record in insertion order.
func (r *Repository) ListAll(ctx context.Context) ([]entities.Person, error) {
	var rows []personRow
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, unavailable("listing persons", err)
	}
	return toEntities(rows), nil
}

// SearchByNameFragment returns the top records whose name contains fragment.
// Equal confidences keep insertion order.
func (r *Repository) SearchByNameFragment(ctx context.Context, fragment string) ([]entities.Person, error) {
	pattern := "%" + likeEscaper.Replace(entities.NormalizeName(fragment)) + "%"

	var rows []personRow
	err := r.db.WithContext(ctx).
		Where(`normalized_name LIKE ? ESCAPE '\'`, pattern).
		Order("confidence DESC").
		Order("id ASC").
		Limit(entities.MaxSearchResults).
		Find(&rows).Error
	if err != nil {
		return nil, unavailable("searching persons", err)
	}
	return toEntities(rows), nil
}

// Clear removes all records.
func (r *Repository) Clear(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Exec("DELETE FROM persons").Error; err != nil {
		return unavailable("clearing persons", err)
	}
	return nil
}

// Count returns the number of stored records.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&personRow{}).Count(&count).Error; err != nil {
		return 0, unavailable("counting persons", err)
	}
	return int(count), nil
}

// Ping checks the database connection.
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return unavailable("pinging postgres", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return unavailable("pinging postgres", err)
	}
	return nil
}

func toEntities(rows []personRow) []entities.Person {
	result := make([]entities.Person, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toEntity())
	}
	return result
}
