// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for personsearch configuration.
	DefaultConfigDir = ".personsearch"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultDatabaseFile is the default SQLite database file name.
	DefaultDatabaseFile = "persons.db"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds static infrastructure configuration (read-only after load).
type Config struct {
	Server ServerConfig `yaml:"server,omitempty"`
	Store  StoreConfig  `yaml:"store,omitempty"`
	Log    LogConfig    `yaml:"log,omitempty"`
	LLM    LLMConfig    `yaml:"llm,omitempty"`
}

// ServerConfig holds configuration for the HTTP front end.
type ServerConfig struct {
	Addr            string        `yaml:"addr,omitempty"`
	AllowedOrigins  []string      `yaml:"allowed_origins,omitempty"`
	ReadTimeout     time.Duration `yaml:"read_timeout,omitempty"`
	WriteTimeout    time.Duration `yaml:"write_timeout,omitempty"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout,omitempty"`
}

// StoreConfig selects and configures the record store.
type StoreConfig struct {
	Driver   string         `yaml:"driver,omitempty"`
	SQLite   SQLiteConfig   `yaml:"sqlite,omitempty"`
	Postgres PostgresConfig `yaml:"postgres,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite relational database.
type SQLiteConfig struct {
	// Path is the file path to the SQLite database, or ":memory:".
	// Relative paths are resolved against the config base path.
	Path string `yaml:"path,omitempty"`
}

// PostgresConfig holds configuration for the PostgreSQL relational database.
type PostgresConfig struct {
	DSN string `yaml:"dsn,omitempty"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level,omitempty"`
	// Format is "json" (production encoder) or "console" (development encoder).
	Format string `yaml:"format,omitempty"`
}

// LLMConfig holds configuration for the LLM provider used by person research.
type LLMConfig struct {
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
	APIKey   string `yaml:"api_key,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			AllowedOrigins:  []string{"http://localhost:5173", "http://localhost:3000"},
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Store: StoreConfig{
			Driver: DriverSQLite,
			SQLite: SQLiteConfig{
				Path: filepath.Join(DefaultConfigDir, DefaultDatabaseFile),
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		LLM: LLMConfig{
			Provider: "openai",
			Model:    "gpt-4o-mini",
		},
	}
}

// Load loads configuration from the .personsearch directory in the given path.
// A missing config file is not an error: defaults plus environment overrides apply.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	cfg.resolvePaths(basePath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if addr := os.Getenv("PERSONSEARCH_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if driver := os.Getenv("PERSONSEARCH_STORE_DRIVER"); driver != "" {
		c.Store.Driver = driver
	}
	if path := os.Getenv("PERSONSEARCH_SQLITE_PATH"); path != "" {
		c.Store.SQLite.Path = path
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		c.Store.Postgres.DSN = dsn
	}
	if level := os.Getenv("PERSONSEARCH_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && c.LLM.APIKey == "" {
		c.LLM.APIKey = key
	}
}

// resolvePaths makes a relative SQLite path absolute under basePath.
func (c *Config) resolvePaths(basePath string) {
	path := c.Store.SQLite.Path
	if path == "" || path == ":memory:" || strings.HasPrefix(path, "file:") || filepath.IsAbs(path) {
		return
	}
	c.Store.SQLite.Path = filepath.Join(basePath, path)
}

// Validate checks the configuration for inconsistent settings.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverSQLite:
		if c.Store.SQLite.Path == "" {
			return fmt.Errorf("store.sqlite.path is required for the %s driver", DriverSQLite)
		}
	case DriverPostgres:
		if c.Store.Postgres.DSN == "" {
			return fmt.Errorf("store.postgres.dsn (or DATABASE_URL) is required for the %s driver", DriverPostgres)
		}
	default:
		return fmt.Errorf("unknown store driver %q (valid: %s, %s)", c.Store.Driver, DriverSQLite, DriverPostgres)
	}

	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log format %q (valid: json, console)", c.Log.Format)
	}

	return nil
}

// ResearchEnabled reports whether person research can be wired.
func (c *Config) ResearchEnabled() bool {
	return c.LLM.APIKey != ""
}

// ConfigDir returns the path to the .personsearch config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}
