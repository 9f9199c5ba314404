package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks the variables Load reads so the host environment can't leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PERSONSEARCH_ADDR",
		"PERSONSEARCH_STORE_DRIVER",
		"PERSONSEARCH_SQLITE_PATH",
		"DATABASE_URL",
		"PERSONSEARCH_LOG_LEVEL",
		"OPENAI_API_KEY",
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, filepath.Join(".personsearch", "persons.db"), cfg.Store.SQLite.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, filepath.Join(dir, ".personsearch", "persons.db"), cfg.Store.SQLite.Path)
	assert.False(t, cfg.ResearchEnabled())
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `
server:
  addr: ":9090"
  read_timeout: 5s
store:
  sqlite:
    path: data/people.db
log:
  level: debug
  format: console
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout, "unset fields keep defaults")
	assert.Equal(t, filepath.Join(dir, "data", "people.db"), cfg.Store.SQLite.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_DefaultFileParses(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, WriteDefault(dir))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("PERSONSEARCH_ADDR", "127.0.0.1:7000")
	t.Setenv("PERSONSEARCH_STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "host=db user=u dbname=persons sslmode=disable")
	t.Setenv("PERSONSEARCH_LOG_LEVEL", "warn")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "host=db user=u dbname=persons sslmode=disable", cfg.Store.Postgres.DSN)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.True(t, cfg.ResearchEnabled())
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, "server: [unclosed")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "unknown driver",
			mutate: func(c *Config) { c.Store.Driver = "mysql" },
			errMsg: "unknown store driver",
		},
		{
			name:   "postgres without dsn",
			mutate: func(c *Config) { c.Store.Driver = DriverPostgres },
			errMsg: "store.postgres.dsn",
		},
		{
			name:   "sqlite without path",
			mutate: func(c *Config) { c.Store.SQLite.Path = "" },
			errMsg: "store.sqlite.path",
		},
		{
			name:   "unknown log format",
			mutate: func(c *Config) { c.Log.Format = "xml" },
			errMsg: "unknown log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestResolvePaths(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "memory untouched", path: ":memory:", expected: ":memory:"},
		{name: "uri untouched", path: "file:test.db?mode=memory", expected: "file:test.db?mode=memory"},
		{name: "absolute untouched", path: "/var/lib/persons.db", expected: "/var/lib/persons.db"},
		{name: "relative joined", path: "persons.db", expected: filepath.Join("/srv/app", "persons.db")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Store.SQLite.Path = tt.path
			cfg.resolvePaths("/srv/app")
			assert.Equal(t, tt.expected, cfg.Store.SQLite.Path)
		})
	}
}

func TestWriteDefault_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDefault(dir))
	assert.True(t, Exists(dir))

	err := WriteDefault(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestConfigFilePath(t *testing.T) {
	assert.Equal(t, "/home/user/project/.personsearch", ConfigDir("/home/user/project"))
	assert.Equal(t, "/home/user/project/.personsearch/config.yaml", ConfigFilePath("/home/user/project"))
}
