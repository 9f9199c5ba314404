package config

import (
	"fmt"
	"os"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# person-search configuration

server:
  addr: ":8080"
  allowed_origins:
    - http://localhost:5173
    - http://localhost:3000
  read_timeout: 15s
  write_timeout: 30s
  shutdown_timeout: 10s

store:
  driver: sqlite # sqlite or postgres
  sqlite:
    path: .personsearch/persons.db
  # postgres:
  #   dsn: host=localhost user=persons password=persons dbname=persons port=5432 sslmode=disable
  #   (or set DATABASE_URL)

log:
  level: info
  format: json # json or console

llm:
  provider: openai
  model: gpt-4o-mini
  # api_key: your-api-key (or set OPENAI_API_KEY env var); enables person research
`

// WriteDefault creates the .personsearch directory and writes a default config file.
func WriteDefault(basePath string) error {
	configDir := ConfigDir(basePath)
	configFile := ConfigFilePath(basePath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Exists checks if a personsearch config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
