// Package handlers contains application use case handlers.
package handlers

import (
	"fmt"

	"github.com/ersonp/person-search/internal/infrastructure/config"
)

// InitHandler writes the default configuration for a workspace.
type InitHandler struct{}

// NewInitHandler creates a new init handler.
func NewInitHandler() *InitHandler {
	return &InitHandler{}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath string
	Driver     string
	SQLitePath string
}

// Handle creates .personsearch/config.yaml under basePath.
func (h *InitHandler) Handle(basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("person-search already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &InitResult{
		ConfigPath: config.ConfigFilePath(basePath),
		Driver:     cfg.Store.Driver,
		SQLitePath: cfg.Store.SQLite.Path,
	}, nil
}
