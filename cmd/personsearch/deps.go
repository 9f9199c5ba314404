package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ersonp/person-search/internal/application/handlers"
	"github.com/ersonp/person-search/internal/domain/ports"
	"github.com/ersonp/person-search/internal/domain/services"
	"github.com/ersonp/person-search/internal/infrastructure/config"
	llm "github.com/ersonp/person-search/internal/infrastructure/llm/openai"
	"github.com/ersonp/person-search/internal/infrastructure/logging"
	"github.com/ersonp/person-search/internal/infrastructure/relationaldb/postgres"
	"github.com/ersonp/person-search/internal/infrastructure/relationaldb/sqlite"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and stores are internal.
type Deps struct {
	Config          *config.Config
	Logger          *zap.Logger
	SearchHandler   *handlers.SearchHandler
	SeedHandler     *handlers.SeedHandler
	ImportHandler   *handlers.ImportHandler
	ResearchHandler *handlers.ResearchHandler
}

// internalDeps holds all dependencies including low-level components.
type internalDeps struct {
	Deps
	store ports.PersonStore
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	return withInternalDeps(ctx, func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withInternalDeps provides access to all dependencies including the store.
// Used by commands that need to hand the store to infrastructure, like serve.
func withInternalDeps(ctx context.Context, fn func(*internalDeps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync fails on some terminals

	store, err := openStore(cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}

	researcher, err := newResearcher(cfg)
	if err != nil {
		return fmt.Errorf("creating researcher: %w", err)
	}

	searchService := services.NewSearchService(store, logger.Named("search"))
	provisionService := services.NewProvisionService(store, logger.Named("provision"))
	importService := services.NewImportService(provisionService)
	researchService := services.NewResearchService(researcher)

	deps := &internalDeps{
		Deps: Deps{
			Config:          cfg,
			Logger:          logger,
			SearchHandler:   handlers.NewSearchHandler(searchService),
			SeedHandler:     handlers.NewSeedHandler(provisionService),
			ImportHandler:   handlers.NewImportHandler(importService),
			ResearchHandler: handlers.NewResearchHandler(researchService),
		},
		store: store,
	}

	return fn(deps)
}

// openStore creates the record store selected by the configured driver.
func openStore(cfg config.StoreConfig) (ports.PersonStore, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		repo, err := postgres.NewRepository(cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("creating postgres repository: %w", err)
		}
		return repo, nil
	default:
		repo, err := sqlite.NewRepository(cfg.SQLite)
		if err != nil {
			return nil, fmt.Errorf("creating sqlite repository: %w", err)
		}
		return repo, nil
	}
}

// newResearcher returns nil when no API key is configured, which leaves
// person research disabled.
func newResearcher(cfg *config.Config) (ports.Researcher, error) {
	if !cfg.ResearchEnabled() {
		return nil, nil
	}
	client, err := llm.NewClient(cfg.LLM)
	if err != nil {
		return nil, err
	}
	return client, nil
}
