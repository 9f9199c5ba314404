package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ersonp/person-search/internal/infrastructure/metrics"
	"github.com/ersonp/person-search/internal/interfaces/http/api"
)

type serveFlags struct {
	addr string
	seed bool
}

func newServeCmd() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP search server",
		Long:  "Serves the GraphQL endpoint at /api/graphql and the REST mirror at /api/persons/search.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.addr, "addr", "", "Listen address (overrides config)")
	cmd.Flags().BoolVar(&flags.seed, "seed", false, "Replace the store contents with the sample records before serving")

	return cmd
}

func runServe(cmd *cobra.Command, flags serveFlags) error {
	ctx := cmd.Context()

	return withInternalDeps(ctx, func(d *internalDeps) error {
		if flags.seed {
			result, err := d.SeedHandler.Handle(ctx)
			if err != nil {
				return err
			}
			d.Logger.Info("sample records loaded", zap.Int("records", result.Seeded))
		}

		serverCfg := d.Config.Server
		if flags.addr != "" {
			serverCfg.Addr = flags.addr
		}

		router := api.NewRouter(
			d.SearchHandler,
			d.ResearchHandler,
			d.store,
			api.Options{
				AllowedOrigins: serverCfg.AllowedOrigins,
				Metrics:        metrics.NewCollector(metrics.Namespace),
			},
			d.Logger.Named("http"),
		)

		handler, err := router.Setup()
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              serverCfg.Addr,
			Handler:           handler,
			ReadTimeout:       serverCfg.ReadTimeout,
			ReadHeaderTimeout: serverCfg.ReadTimeout,
			WriteTimeout:      serverCfg.WriteTimeout,
			IdleTimeout:       60 * time.Second,
		}

		return serve(ctx, srv, serverCfg.ShutdownTimeout, d.Logger)
	})
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("address", srv.Addr),
			zap.String("version", version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
