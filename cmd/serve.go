package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sfaram/vidgrid/internal/config"
	"github.com/sfaram/vidgrid/internal/logger"
	"github.com/sfaram/vidgrid/internal/server"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Pretty)

	// A store that cannot be opened degrades the catalog instead of killing
	// the server: pages render an empty grid, writes surface the failure.
	store, closeStore, err := openStore(cmd.Context(), cfg)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Str("backend", cfg.Store.Backend).
			Msg("Catalog store unavailable, serving degraded")
		store = nil
	}
	defer closeStore()

	srv := server.New(cfg, store)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-quit:
		logger.Log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
