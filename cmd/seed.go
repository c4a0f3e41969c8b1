package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfaram/vidgrid/internal/catalog"
	"github.com/sfaram/vidgrid/internal/config"
	"github.com/sfaram/vidgrid/internal/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample catalog into the configured store",
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Pretty)

	store, closeStore, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer closeStore()

	if err := catalog.Seed(cmd.Context(), store); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
