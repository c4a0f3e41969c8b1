package cmd

import (
	"context"
	"fmt"

	"github.com/sfaram/vidgrid/internal/catalog"
	"github.com/sfaram/vidgrid/internal/config"
)

// openStore builds the catalog store backend selected by the configuration.
// The returned cleanup is safe to call once, store open or not.
func openStore(ctx context.Context, cfg *config.Config) (catalog.Store, func(), error) {
	noop := func() {}

	switch cfg.Store.Backend {
	case config.BackendMemory:
		return catalog.NewMemoryStore(), noop, nil

	case config.BackendSQLite:
		store, err := catalog.NewSQLiteStore(cfg.Store.SQLitePath, cfg.Store.MigrationsPath)
		if err != nil {
			return nil, noop, fmt.Errorf("sqlite store: %w", err)
		}
		return store, func() { _ = store.Close() }, nil

	case config.BackendMongo:
		connectCtx, cancel := context.WithTimeout(ctx, cfg.Store.MongoTimeout)
		defer cancel()

		store, err := catalog.NewMongoStore(connectCtx,
			cfg.Store.MongoURI, cfg.Store.MongoDatabase, cfg.Store.MongoCollection)
		if err != nil {
			return nil, noop, fmt.Errorf("mongo store: %w", err)
		}
		return store, func() { _ = store.Close(context.Background()) }, nil

	default:
		return nil, noop, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}
