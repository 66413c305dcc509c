package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/vendedor-ai/carmatch/internal/config"
	"github.com/vendedor-ai/carmatch/internal/engine"
	"github.com/vendedor-ai/carmatch/internal/fallback"
	"github.com/vendedor-ai/carmatch/internal/storage"
)

// initStorage opens the configured inventory database and brings its schema
// up to date.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := config.ExpandPath(viper.GetString("database.path"))

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate inventory database: %w", err)
	}

	return store, nil
}

// newFinder builds the matching engine from the configured fallback bounds.
func newFinder() *engine.Finder {
	return engine.NewWithConfig(fallback.Config{
		MaxResults:            viper.GetInt("fallback.max_results"),
		PriceTolerancePercent: viper.GetFloat64("fallback.price_tolerance_percent"),
		MaxYearDistance:       viper.GetInt("fallback.max_year_distance"),
	})
}
