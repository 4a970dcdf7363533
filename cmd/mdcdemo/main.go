// Package main walks through the transactional diagnostic context: commit
// a set of entries, emit enriched log lines, provoke drift, and restore.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/jsamuelsen/mdctx"
	"github.com/jsamuelsen/mdctx/internal/platform/config"
	"github.com/jsamuelsen/mdctx/internal/platform/logging"
	"github.com/jsamuelsen/mdctx/slogmdc"
)

// Build-time variables, injected via ldflags.
var (
	// Version is the semantic version of the demo.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Build the logging pipeline over a diagnostic context store, so
	// every record carries the store's current entries.
	store := mdctx.NewMapStore()

	handler := slogmdc.NewHandler(logging.NewHandler(&logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, os.Stdout), store)

	logger := slog.New(handler).With(
		slog.String("service_name", cfg.App.Name),
		slog.String("service_version", cfg.App.Version),
	)
	logging.SetDefault(logger)

	logger.Info("starting walkthrough",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	return walkthrough(cfg, store, logger)
}

// walkthrough runs the commit / drift / restore cycle described by the
// demo config.
func walkthrough(cfg *config.Config, store mdctx.Store, logger *slog.Logger) error {
	// Stage the configured entries and commit them.
	builder := mdctx.New(store, mdctx.WithLogger(logger))
	for _, key := range slices.Sorted(maps.Keys(cfg.Demo.Entries)) {
		builder.Put(key, cfg.Demo.Entries[key])
	}

	txn, err := builder.Commit()
	if err != nil {
		return fmt.Errorf("committing entries: %w", err)
	}

	ctx := logging.WithTransactionID(
		logging.WithContext(context.Background(), logger), txn.ID())

	// Everything logged here carries the committed entries.
	doWork(ctx)

	// An outside party changes one of the keys before we restore.
	if cfg.Demo.DriftKey != "" {
		v := cfg.Demo.DriftValue
		store.Put(cfg.Demo.DriftKey, &v)

		logging.FromContext(ctx).Info("external change to the context",
			slog.String("key", cfg.Demo.DriftKey),
		)
	}

	// The drifted key is skipped (watch for the debug record); the rest
	// revert to their pre-commit state, which here was absence.
	if err := txn.Restore(); err != nil {
		return fmt.Errorf("restoring context: %w", err)
	}

	logger.Info("after restore: drifted key kept, others removed")

	return nil
}

// doWork stands in for whatever the caller does between commit and restore.
func doWork(ctx context.Context) {
	logger := logging.FromContext(ctx)
	logger.Info("doing some work inside the transaction")
	logger.Debug("details only visible at debug level")
}
