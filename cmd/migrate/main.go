package main

import (
	"context"
	"os"

	"github.com/nimasrn/clubhouse/internal/config"
	"github.com/nimasrn/clubhouse/pkg/logger"
	"github.com/nimasrn/clubhouse/pkg/sqlite"
)

func main() {
	// main.go --env=.env
	err := config.Load(config.EnvPath(os.Args[1:]))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err = logger.Configure(config.Get().AppEnv, config.Get().LogLevel); err != nil {
		logger.Error("failed to configure logger", "error", err)
	}
	defer logger.Sync()

	if err = run(context.Background(), config.Get()); err != nil {
		logger.Fatal(err, "msg", "migration: error creating schema", "path", config.Get().DBPath)
	}
	logger.Info("migration: schema is up to date", "path", config.Get().DBPath)
}

// run opens the store, which applies every pending migration, and closes it.
func run(ctx context.Context, cfg *config.Config) error {
	db, err := sqlite.Open(ctx, sqlite.Config{
		Path:          cfg.DBPath,
		BusyTimeoutMs: cfg.DBBusyTimeoutMs,
	}, cfg.AppDebug)
	if err != nil {
		return err
	}
	return db.Close()
}
