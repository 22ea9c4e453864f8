package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/meikuraledutech/workflow"
	"github.com/meikuraledutech/workflow/config"
	"github.com/meikuraledutech/workflow/postgres"
	"github.com/spf13/pflag"
)

func main() {
	flags := config.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		slog.Error("configure logging", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	src, closeSrc, err := openCatalog(ctx, cfg, logger)
	if err != nil {
		logger.Error("open automation catalog", "source", cfg.Catalog.Source, "error", err)
		os.Exit(1)
	}
	defer closeSrc()

	app := newApp(src, logger)
	logger.Info("listening", "addr", cfg.Addr, "catalog", cfg.Catalog.Source)
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Error("listen", "error", err)
		os.Exit(1)
	}
}

func newLogger(c config.LogConfig) (*slog.Logger, error) {
	level, err := c.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts)), nil
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts)), nil
}

// openCatalog wires the configured automation catalog behind the
// workflow.CatalogSource interface.
func openCatalog(ctx context.Context, cfg *config.Config, logger *slog.Logger) (workflow.CatalogSource, func(), error) {
	if cfg.Catalog.Source != config.CatalogPostgres {
		return workflow.NewStaticCatalog(), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}

	var store workflow.CatalogStore = postgres.New(pool)
	if err := store.CreateSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	if cfg.Catalog.Seed {
		if err := store.SeedDefaults(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("seeded automation catalog", "actions", len(workflow.DefaultActions()))
	}
	return store, pool.Close, nil
}
