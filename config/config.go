// Package config loads server settings from defaults, an optional
// workflow.toml, WORKFLOW_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Catalog sources.
const (
	CatalogStatic   = "static"
	CatalogPostgres = "postgres"
)

// Config holds all configuration for the server.
type Config struct {
	Addr     string         `koanf:"addr"`
	Database DatabaseConfig `koanf:"database"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Log      LogConfig      `koanf:"log"`
}

type DatabaseConfig struct {
	URL string `koanf:"url"`
}

type CatalogConfig struct {
	Source string `koanf:"source"`
	Seed   bool   `koanf:"seed"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// FileName is the optional config file read from the working directory.
const FileName = "workflow.toml"

// Flags returns the flag set understood by Load.
func Flags() *pflag.FlagSet {
	f := pflag.NewFlagSet("workflow", pflag.ContinueOnError)
	f.String("addr", ":3000", "listen address")
	f.String("database.url", "", "PostgreSQL URL for the automation catalog")
	f.String("catalog.source", CatalogStatic, "automation catalog source: static or postgres")
	f.Bool("catalog.seed", false, "seed built-in actions into the postgres catalog on start")
	f.String("log.level", "info", "log level: debug, info, warn, error")
	f.String("log.format", "text", "log format: text or json")
	return f
}

// Load loads configuration from defaults, config file, environment variables, and flags.
// Priority: Flags > Env > Config File > Defaults
func Load(f *pflag.FlagSet) (*Config, error) {
	return load(f, FileName)
}

func load(f *pflag.FlagSet, path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	defaults := map[string]interface{}{
		"addr": ":3000",
		"database": map[string]interface{}{
			"url": "",
		},
		"catalog": map[string]interface{}{
			"source": CatalogStatic,
			"seed":   false,
		},
		"log": map[string]interface{}{
			"level":  "info",
			"format": "text",
		},
	}
	if err := k.Load(makeMapProvider(defaults), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file (optional), missing file is fine
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// 3. Environment variables, e.g. WORKFLOW_DATABASE_URL=postgres://...
	if err := k.Load(env.Provider("WORKFLOW_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(
			strings.TrimPrefix(s, "WORKFLOW_")), "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those explicitly set override lower layers
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Catalog.Source {
	case CatalogStatic:
	case CatalogPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("config: catalog.source=postgres requires database.url")
		}
	default:
		return fmt.Errorf("config: unknown catalog.source %q", c.Catalog.Source)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log.format %q", c.Log.Format)
	}
	return nil
}

// SlogLevel parses the configured level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("config: log.level: %w", err)
	}
	return lvl, nil
}

// Helper to use map as a provider
type mapProvider struct {
	m map[string]interface{}
}

func makeMapProvider(m map[string]interface{}) *mapProvider {
	return &mapProvider{m: m}
}

func (p *mapProvider) Read() (map[string]interface{}, error) {
	return p.m, nil
}

func (p *mapProvider) ReadBytes() ([]byte, error) {
	return nil, fmt.Errorf("not implemented")
}
