package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/scrabb-go/internal/dependencies/clock"
	"github.com/mcoot/scrabb-go/internal/dependencies/random"
	"github.com/mcoot/scrabb-go/internal/services/table"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	Tables *table.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// TableConfig holds configuration for the table service (optional)
	// If zero value, defaults to table.DefaultConfig()
	TableConfig table.Config
	// Seed makes tile draws and table IDs reproducible (optional)
	// If nil, a cryptographic source is used
	Seed *uint64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	}

	// Use default table config if not provided
	tableCfg := cfg.TableConfig
	if tableCfg.Capacity == 0 {
		tableCfg = table.DefaultConfig()
	}

	return newWithDependencies(clk, rnd, tableCfg, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(clk clock.Clock, rnd random.Random, tableCfg table.Config, logger *slog.Logger) (*App, error) {
	tables, err := table.New(tableCfg, clk, rnd, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Clock:  clk,
		Random: rnd,
		Tables: tables,
	}, nil
}
