package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mcoot/scrabb-go/internal/api"
	"github.com/mcoot/scrabb-go/internal/services/table"
)

// serverConfig is everything the server reads from the environment
type serverConfig struct {
	Server   api.ServerConfig
	Tables   table.Config
	LogLevel slog.Level
	Seed     *uint64
}

// loadConfig reads .env files (if any) and then the process environment.
// Variables already set in the environment win over .env.
func loadConfig(envFiles ...string) (serverConfig, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return serverConfig{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := serverConfig{
		Server:   api.DefaultServerConfig(),
		Tables:   table.DefaultConfig(),
		LogLevel: slog.LevelInfo,
	}

	if host, ok := os.LookupEnv("HOST"); ok {
		cfg.Server.Host = host
	}
	if err := intFromEnv("PORT", &cfg.Server.Port); err != nil {
		return serverConfig{}, err
	}
	if err := intFromEnv("TABLE_CAPACITY", &cfg.Tables.Capacity); err != nil {
		return serverConfig{}, err
	}
	if cfg.Tables.Capacity <= 0 {
		return serverConfig{}, fmt.Errorf("TABLE_CAPACITY must be positive, got %d", cfg.Tables.Capacity)
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
			return serverConfig{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}
	if raw := os.Getenv("TABLE_SEED"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return serverConfig{}, fmt.Errorf("TABLE_SEED: %w", err)
		}
		cfg.Seed = &seed
	}

	return cfg, nil
}

func intFromEnv(key string, dst *int) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
