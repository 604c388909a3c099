// README: Config loader with env defaults for HTTP, DB, catalog source, logging and quote limits.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type QuoteConfig struct {
	MinPassengers int
	MaxPassengers int
	Currency      string
}

type Config struct {
	Env  string
	HTTP struct {
		Addr string
	}
	DB struct {
		// DSN is optional; when set the catalog is read from Postgres.
		DSN  string
		Seed bool
	}
	Catalog struct {
		File string
	}
	Log struct {
		Level string
	}
	Quote QuoteConfig
}

func Load() (Config, error) {
	var cfg Config
	cfg.Env = strings.ToLower(envOrDefault("CHARTER_ENV", "dev"))
	cfg.HTTP.Addr = envOrDefault("CHARTER_HTTP_ADDR", ":8080")
	cfg.DB.DSN = envOrDefault("CHARTER_DB_DSN", "")
	cfg.DB.Seed = envOrDefaultBool("CHARTER_DB_SEED", false)
	cfg.Catalog.File = envOrDefault("CHARTER_CATALOG_FILE", "")
	cfg.Log.Level = strings.ToLower(envOrDefault("CHARTER_LOG_LEVEL", "info"))
	cfg.Quote.MinPassengers = envOrDefaultInt("CHARTER_MIN_PASSENGERS", 2)
	cfg.Quote.MaxPassengers = envOrDefaultInt("CHARTER_MAX_PASSENGERS", 24)
	cfg.Quote.Currency = strings.ToUpper(envOrDefault("CHARTER_CURRENCY", "ILS"))

	if cfg.Quote.MinPassengers > cfg.Quote.MaxPassengers {
		return Config{}, fmt.Errorf("CHARTER_MIN_PASSENGERS (%d) exceeds CHARTER_MAX_PASSENGERS (%d)",
			cfg.Quote.MinPassengers, cfg.Quote.MaxPassengers)
	}
	if cfg.DB.DSN != "" && cfg.Catalog.File != "" {
		return Config{}, fmt.Errorf("set only one of CHARTER_DB_DSN and CHARTER_CATALOG_FILE")
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		v = strings.ToLower(v)
		return v == "1" || v == "true" || v == "yes"
	}
	return def
}
