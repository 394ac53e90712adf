package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Env          string `toml:"env"`
	ListenAddr   string `toml:"listen_addr"`
	DatabaseURL  string `toml:"database_url"`
	EphemerisURL string `toml:"ephemeris_url"`
	MatchWorkers int    `toml:"match_workers"`
	LogLevel     string `toml:"log_level"`
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		if _, err := fmt.Sscanf(v, "%d", &out); err == nil {
			return out
		}
	}
	return def
}

// Load reads an optional TOML file (STELLAR_CONFIG, default ./config.toml),
// then lets environment variables override it.
func Load() (Config, error) {
	cfg := Config{
		Env:        "development",
		ListenAddr: ":8080",
		LogLevel:   "info",
	}

	path := getenv("STELLAR_CONFIG", "config.toml")
	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.Env = getenv("APP_ENV", cfg.Env)
	cfg.ListenAddr = getenv("LISTEN_ADDR", cfg.ListenAddr)
	cfg.DatabaseURL = getenv("DATABASE_URL", cfg.DatabaseURL)
	cfg.EphemerisURL = getenv("EPHEMERIS_URL", cfg.EphemerisURL)
	cfg.MatchWorkers = getenvInt("MATCH_WORKERS", cfg.MatchWorkers)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)

	if cfg.DatabaseURL == "" {
		// Not fatal for early local runs; warn via error value so callers can decide.
		return cfg, fmt.Errorf("DATABASE_URL not set")
	}
	return cfg, nil
}
