package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultDatabaseURL = "itinerary.db"
	defaultHTTPAddr    = ":8080"
	defaultPageLimit   = "10"

	// Recommended itineraries are maintained for this nights range.
	MinNights = 2
	MaxNights = 8
)

type Config struct {
	DatabaseURL string
	HTTPAddr    string
	PageLimit   int
}

// Load reads configuration from the environment, picking up a local .env
// file first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL)),
		HTTPAddr:    strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr)),
	}

	var err error
	cfg.PageLimit, err = parseIntEnv("PAGE_LIMIT", defaultPageLimit)
	if err != nil {
		return nil, err
	}
	if cfg.PageLimit <= 0 {
		return nil, fmt.Errorf("PAGE_LIMIT must be positive, got %d", cfg.PageLimit)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseIntEnv(key, fallback string) (int, error) {
	raw := getEnv(key, fallback)
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
