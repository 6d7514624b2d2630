package config

import (
	"fmt"
	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
	"os"
	"strings"
	"time"
)

type Config struct {
	Env  string
	Addr string

	// DatabaseURL selects postgres; when empty the shop runs on SQLitePath.
	DatabaseURL string
	SQLitePath  string

	RedisAddr        string
	ProductsCacheTTL time.Duration

	StaticDir      string
	AllowedOrigins []string
	Currency       currency.Unit
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads the environment, first merging a .env file outside production.
func Load() (Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		// a missing .env is fine
		_ = godotenv.Load()
	}

	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if value := strings.TrimSpace(getenv(key)); value != "" {
			return value
		}
		return fallback
	}

	ttl, err := time.ParseDuration(get("PRODUCTS_CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("PRODUCTS_CACHE_TTL: %w", err)
	}

	cur, err := currency.ParseISO(get("CURRENCY", "USD"))
	if err != nil {
		return Config{}, fmt.Errorf("CURRENCY: %w", err)
	}

	var origins []string
	for _, origin := range strings.Split(get("CORS_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	return Config{
		Env:              get("APP_ENV", "development"),
		Addr:             get("HTTP_ADDR", ":5000"),
		DatabaseURL:      get("DATABASE_URL", ""),
		SQLitePath:       get("SQLITE_PATH", "bakery.db"),
		RedisAddr:        get("REDIS_ADDR", ""),
		ProductsCacheTTL: ttl,
		StaticDir:        get("STATIC_DIR", "."),
		AllowedOrigins:   origins,
		Currency:         cur,
	}, nil
}
