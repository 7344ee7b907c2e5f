package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every setting the API reads from the environment.
type Config struct {
	Port string

	DBDriver      string // postgres, sqlite or mongo
	DatabaseURL   string
	MongoURI      string
	MongoDatabase string

	JWTSecret string
	JWTTTL    time.Duration // zero means tokens never expire

	RedisURL          string
	DirectoryCacheTTL time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	CORSOrigins []string
	WebDir      string
}

// Load reads a .env file when present and builds a Config from the environment.
func Load() (*Config, error) {
	// a missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	var errs []error

	cfg := &Config{
		Port:          GetString("API_PORT", "4000"),
		DBDriver:      strings.ToLower(GetString("DB_DRIVER", "postgres")),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDatabase: GetString("MONGO_DATABASE", "tabibi"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		RedisURL:      os.Getenv("REDIS_URL"),
		WebDir:        os.Getenv("WEB_DIR"),
		CORSOrigins:   splitList(GetString("CORS_ORIGINS", "http://localhost:5173")),
	}

	var err error
	if cfg.JWTTTL, err = GetDuration("JWT_TTL", 0); err != nil {
		errs = append(errs, err)
	}
	if cfg.DirectoryCacheTTL, err = GetDuration("DIRECTORY_CACHE_TTL", time.Minute); err != nil {
		errs = append(errs, err)
	}
	if cfg.RateLimitRPS, err = GetFloat("RATE_LIMIT_RPS", 5); err != nil {
		errs = append(errs, err)
	}
	if cfg.RateLimitBurst, err = GetInt("RATE_LIMIT_BURST", 10); err != nil {
		errs = append(errs, err)
	}

	if cfg.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}

	switch cfg.DBDriver {
	case "postgres", "sqlite":
		if cfg.DatabaseURL == "" {
			errs = append(errs, fmt.Errorf("DATABASE_URL is required for DB_DRIVER=%s", cfg.DBDriver))
		}
	case "mongo":
		if cfg.MongoURI == "" {
			errs = append(errs, errors.New("MONGO_URI is required for DB_DRIVER=mongo"))
		}
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetString returns the value of key or fallback when unset.
func GetString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}

func GetFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", key, v)
	}
	return f, nil
}

func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
