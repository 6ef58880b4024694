package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"band-practice-go/pkg/logger"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	HTTPPort    string
	Env         string
	CORSOrigins []string
	Store       string
	SeedFile    string
	DB          DBConfig
	Cleanup     CleanupConfig
}

type DBConfig struct {
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type CleanupConfig struct {
	Enabled  bool
	Schedule string
	TimeZone string
	Timeout  time.Duration
}

func Load(log logger.Logger) (Config, error) {
	if err := loadDotEnv(log); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		CORSOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		Store:       strings.ToLower(getEnv("STORE", StorePostgres)),
		SeedFile:    getEnv("SEED_FILE", ""),
		DB: DBConfig{
			DSN:             getEnv("DB_DSN", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "band_practice"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			AutoMigrate:     getEnvBool("DB_AUTO_MIGRATE", true),
		},
		Cleanup: CleanupConfig{
			Enabled:  getEnvBool("CLEANUP_ENABLED", true),
			Schedule: getEnv("CLEANUP_SCHEDULE", "0 2 * * *"),
			TimeZone: getEnv("CLEANUP_TIMEZONE", "Local"),
			Timeout:  getEnvDuration("CLEANUP_TIMEOUT", time.Minute),
		},
	}

	if cfg.Store != StorePostgres && cfg.Store != StoreMemory {
		return Config{}, fmt.Errorf("unsupported STORE %q", cfg.Store)
	}
	if _, err := cfg.Cleanup.Location(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Location resolves the zone in which "today" is computed for expiry.
func (c CleanupConfig) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.TimeZone)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("cleanup timezone %q: %w", name, err)
	}
	return loc, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

func getEnvInt(key string, fallback int) int {
	return getEnvAs(key, fallback, strconv.Atoi)
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	return getEnvAs(key, fallback, time.ParseDuration)
}

func getEnvBool(key string, fallback bool) bool {
	return getEnvAs(key, fallback, strconv.ParseBool)
}

// getEnvAs falls back when the variable is unset or does not parse.
func getEnvAs[T any](key string, fallback T, parse func(string) (T, error)) T {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := parse(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}
