package confs

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type DatabaseConfig struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
	// LogLevel is the gorm SQL log level: silent, error, warn or info.
	LogLevel string
}

type LoggingConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstSize         int
}

// LoadConfig loads environment variables from a .env file if present
// and builds the typed configuration.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	cfg := &Config{
		Server:    loadServerConfig(),
		Database:  loadDatabaseConfig(),
		Logging:   loadLoggingConfig(),
		CORS:      loadCORSConfig(),
		RateLimit: loadRateLimitConfig(),
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnv("PORT", "3000"),
		GinMode: getEnv("GIN_MODE", "release"),
	}
}

func loadDatabaseConfig() DatabaseConfig {
	maxOpen, _ := strconv.Atoi(getEnv("DB_MAX_OPEN_CONNS", "25"))
	maxIdle, _ := strconv.Atoi(getEnv("DB_MAX_IDLE_CONNS", "5"))

	driver, dsn := resolveDSN()
	return DatabaseConfig{
		Driver:       driver,
		DSN:          dsn,
		MaxOpenConns: maxOpen,
		MaxIdleConns: maxIdle,
		LogLevel:     getEnv("DB_LOG_LEVEL", "warn"),
	}
}

// resolveDSN picks the store in order: DATABASE_URL, DB_URL, individual
// DB_* parameters, then a local SQLite file.
func resolveDSN() (string, string) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		if strings.HasPrefix(url, "postgres://") {
			url = "postgresql://" + strings.TrimPrefix(url, "postgres://")
		}
		return DriverPostgres, url
	}

	if url := os.Getenv("DB_URL"); url != "" {
		if !strings.Contains(url, "sslmode=") {
			if strings.Contains(url, "?") {
				url += "&sslmode=require"
			} else {
				url += "?sslmode=require"
			}
		}
		return DriverPostgres, url
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	if host != "" && port != "" && user != "" && name != "" {
		sslMode := getEnv("DB_SSLMODE", "require")
		if host == "localhost" || host == "127.0.0.1" {
			sslMode = "disable"
		}
		return DriverPostgres, fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			host, user, password, name, port, sslMode)
	}

	return DriverSQLite, getEnv("SQLITE_PATH", "/tmp/test.db")
}

func loadLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}
}

func loadCORSConfig() CORSConfig {
	var origins []string
	for _, o := range strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return CORSConfig{AllowedOrigins: origins}
}

func loadRateLimitConfig() RateLimitConfig {
	rps, _ := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64)
	burst, _ := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20"))
	return RateLimitConfig{
		Enabled:           getEnv("RATE_LIMIT_ENABLED", "false") == "true",
		RequestsPerSecond: rps,
		BurstSize:         burst,
	}
}

func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", c.Server.Port)
	}
	if c.Database.DSN == "" {
		return errors.New("database DSN is empty")
	}
	if c.Database.MaxOpenConns < 0 || c.Database.MaxIdleConns < 0 {
		return errors.New("DB_MAX_OPEN_CONNS and DB_MAX_IDLE_CONNS must not be negative")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.BurstSize <= 0) {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive when rate limiting is enabled")
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		return errors.New("CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Server.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
