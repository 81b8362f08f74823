package confs

import (
	"strings"
	"testing"
)

func clearDBEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DATABASE_URL", "DB_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "SQLITE_PATH"} {
		t.Setenv(k, "")
	}
}

func TestResolveDSNFallsBackToSQLite(t *testing.T) {
	clearDBEnv(t)

	driver, dsn := resolveDSN()
	if driver != DriverSQLite || dsn != "/tmp/test.db" {
		t.Fatalf("got %s %s", driver, dsn)
	}
}

func TestResolveDSNRewritesPostgresScheme(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/catalog")

	driver, dsn := resolveDSN()
	if driver != DriverPostgres {
		t.Fatalf("driver = %s", driver)
	}
	if dsn != "postgresql://u:p@db:5432/catalog" {
		t.Fatalf("dsn = %s", dsn)
	}
}

func TestResolveDSNAddsSSLModeToDBURL(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_URL", "postgresql://u:p@db/catalog?connect_timeout=5")

	_, dsn := resolveDSN()
	if !strings.HasSuffix(dsn, "&sslmode=require") {
		t.Fatalf("dsn = %s", dsn)
	}
}

func TestResolveDSNFromParameters(t *testing.T) {
	clearDBEnv(t)
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "postgres")
	t.Setenv("DB_NAME", "catalog")

	driver, dsn := resolveDSN()
	if driver != DriverPostgres || !strings.Contains(dsn, "sslmode=disable") {
		t.Fatalf("got %s %s", driver, dsn)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "3000"},
			Database: DatabaseConfig{Driver: DriverSQLite, DSN: ":memory:"},
			Logging:  LoggingConfig{Level: "info", Format: "json"},
			CORS:     CORSConfig{AllowedOrigins: []string{"*"}},
		}
	}

	if err := base().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := map[string]func(*Config){
		"bad port":        func(c *Config) { c.Server.Port = "http" },
		"negative conns":  func(c *Config) { c.Database.MaxOpenConns = -1 },
		"bad log format":  func(c *Config) { c.Logging.Format = "xml" },
		"zero rate limit": func(c *Config) { c.RateLimit = RateLimitConfig{Enabled: true} },
		"no origins":      func(c *Config) { c.CORS.AllowedOrigins = nil },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := base()
			mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoadCORSConfigSplitsOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	got := loadCORSConfig().AllowedOrigins
	if len(got) != 2 || got[1] != "http://b.test" {
		t.Fatalf("origins = %v", got)
	}
}
