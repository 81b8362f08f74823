package db

import (
	"fmt"
	"strings"
	"time"

	"starwars-server/confs"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the configured store, sizes the pool and migrates the schema.
func Connect(cfg confs.DatabaseConfig, log zerolog.Logger) (Database, error) {
	log = log.With().Str("component", "database").Str("driver", cfg.Driver).Logger()

	var dialector gorm.Dialector
	switch cfg.Driver {
	case confs.DriverPostgres:
		log.Info().Msg("Connecting to PostgreSQL")
		dialector = postgres.Open(cfg.DSN)
	case confs.DriverSQLite:
		log.Info().Str("path", cfg.DSN).Msg("DATABASE_URL not set, using SQLite")
		dialector = sqlite.Open(sqliteDSN(cfg.DSN))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(log, cfg.LogLevel),
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	if cfg.Driver == confs.DriverSQLite {
		// SQLite serializes writers; one connection also keeps :memory: databases shared.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	log.Info().Msg("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info().Msg("Database migrations completed")

	return &GormDatabase{DB: db}, nil
}

// OpenSQLite opens and migrates a SQLite store with SQL logging silenced.
// Pass ":memory:" for a throwaway database.
func OpenSQLite(path string) (Database, error) {
	return Connect(confs.DatabaseConfig{
		Driver:   confs.DriverSQLite,
		DSN:      path,
		LogLevel: "silent",
	}, zerolog.Nop())
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off by default.
func sqliteDSN(path string) string {
	if path == ":memory:" {
		return "file::memory:?_foreign_keys=on"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

type gormWriter struct {
	log zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Info().Msg(fmt.Sprintf(format, args...))
}

func newGormLogger(log zerolog.Logger, level string) gormlogger.Interface {
	return gormlogger.New(gormWriter{log: log.With().Str("component", "gorm").Logger()}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  parseGormLevel(level),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func parseGormLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
