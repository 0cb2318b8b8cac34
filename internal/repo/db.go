// Package repo implements the data persistence layer for topics, users,
// articles and comments, backed by GORM. This file contains database
// bootstrapping for SQLite (pure Go driver, used in development and tests)
// and PostgreSQL (production), plus schema migration.
package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// Supported values for Options.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Options selects and tunes the store.
type Options struct {
	Driver       string // sqlite|postgres
	Path         string // SQLite file path
	DSN          string // PostgreSQL connection string
	MaxOpenConns int    // <= 0 keeps the driver default of 10
	Tracing      bool   // register the OpenTelemetry GORM plugin
}

// Open connects to the store described by opts.
func Open(opts Options) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch strings.ToLower(opts.Driver) {
	case DriverSQLite, "":
		db, err = OpenSQLite(opts.Path)
	case DriverPostgres:
		db, err = OpenPostgres(opts.DSN)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}

	if opts.MaxOpenConns > 0 {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
			sqlDB.SetMaxIdleConns(opts.MaxOpenConns)
		}
	}

	if opts.Tracing {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			return nil, fmt.Errorf("gorm tracing: %w", err)
		}
	}
	return db, nil
}

// OpenSQLite opens (or creates) a SQLite database with foreign keys enforced.
// Foreign keys are enabled through the DSN so every pooled connection gets
// them, which ON DELETE CASCADE depends on.
func OpenSQLite(path string) (*gorm.DB, error) {
	// Fail early if parent directory does not exist.
	if dir := filepath.Dir(path); dir != "." && !strings.HasPrefix(path, "file:") {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(withPragmas(path)), gormConfig())
	if err != nil {
		return nil, err
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
	return db, nil
}

// OpenPostgres opens a PostgreSQL pool via pgx.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres dsn is empty")
	}
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
	return db, nil
}

// AutoMigrate creates or updates all tables, foreign keys and indexes.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Topic{},
		&domain.User{},
		&domain.Article{},
		&domain.Comment{},
		&domain.Idempotency{},
	)
}

// DropAll removes every table managed by AutoMigrate, children first.
func DropAll(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&domain.Idempotency{},
		&domain.Comment{},
		&domain.Article{},
		&domain.User{},
		&domain.Topic{},
	)
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
}

// withPragmas appends the PRAGMAs we need to a SQLite DSN.
func withPragmas(path string) string {
	const pragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	if strings.Contains(path, "?") {
		return path + "&" + pragmas
	}
	return path + "?" + pragmas
}
