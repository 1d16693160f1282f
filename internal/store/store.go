// Package store implements the relational store on top of GORM. It exposes
// the natural-key lookups and mutations the import pipeline needs, the full
// reads the exporter needs, and the cascading bulk clear.
package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jasonnnn886/sheetstore/internal/model"
)

// ErrNotFound is returned by the Find* lookups when no record matches the
// natural key.
var ErrNotFound = errors.New("record not found")

// Store wraps a GORM connection to the configured database.
type Store struct {
	db *gorm.DB
}

// Open connects to the database, configures the connection pool and runs
// the schema migration for the three entities.
func Open(driver, dsn string) (*Store, error) {
	dialector, err := buildDialector(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("store: build dialector: %w", err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // slog covers logging
	})
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}

	if driver == "sqlite" {
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("store: enable foreign keys: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("store: get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("store: ping: %w", err)
	}

	if err := db.AutoMigrate(&model.Product{}, &model.Customer{}, &model.Order{}); err != nil {
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func buildDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlserver":
		return sqlserver.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres, mysql, sqlserver)", driver)
	}
}

// notFound maps GORM's sentinel onto the package-level one so callers do
// not depend on gorm directly.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
