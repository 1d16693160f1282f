// Package config provides centralized configuration management for the
// application. It loads configuration from environment variables with
// sensible defaults and validates all settings on startup to fail fast on
// misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Import   ImportConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings for the admin surface.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading request body (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing response (default: 60s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"60s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// DatabaseConfig holds relational store settings.
type DatabaseConfig struct {
	// Driver selects the GORM dialector: sqlite, postgres, mysql, sqlserver
	// (default: sqlite)
	Driver string `env:"DB_DRIVER" default:"sqlite"`

	// DSN is the driver-specific connection string. For sqlite this is the
	// database file path (default: sheetstore.db)
	DSN string `env:"DB_DSN" envAlt:"DATABASE_URL" default:"sheetstore.db"`
}

// ImportConfig holds spreadsheet import settings.
type ImportConfig struct {
	// DefaultStatus is filled into order rows with no status value
	// (default: pending)
	DefaultStatus string `env:"IMPORT_DEFAULT_STATUS" default:"pending"`

	// MaxUploadSize is the maximum accepted workbook upload in bytes
	// (default: 25MB)
	MaxUploadSize int64 `env:"IMPORT_MAX_UPLOAD_SIZE" default:"26214400"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + strconv.Itoa(c.Port)
	}
	return c.Host + ":" + strconv.Itoa(c.Port)
}
