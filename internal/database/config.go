package database

import (
	"fmt"
	"net/url"
	"strings"

	"fintrack/internal/config"
)

// Supported drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds database configuration
type Config struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewConfig extracts the database settings from the application config.
func NewConfig(cfg *config.Config) (*Config, error) {
	driver := strings.ToLower(cfg.DBDriver)
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return &Config{
		Driver:   driver,
		Path:     cfg.DBPath,
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	}, nil
}

// DSN returns the connection string for the configured driver. SQLite
// connections enforce foreign keys and wait on a locked database rather
// than failing immediately.
func (c *Config) DSN() string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
	}

	sep := "?"
	if strings.Contains(c.Path, "?") {
		sep = "&"
	}
	return c.Path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// MigrateURL returns the URL form expected by golang-migrate's postgres driver.
func (c *Config) MigrateURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     c.DBName,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// IsMemory reports whether the SQLite database lives only in memory.
func (c *Config) IsMemory() bool {
	return c.Driver == DriverSQLite && (c.Path == ":memory:" || strings.Contains(c.Path, "mode=memory"))
}
