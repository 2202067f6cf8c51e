package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"fintrack/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// NewMigrator builds a golang-migrate instance over the embedded SQL files
// for the configured driver. It opens its own connection so closing the
// migrator never touches the application's pool.
func NewMigrator(config *Config) (*migrate.Migrate, error) {
	if config.IsMemory() {
		return nil, errors.New("migrations require a persistent database")
	}

	src, err := iofs.New(migrationsFS, "migrations/"+config.Driver)
	if err != nil {
		return nil, fmt.Errorf("create iofs source: %w", err)
	}

	switch config.Driver {
	case DriverPostgres:
		conn, err := sql.Open("postgres", config.MigrateURL())
		if err != nil {
			return nil, fmt.Errorf("open migration database: %w", err)
		}
		driver, err := migratepg.WithInstance(conn, &migratepg.Config{})
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("create postgres driver: %w", err)
		}
		return migrate.NewWithInstance("iofs", src, "postgres", driver)
	default:
		conn, err := sql.Open("sqlite3", config.DSN())
		if err != nil {
			return nil, fmt.Errorf("open migration database: %w", err)
		}
		driver, err := sqlite3.WithInstance(conn, &sqlite3.Config{})
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("create sqlite driver: %w", err)
		}
		return migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	}
}

// Migrate applies pending SQL migrations.
func (m *Manager) Migrate() error {
	log := logger.Named("migrate")
	log.Info("Running database migrations...")

	mig, err := NewMigrator(m.config)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			log.Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			log.Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Info("Database migrations completed successfully")
	return nil
}
