package database

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// oracleAlreadyExists is ORA-00955: name is already used by an existing object.
const oracleAlreadyExists = "ORA-00955"

// RunMigrations brings the worksheet schema up to date for the connection's
// driver. It is safe to call on every start.
func RunMigrations(db *sqlx.DB, logger *zap.Logger) error {
	switch db.DriverName() {
	case sqliteDriver:
		return runSQLiteMigrations(db, logger)
	case oracleDriver:
		return runOracleMigrations(db, logger)
	default:
		return fmt.Errorf("no migrations for driver %q", db.DriverName())
	}
}

func runSQLiteMigrations(db *sqlx.DB, logger *zap.Logger) error {
	src, err := iofs.New(migrationsFS, "migrations/sqlite")
	if err != nil {
		return fmt.Errorf("failed to open migration source: %w", err)
	}
	driver, err := sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No migrations to apply (database up-to-date)")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, _, _ := m.Version()
	logger.Info("Applied migrations successfully", zap.Uint("version", version))
	return nil
}

// runOracleMigrations executes every embedded oracle *.up.sql file in name
// order. Each file holds one statement without a trailing semicolon; objects
// that already exist are skipped.
func runOracleMigrations(db *sqlx.DB, logger *zap.Logger) error {
	files, err := fs.Glob(migrationsFS, "migrations/oracle/*.up.sql")
	if err != nil {
		return fmt.Errorf("could not list migrations: %w", err)
	}
	sort.Strings(files)

	for _, name := range files {
		content, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		stmt := strings.TrimSuffix(strings.TrimSpace(string(content)), ";")
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), oracleAlreadyExists) {
				logger.Info("Migration already applied", zap.String("file", name))
				continue
			}
			return fmt.Errorf("could not execute migration %s: %w", name, err)
		}
		logger.Info("Executed migration", zap.String("file", name))
	}

	logger.Info("Migrations completed successfully")
	return nil
}
