package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	_ "github.com/sijms/go-ora/v2"  // Oracle driver

	"go.uber.org/zap"
)

const (
	oracleDriver = "oracle"
	sqliteDriver = "sqlite3"
)

func init() {
	// go-ora is not in sqlx's default bindvar table; it takes :name placeholders.
	sqlx.BindDriver(oracleDriver, sqlx.NAMED)
}

// NewSQLXOracleDB connects to the Oracle worksheet store via go-ora.
func NewSQLXOracleDB(ctx context.Context, dsn string, logger *zap.Logger) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, oracleDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Oracle database: %w", err)
	}
	logger.Info("Successfully connected to Oracle database")
	return db, nil
}

// NewSQLiteDB opens the SQLite worksheet store at path, creating the file
// if needed.
func NewSQLiteDB(ctx context.Context, path string, logger *zap.Logger) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", path)
	db, err := sqlx.ConnectContext(ctx, sqliteDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database %s: %w", path, err)
	}
	// a single writer avoids SQLITE_BUSY under concurrent auto-saves
	db.SetMaxOpenConns(1)
	logger.Info("Opened SQLite database", zap.String("path", path))
	return db, nil
}
