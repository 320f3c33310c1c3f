package main

import (
	"context"
	"log"

	"art-atlas/internal/config"
	"art-atlas/internal/database"
	"art-atlas/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	ctx := context.Background()
	var db *sqlx.DB
	switch cfg.Worksheet.Store {
	case config.StoreSQLite:
		db, err = database.NewSQLiteDB(ctx, cfg.DB.SQLitePath, l)
	case config.StoreOracle:
		db, err = database.NewSQLXOracleDB(ctx, cfg.GetDSN(), l)
	default:
		l.Fatal("Worksheet store has no schema to migrate", zap.String("store", cfg.Worksheet.Store))
	}
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db, l); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
}
