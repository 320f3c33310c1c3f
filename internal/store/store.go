// Package store opens the configured worksheet store.
package store

import (
	"context"
	"fmt"

	"art-atlas/internal/adapter"
	"art-atlas/internal/cache"
	"art-atlas/internal/config"
	"art-atlas/internal/database"
	"art-atlas/internal/domain"
	"art-atlas/internal/repository"

	"go.uber.org/zap"
)

// Store is an open worksheet repository together with its connection.
// Sessions holds quiz session logs: Redis when that is the backend,
// process memory otherwise.
type Store struct {
	Repository domain.WorksheetRepository
	Sessions   domain.Cache
	Backend    string
	close      func() error
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open connects the backend named by cfg.Worksheet.Store. SQL backends are
// migrated before use.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.Worksheet.Store {
	case config.StoreMemory, "":
		logger.Info("Using in-memory worksheet store")
		return &Store{
			Repository: adapter.NewKVWorksheetStore(adapter.NewMemoryCache()),
			Sessions:   adapter.NewMemoryCache(),
			Backend:    config.StoreMemory,
		}, nil

	case config.StoreRedis:
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		logger.Info("Successfully connected to Redis", zap.String("address", client.Options().Addr))
		redisCache := adapter.NewRedisCacheAdapter(client)
		return &Store{
			Repository: adapter.NewKVWorksheetStore(redisCache),
			Sessions:   redisCache,
			Backend:    config.StoreRedis,
			close:      client.Close,
		}, nil

	case config.StoreSQLite:
		db, err := database.NewSQLiteDB(ctx, cfg.DB.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		if err := database.RunMigrations(db, logger); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Store{
			Repository: repository.NewSQLXWorksheetRepository(db, repository.DialectSQLite),
			Sessions:   adapter.NewMemoryCache(),
			Backend:    config.StoreSQLite,
			close:      db.Close,
		}, nil

	case config.StoreOracle:
		db, err := database.NewSQLXOracleDB(ctx, cfg.GetDSN(), logger)
		if err != nil {
			return nil, err
		}
		if err := database.RunMigrations(db, logger); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Store{
			Repository: repository.NewSQLXWorksheetRepository(db, repository.DialectOracle),
			Sessions:   adapter.NewMemoryCache(),
			Backend:    config.StoreOracle,
			close:      db.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown worksheet store %q", cfg.Worksheet.Store)
	}
}
