package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"art-atlas/internal/config"
	"art-atlas/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func roundTrip(t *testing.T, repo domain.WorksheetRepository) {
	t.Helper()
	ctx := context.Background()
	rec := &domain.WorksheetRecord{
		ItemID:    "nok",
		ItemTitle: "Nok Head",
		Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Responses: domain.WorksheetResponses{FirstImpression: "serene"},
	}
	require.NoError(t, repo.Put(ctx, rec))

	got, err := repo.Get(ctx, "nok")
	require.NoError(t, err)
	assert.Equal(t, rec.Responses, got.Responses)
	assert.Equal(t, "Nok Head", got.ItemTitle)
	assert.True(t, rec.Timestamp.Equal(got.Timestamp))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, "nok"))
	_, err = repo.Get(ctx, "nok")
	assert.ErrorIs(t, err, domain.ErrWorksheetNotFound)
}

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), &config.Config{Worksheet: config.WorksheetConfig{Store: config.StoreMemory}}, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, config.StoreMemory, s.Backend)
	assert.NotNil(t, s.Sessions)
	roundTrip(t, s.Repository)
}

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{
		Worksheet: config.WorksheetConfig{Store: config.StoreSQLite},
		DB:        config.DBConfig{SQLitePath: filepath.Join(t.TempDir(), "worksheets.db")},
	}
	s, err := Open(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, config.StoreSQLite, s.Backend)
	assert.NotNil(t, s.Sessions)
	roundTrip(t, s.Repository)
}

func TestOpen_Unknown(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{Worksheet: config.WorksheetConfig{Store: "mongo"}}, zap.NewNop())
	assert.Error(t, err)
}
