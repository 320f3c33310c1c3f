package adapter

import (
	"context"
	"testing"
	"time"

	"art-atlas/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCacheWithClock(func() time.Time { return now })

	require.NoError(t, c.Set(ctx, "quiz_session_a", "{}", 10*time.Minute))
	require.NoError(t, c.Set(ctx, "analysis_nok", "{}", 0))

	val, err := c.Get(ctx, "quiz_session_a")
	require.NoError(t, err)
	assert.Equal(t, "{}", val)

	now = now.Add(10 * time.Minute)
	_, err = c.Get(ctx, "quiz_session_a")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.Equal(t, 1, c.Len(), "expired entry dropped on read")

	keys, err := c.Keys(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"analysis_nok"}, keys)
}

func TestMemoryCache_SetSweepsExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCacheWithClock(func() time.Time { return now })

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, c.Set(ctx, k, "x", time.Minute))
	}
	assert.Equal(t, 3, c.Len())

	now = now.Add(2 * time.Minute)
	require.NoError(t, c.Set(ctx, "d", "x", time.Minute))
	assert.Equal(t, 1, c.Len())
}
