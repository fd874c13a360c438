package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

	c := NewMemorySessionCache(30 * time.Minute)
	c.now = func() time.Time { return now }

	_, err := c.Latest(ctx, "s1")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, c.SetLatest(ctx, "s1", "a1"))
	require.NoError(t, c.SetLatest(ctx, "s1", "a2"))

	id, err := c.Latest(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "a2", id)

	now = now.Add(31 * time.Minute)
	_, err = c.Latest(ctx, "s1")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemorySessionCachePrunesExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

	c := NewMemorySessionCache(time.Minute)
	c.now = func() time.Time { return now }

	require.NoError(t, c.SetLatest(ctx, "old", "a1"))
	now = now.Add(2 * time.Minute)
	require.NoError(t, c.SetLatest(ctx, "new", "a2"))

	assert.Len(t, c.entries, 1)
	assert.Contains(t, c.entries, "new")
}

func TestNewRedisSessionCacheRejectsBadURL(t *testing.T) {
	_, err := NewRedisSessionCache(context.Background(), "not-a-url", time.Minute)
	assert.Error(t, err)
}
