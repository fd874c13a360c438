package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/models"
)

func TestMemoryStoreCreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	a := models.NewAnalysis("analysis", "clip.mp4")
	a.Topic = "clip"
	require.NoError(t, store.Create(ctx, a))
	require.NotEmpty(t, a.ID)

	got, err := store.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "clip", got.Topic)

	got.Topic = "changed"
	again, err := store.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "clip", again.Topic)

	_, err = store.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreRecentAndCounts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	base := time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

	for i, category := range []string{models.CategoryFood, models.CategoryFood, models.CategoryGeneral} {
		a := models.NewAnalysis("analysis", "clip.mp4")
		a.Classification.Category = category
		a.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.Create(ctx, a))
	}

	recent, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, base.Add(2*time.Minute), recent[0].CreatedAt)
	assert.Equal(t, base.Add(time.Minute), recent[1].CreatedAt)

	counts, err := store.CountByCategory(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{models.CategoryFood: 2, models.CategoryGeneral: 1}, counts)
}
