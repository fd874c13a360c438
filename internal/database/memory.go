package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/models"
)

// MemoryStore is the AnalysisStore used when no database is configured
type MemoryStore struct {
	mu       sync.RWMutex
	analyses map[string]*models.Analysis
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{analyses: make(map[string]*models.Analysis)}
}

func (s *MemoryStore) Create(ctx context.Context, analysis *models.Analysis) error {
	if analysis.ID == "" {
		analysis.ID = uuid.New().String()
	}
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = time.Now()
	}

	stored := *analysis
	s.mu.Lock()
	s.analyses[analysis.ID] = &stored
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (*models.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	analysis, ok := s.analyses[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *analysis
	return &copied, nil
}

func (s *MemoryStore) Recent(ctx context.Context, limit int) ([]*models.Analysis, error) {
	s.mu.RLock()
	all := make([]*models.Analysis, 0, len(s.analyses))
	for _, a := range s.analyses {
		copied := *a
		all = append(all, &copied)
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *MemoryStore) CountByCategory(ctx context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for _, a := range s.analyses {
		counts[a.Category()]++
	}
	return counts, nil
}
