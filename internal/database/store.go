package database

import (
	"context"
	"errors"

	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/models"
)

var ErrNotFound = errors.New("analysis not found")

// AnalysisStore keeps finished analyses so reports can be fetched later
type AnalysisStore interface {
	Create(ctx context.Context, analysis *models.Analysis) error
	GetByID(ctx context.Context, id string) (*models.Analysis, error)
	Recent(ctx context.Context, limit int) ([]*models.Analysis, error)
	CountByCategory(ctx context.Context) (map[string]int, error)
}
