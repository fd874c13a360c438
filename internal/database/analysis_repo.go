package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/TiktokAnalyser/tiktok-virality-analyzer/internal/models"
)

type AnalysisRepository struct {
	db *DB
}

func NewAnalysisRepository(db *DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

const analysisColumns = `
	id, profile, source_filename, transcript, topic, category, matched,
	matched_keyword, metrics, content, engagement, best_post_time,
	next_slots, report_title, report_filename, created_at
`

// Create inserts a new analysis into the database
func (r *AnalysisRepository) Create(ctx context.Context, analysis *models.Analysis) error {
	if analysis.ID == "" {
		analysis.ID = uuid.New().String()
	}

	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = time.Now()
	}

	metricsJSON, err := json.Marshal(analysis.Metrics)
	if err != nil {
		return fmt.Errorf("failed to marshal metrics: %w", err)
	}

	contentJSON, err := json.Marshal(analysis.Content)
	if err != nil {
		return fmt.Errorf("failed to marshal content: %w", err)
	}

	query := `
		INSERT INTO analyses (id, profile, source_filename, transcript, topic, category,
		                      matched, matched_keyword, hashtags, metrics, content,
		                      engagement, best_post_time, next_slots, report_title,
		                      report_filename, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err = r.db.Pool.Exec(ctx, query,
		analysis.ID,
		analysis.Profile,
		analysis.SourceFilename,
		analysis.Transcript,
		analysis.Topic,
		analysis.Classification.Category,
		analysis.Classification.Matched,
		analysis.Classification.Keyword,
		analysis.Content.Hashtags,
		metricsJSON,
		contentJSON,
		analysis.Engagement,
		analysis.BestPostTime,
		analysis.NextSlots,
		analysis.ReportTitle,
		analysis.ReportFilename,
		analysis.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}

	return nil
}

// GetByID retrieves an analysis by its ID
func (r *AnalysisRepository) GetByID(ctx context.Context, id string) (*models.Analysis, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	query := `SELECT ` + analysisColumns + ` FROM analyses WHERE id = $1`

	analysis, err := scanAnalysis(r.db.Pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	return analysis, nil
}

// Recent retrieves the latest analyses, newest first
func (r *AnalysisRepository) Recent(ctx context.Context, limit int) ([]*models.Analysis, error) {
	query := `SELECT ` + analysisColumns + ` FROM analyses ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	var analyses []*models.Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		analyses = append(analyses, analysis)
	}

	return analyses, rows.Err()
}

// CountByCategory returns the number of stored analyses per category
func (r *AnalysisRepository) CountByCategory(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT category, COUNT(*) FROM analyses GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to count analyses: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		counts[category] = count
	}

	return counts, rows.Err()
}

func scanAnalysis(row pgx.Row) (*models.Analysis, error) {
	analysis := &models.Analysis{}
	var metricsJSON, contentJSON []byte

	err := row.Scan(
		&analysis.ID,
		&analysis.Profile,
		&analysis.SourceFilename,
		&analysis.Transcript,
		&analysis.Topic,
		&analysis.Classification.Category,
		&analysis.Classification.Matched,
		&analysis.Classification.Keyword,
		&metricsJSON,
		&contentJSON,
		&analysis.Engagement,
		&analysis.BestPostTime,
		&analysis.NextSlots,
		&analysis.ReportTitle,
		&analysis.ReportFilename,
		&analysis.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(metricsJSON, &analysis.Metrics); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metrics: %w", err)
	}
	if err := json.Unmarshal(contentJSON, &analysis.Content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal content: %w", err)
	}

	return analysis, nil
}
