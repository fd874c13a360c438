package database

import (
	"context"
	"log"
)

// CreateTables creates the analysis history table
func (db *DB) CreateTables(ctx context.Context) error {
	log.Println("Creating database tables...")

	analysesTable := `
	CREATE TABLE IF NOT EXISTS analyses (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		profile VARCHAR(50) NOT NULL,
		source_filename TEXT NOT NULL DEFAULT '',
		transcript TEXT NOT NULL DEFAULT '',
		topic TEXT NOT NULL,
		category VARCHAR(50) NOT NULL,
		matched BOOLEAN NOT NULL DEFAULT FALSE,
		matched_keyword VARCHAR(100) NOT NULL DEFAULT '',
		hashtags TEXT[],
		metrics JSONB NOT NULL DEFAULT '[]',
		content JSONB NOT NULL DEFAULT '{}',
		engagement VARCHAR(50) NOT NULL DEFAULT '',
		best_post_time VARCHAR(50) NOT NULL DEFAULT '',
		next_slots TIMESTAMPTZ[],
		report_title TEXT NOT NULL DEFAULT '',
		report_filename VARCHAR(100) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_analyses_category ON analyses(category);
	CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses(created_at DESC);
	`

	if _, err := db.Pool.Exec(ctx, analysesTable); err != nil {
		return err
	}

	log.Println("✅ All tables created successfully")
	return nil
}
