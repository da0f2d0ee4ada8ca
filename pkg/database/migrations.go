package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes adds the full-text GIN indexes over requirement text and
// narrative summaries. The ent schema DSL cannot express them, so they are
// issued as raw SQL; IF NOT EXISTS makes re-runs harmless.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_qa_runs_requirement_text_gin
		ON qa_runs USING gin(to_tsvector('english', COALESCE(requirement_text, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create requirement_text GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_qa_summaries_narrative_gin
		ON qa_summaries USING gin(to_tsvector('english', narrative_summary))`)
	if err != nil {
		return fmt.Errorf("failed to create narrative_summary GIN index: %w", err)
	}

	return nil
}
