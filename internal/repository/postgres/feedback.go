package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
)

// PostgresFeedbackRepository implements the FeedbackRepository interface
type PostgresFeedbackRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(config *RepositoryConfig) repositories.FeedbackRepository {
	return &PostgresFeedbackRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Append inserts a like/dislike vote for a section
func (r *PostgresFeedbackRepository) Append(ctx context.Context, fb *models.Feedback) error {
	if fb.ID == "" {
		fb.ID = uuid.NewString()
	}
	fb.CreatedAt = time.Now()

	query := fmt.Sprintf(`
		INSERT INTO %s (id, section_id, is_like, created_at)
		VALUES ($1, $2, $3, $4)
	`, r.tables.Feedback)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, fb.ID, fb.SectionID, fb.IsLike, fb.CreatedAt); err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("section %s: %w", fb.SectionID, domain.ErrNotFound)
		}
		return fmt.Errorf("append feedback: %w", err)
	}

	return nil
}

// CountBySection returns the like and dislike totals for a section
func (r *PostgresFeedbackRepository) CountBySection(ctx context.Context, sectionID string) (int, int, error) {
	query := fmt.Sprintf(`
		SELECT
			COUNT(*) FILTER (WHERE is_like),
			COUNT(*) FILTER (WHERE NOT is_like)
		FROM %s
		WHERE section_id = $1
	`, r.tables.Feedback)

	var likes, dislikes int
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, sectionID).Scan(&likes, &dislikes); err != nil {
		return 0, 0, fmt.Errorf("count feedback: %w", err)
	}

	return likes, dislikes, nil
}

// DeleteByProject removes all feedback belonging to the project's sections
func (r *PostgresFeedbackRepository) DeleteByProject(ctx context.Context, projectID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE section_id IN (SELECT id FROM %s WHERE project_id = $1)
	`, r.tables.Feedback, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, projectID); err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}

	return nil
}
