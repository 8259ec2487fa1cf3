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

// PostgresCommentRepository implements the CommentRepository interface
type PostgresCommentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(config *RepositoryConfig) repositories.CommentRepository {
	return &PostgresCommentRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Append inserts a free-text comment for a section
func (r *PostgresCommentRepository) Append(ctx context.Context, comment *models.Comment) error {
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	comment.CreatedAt = time.Now()

	query := fmt.Sprintf(`
		INSERT INTO %s (id, section_id, comment, created_at)
		VALUES ($1, $2, $3, $4)
	`, r.tables.Comments)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, comment.ID, comment.SectionID, comment.Comment, comment.CreatedAt); err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("section %s: %w", comment.SectionID, domain.ErrNotFound)
		}
		return fmt.Errorf("append comment: %w", err)
	}

	return nil
}

// ListBySection returns a section's comments oldest first
func (r *PostgresCommentRepository) ListBySection(ctx context.Context, sectionID string) ([]models.Comment, error) {
	query := fmt.Sprintf(`
		SELECT id, section_id, comment, created_at
		FROM %s
		WHERE section_id = $1
		ORDER BY created_at ASC
	`, r.tables.Comments)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, sectionID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.ID, &comment.SectionID, &comment.Comment, &comment.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	return comments, nil
}

// DeleteByProject removes all comments belonging to the project's sections
func (r *PostgresCommentRepository) DeleteByProject(ctx context.Context, projectID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE section_id IN (SELECT id FROM %s WHERE project_id = $1)
	`, r.tables.Comments, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, projectID); err != nil {
		return fmt.Errorf("delete comments: %w", err)
	}

	return nil
}
