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

// PostgresRevisionRepository implements the RevisionRepository interface
type PostgresRevisionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewRevisionRepository creates a new revision repository
func NewRevisionRepository(config *RepositoryConfig) repositories.RevisionRepository {
	return &PostgresRevisionRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Append inserts a revision, computing the next version from the latest
// existing revision of the section inside the INSERT itself. The
// UNIQUE(section_id, version) constraint turns a concurrent append into
// a conflict instead of a silent duplicate.
func (r *PostgresRevisionRepository) Append(ctx context.Context, rev *models.Revision) error {
	if rev.ID == "" {
		rev.ID = uuid.NewString()
	}
	rev.CreatedAt = time.Now()

	query := fmt.Sprintf(`
		INSERT INTO %s (id, section_id, version, prompt, old_content, new_content, created_at)
		SELECT $1, $2, COALESCE(MAX(version), 0) + 1, $3, $4, $5, $6
		FROM %s
		WHERE section_id = $2
		RETURNING version
	`, r.tables.Revisions, r.tables.Revisions)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		rev.ID,
		rev.SectionID,
		rev.Prompt,
		rev.OldContent,
		rev.NewContent,
		rev.CreatedAt,
	).Scan(&rev.Version)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("concurrent revision for section %s", rev.SectionID),
				ResourceType: "revision",
				ResourceID:   rev.SectionID,
			}
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("section %s: %w", rev.SectionID, domain.ErrNotFound)
		}
		return fmt.Errorf("append revision: %w", err)
	}

	return nil
}

// Latest retrieves the highest-version revision for a section, or nil
// when the section has none.
func (r *PostgresRevisionRepository) Latest(ctx context.Context, sectionID string) (*models.Revision, error) {
	query := fmt.Sprintf(`
		SELECT id, section_id, version, prompt, old_content, new_content, created_at
		FROM %s
		WHERE section_id = $1
		ORDER BY version DESC
		LIMIT 1
	`, r.tables.Revisions)

	var rev models.Revision
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, sectionID).Scan(
		&rev.ID,
		&rev.SectionID,
		&rev.Version,
		&rev.Prompt,
		&rev.OldContent,
		&rev.NewContent,
		&rev.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest revision: %w", err)
	}

	return &rev, nil
}

// DeleteByProject removes all revisions belonging to the project's sections
func (r *PostgresRevisionRepository) DeleteByProject(ctx context.Context, projectID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE section_id IN (SELECT id FROM %s WHERE project_id = $1)
	`, r.tables.Revisions, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, projectID); err != nil {
		return fmt.Errorf("delete revisions: %w", err)
	}

	return nil
}
