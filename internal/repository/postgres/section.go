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

// PostgresSectionRepository implements the SectionRepository interface
type PostgresSectionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(config *RepositoryConfig) repositories.SectionRepository {
	return &PostgresSectionRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// ListByProject retrieves a project's sections ordered by index ascending
func (r *PostgresSectionRepository) ListByProject(ctx context.Context, projectID string) ([]models.Section, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, "index", title, content, created_at, updated_at
		FROM %s
		WHERE project_id = $1
		ORDER BY "index" ASC
	`, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var sections []models.Section
	for rows.Next() {
		var section models.Section
		err := rows.Scan(
			&section.ID,
			&section.ProjectID,
			&section.Index,
			&section.Title,
			&section.Content,
			&section.CreatedAt,
			&section.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		sections = append(sections, section)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sections: %w", err)
	}

	if sections == nil {
		sections = []models.Section{}
	}

	return sections, nil
}

// GetByID retrieves a section by ID. Ownership is not checked here;
// callers resolve the owning project themselves.
func (r *PostgresSectionRepository) GetByID(ctx context.Context, id string) (*models.Section, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, "index", title, content, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Sections)

	var section models.Section
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&section.ID,
		&section.ProjectID,
		&section.Index,
		&section.Title,
		&section.Content,
		&section.CreatedAt,
		&section.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get section: %w", err)
	}

	return &section, nil
}

// CreateBatch inserts fresh sections for a normalized outline
func (r *PostgresSectionRepository) CreateBatch(ctx context.Context, projectID string, entries []models.OutlineEntry) ([]models.Section, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, project_id, "index", title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULL, $5, $5)
	`, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	now := time.Now()

	sections := make([]models.Section, 0, len(entries))
	for _, entry := range entries {
		section := models.Section{
			ID:        uuid.NewString(),
			ProjectID: projectID,
			Index:     entry.Index,
			Title:     entry.Title,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if _, err := executor.Exec(ctx, query,
			section.ID,
			section.ProjectID,
			section.Index,
			section.Title,
			now,
		); err != nil {
			if IsPgDuplicateError(err) {
				return nil, &domain.ConflictError{
					Message:      fmt.Sprintf("section index %d already exists in project", entry.Index),
					ResourceType: "section",
				}
			}
			return nil, fmt.Errorf("create section: %w", err)
		}

		sections = append(sections, section)
	}

	return sections, nil
}

// DeleteByProject removes every section of a project
func (r *PostgresSectionRepository) DeleteByProject(ctx context.Context, projectID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE project_id = $1`, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, projectID); err != nil {
		return fmt.Errorf("delete sections: %w", err)
	}

	return nil
}

// UpdateContent replaces a section's body text
func (r *PostgresSectionRepository) UpdateContent(ctx context.Context, id string, content string) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET content = $1, updated_at = $2
		WHERE id = $3
	`, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, content, time.Now(), id)
	if err != nil {
		return fmt.Errorf("update section content: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
