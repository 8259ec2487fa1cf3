package repositories

import (
	"context"

	"draftdeck/internal/domain/models"
)

// SectionRepository stores a project's outline sections. Sections are
// owned by their project and never survive an outline reset.
type SectionRepository interface {
	// ListByProject returns the project's sections ordered by index
	// ascending.
	ListByProject(ctx context.Context, projectID string) ([]models.Section, error)

	// GetByID returns a section without ownership scoping; callers
	// must verify the owning project themselves.
	GetByID(ctx context.Context, id string) (*models.Section, error)

	// CreateBatch inserts fresh sections (no content) for the given
	// normalized outline and returns them in index order.
	CreateBatch(ctx context.Context, projectID string, entries []models.OutlineEntry) ([]models.Section, error)

	// DeleteByProject removes every section of the project.
	DeleteByProject(ctx context.Context, projectID string) error

	// UpdateContent replaces the section body and bumps updated_at.
	UpdateContent(ctx context.Context, id string, content string) error
}
