package repositories

import (
	"context"

	"draftdeck/internal/domain/models"
)

// ProjectRepository is the durable store for projects. All reads are
// scoped by the owning user id; a project owned by someone else is
// indistinguishable from a missing one.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error

	// GetByID returns the project only when it is owned by userID.
	GetByID(ctx context.Context, id, userID string) (*models.Project, error)

	// List returns the user's projects, newest first.
	List(ctx context.Context, userID string) ([]models.Project, error)

	// SetStatus updates the lifecycle status and bumps updated_at.
	SetStatus(ctx context.Context, id string, status models.ProjectStatus) error
}
