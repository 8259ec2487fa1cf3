package services

import (
	"context"

	"draftdeck/internal/domain/models"
)

// CreateProjectRequest carries the fields of a project creation call.
type CreateProjectRequest struct {
	UserID    string         `json:"-"`
	Title     string         `json:"title"`
	DocType   models.DocType `json:"doc_type"`
	MainTopic string         `json:"main_topic"`
}

// ProjectDetail is a project together with its ordered sections.
type ProjectDetail struct {
	Project  *models.Project  `json:"project"`
	Sections []models.Section `json:"sections"`
}

// ProjectService handles project lifecycle operations.
type ProjectService interface {
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*models.Project, error)
	GetProject(ctx context.Context, id, userID string) (*ProjectDetail, error)
	ListProjects(ctx context.Context, userID string) ([]models.Project, error)
}
