// Package service holds the project and feedback services; the
// reconciler, generation and export services live in subpackages.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"draftdeck/internal/config"
	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
	"draftdeck/internal/domain/services"
)

// projectService implements the ProjectService interface
type projectService struct {
	projects repositories.ProjectRepository
	sections repositories.SectionRepository
	logger   *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projects repositories.ProjectRepository,
	sections repositories.SectionRepository,
	logger *slog.Logger,
) services.ProjectService {
	return &projectService{
		projects: projects,
		sections: sections,
		logger:   logger,
	}
}

// CreateProject creates a new project in configured state
func (s *projectService) CreateProject(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	project := &models.Project{
		UserID:    req.UserID,
		Title:     strings.TrimSpace(req.Title),
		DocType:   req.DocType,
		MainTopic: strings.TrimSpace(req.MainTopic),
		Status:    models.StatusConfigured,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("project created",
		"id", project.ID,
		"doc_type", project.DocType,
		"user_id", req.UserID,
	)

	return project, nil
}

// GetProject retrieves a project with its ordered sections
func (s *projectService) GetProject(ctx context.Context, id, userID string) (*services.ProjectDetail, error) {
	project, err := s.projects.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	sections, err := s.sections.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	return &services.ProjectDetail{
		Project:  project,
		Sections: sections,
	}, nil
}

// ListProjects retrieves all projects for a user, newest first
func (s *projectService) ListProjects(ctx context.Context, userID string) ([]models.Project, error) {
	return s.projects.List(ctx, userID)
}

func (s *projectService) validateCreateRequest(req *services.CreateProjectRequest) error {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, config.MaxProjectTitleLength),
		),
		validation.Field(&req.MainTopic,
			validation.Required.Error("main_topic is required"),
			validation.Length(1, config.MaxTopicLength),
		),
	); err != nil {
		return err
	}

	if !req.DocType.Valid() {
		return fmt.Errorf("doc_type must be %q or %q", models.DocTypeReport, models.DocTypeSlides)
	}

	return nil
}
