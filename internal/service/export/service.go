// Package export assembles a project's ordered sections and renders
// them into a downloadable office document. Read-only with respect to
// the content store.
package export

import (
	"context"
	"log/slog"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/repositories"
	"draftdeck/internal/domain/services"
)

// Service implements services.ExportService.
type Service struct {
	projects repositories.ProjectRepository
	sections repositories.SectionRepository
	builder  services.DocumentBuilder
	logger   *slog.Logger
}

// NewService creates a new export service
func NewService(
	projects repositories.ProjectRepository,
	sections repositories.SectionRepository,
	builder services.DocumentBuilder,
	logger *slog.Logger,
) *Service {
	return &Service{
		projects: projects,
		sections: sections,
		builder:  builder,
		logger:   logger,
	}
}

// Export renders the project through the document builder. An empty
// format falls back to the project's own document type.
func (s *Service) Export(ctx context.Context, projectID, userID string, format services.ExportFormat) (*services.ExportResult, error) {
	if format != "" && !format.Valid() {
		return nil, &domain.ValidationError{Message: "unsupported export format"}
	}

	project, err := s.projects.GetByID(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	if format == "" {
		format = services.ExportFormat(project.DocType)
	}

	sections, err := s.sections.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return nil, &domain.ValidationError{Message: "no sections to export"}
	}

	doc := &services.ExportDocument{
		Title:    project.Title,
		DocType:  project.DocType,
		Sections: make([]services.ExportSection, 0, len(sections)),
	}
	for _, section := range sections {
		content := ""
		if section.Content != nil {
			content = *section.Content
		}
		doc.Sections = append(doc.Sections, services.ExportSection{
			Title:   section.Title,
			Content: content,
		})
	}

	result, err := s.builder.Build(ctx, doc, format)
	if err != nil {
		return nil, err
	}

	s.logger.Info("project exported",
		"project_id", project.ID,
		"format", format,
		"bytes", len(result.Data),
	)
	return result, nil
}
