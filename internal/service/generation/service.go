// Package generation orchestrates text generation against the content
// store: batch generation for a whole project and prompt-guided
// refinement of single sections.
package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"draftdeck/internal/config"
	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
	"draftdeck/internal/domain/services"
)

// Fallback bodies recorded when the provider cannot serve a section
// during batch generation and the section has no prior content.
const (
	fallbackUnavailable = "(AI generation unavailable)"
	fallbackFailed      = "(AI generation failed; please try again.)"
)

// Service implements services.GenerationService.
type Service struct {
	projects  repositories.ProjectRepository
	sections  repositories.SectionRepository
	revisions repositories.RevisionRepository
	txManager repositories.TransactionManager
	provider  services.TextGenerator
	prompts   *PromptRegistry
	timeout   time.Duration
	logger    *slog.Logger
}

// NewService creates a new generation service
func NewService(
	projects repositories.ProjectRepository,
	sections repositories.SectionRepository,
	revisions repositories.RevisionRepository,
	txManager repositories.TransactionManager,
	provider services.TextGenerator,
	prompts *PromptRegistry,
	timeout time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{
		projects:  projects,
		sections:  sections,
		revisions: revisions,
		txManager: txManager,
		provider:  provider,
		prompts:   prompts,
		timeout:   timeout,
		logger:    logger,
	}
}

// GenerateProject generates body text for every section of the project.
// Sections are processed independently: a provider failure degrades
// that one section to fallback text (its existing body if any) and the
// batch continues. Each section's outcome is persisted as content
// update plus revision in its own transaction, and the project is
// marked generated afterwards.
func (s *Service) GenerateProject(ctx context.Context, projectID, userID string) error {
	project, err := s.projects.GetByID(ctx, projectID, userID)
	if err != nil {
		return err
	}

	sections, err := s.sections.ListByProject(ctx, project.ID)
	if err != nil {
		return err
	}
	if len(sections) == 0 {
		return &domain.ValidationError{Message: "no sections configured"}
	}

	for i := range sections {
		section := &sections[i]

		newText, genErr := s.generateSection(ctx, project, section)
		if genErr != nil {
			// Do not abort the batch; fall back to the existing body
			// or a placeholder.
			s.logger.Error("section generation failed",
				"section_id", section.ID,
				"project_id", project.ID,
				"error", genErr,
			)
			newText = fallbackText(section, genErr)
		}

		if err := s.recordSectionText(ctx, section, newText, ""); err != nil {
			return err
		}
	}

	if err := s.projects.SetStatus(ctx, project.ID, models.StatusGenerated); err != nil {
		return err
	}

	s.logger.Info("project content generated",
		"project_id", project.ID,
		"sections", len(sections),
	)
	return nil
}

// RefineSection rewrites one section from a user instruction. Provider
// failures abort the request without recording a revision.
func (s *Service) RefineSection(ctx context.Context, sectionID, userID, prompt string) (*services.RefineResult, error) {
	prompt = strings.TrimSpace(prompt)
	if err := validation.Validate(prompt,
		validation.Required.Error("prompt is required"),
		validation.Length(1, config.MaxPromptLength),
	); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	section, err := s.sections.GetByID(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	// The section exists; a failed owner lookup means it belongs to
	// somebody else.
	project, err := s.projects.GetByID(ctx, section.ProjectID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.ForbiddenError{Message: "not authorized for this section"}
		}
		return nil, err
	}

	refinePrompt, err := s.prompts.RefinePrompt(project, section, prompt)
	if err != nil {
		return nil, err
	}

	newText, err := s.callProvider(ctx, refinePrompt)
	if err != nil {
		return nil, fmt.Errorf("refine section %s: %w", section.ID, err)
	}

	rev, err := s.persistRevision(ctx, section, newText, prompt)
	if err != nil {
		return nil, err
	}

	s.logger.Info("section refined",
		"section_id", section.ID,
		"version", rev.Version,
	)
	return &services.RefineResult{
		SectionID: section.ID,
		Version:   rev.Version,
		Content:   newText,
	}, nil
}

// generateSection renders the fresh-generation prompt and calls the
// provider with the configured timeout.
func (s *Service) generateSection(ctx context.Context, project *models.Project, section *models.Section) (string, error) {
	prompt, err := s.prompts.GeneratePrompt(project, section)
	if err != nil {
		return "", err
	}
	return s.callProvider(ctx, prompt)
}

func (s *Service) callProvider(ctx context.Context, prompt string) (string, error) {
	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.provider.GenerateText(callCtx, &services.ProviderRequest{
		Prompt:    prompt,
		Model:     s.prompts.DefaultModel(),
		MaxTokens: s.prompts.MaxTokens(),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: generation timed out", domain.ErrUnavailable)
		}
		return "", err
	}

	return strings.TrimSpace(text), nil
}

// recordSectionText persists a generated body: content update plus
// revision append in one transaction. The prompt marker depends on
// whether the section has been generated before.
func (s *Service) recordSectionText(ctx context.Context, section *models.Section, newText, userPrompt string) error {
	return s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		prompt := userPrompt
		if prompt == "" {
			last, err := s.revisions.Latest(txCtx, section.ID)
			if err != nil {
				return err
			}
			if last == nil {
				prompt = models.PromptInitialGeneration
			} else {
				prompt = models.PromptRegenerate
			}
		}

		if err := s.sections.UpdateContent(txCtx, section.ID, newText); err != nil {
			return err
		}

		rev := &models.Revision{
			SectionID:  section.ID,
			Prompt:     prompt,
			OldContent: section.Content,
			NewContent: newText,
		}
		if err := s.revisions.Append(txCtx, rev); err != nil {
			return err
		}

		content := newText
		section.Content = &content
		return nil
	})
}

// persistRevision is recordSectionText returning the appended revision.
func (s *Service) persistRevision(ctx context.Context, section *models.Section, newText, userPrompt string) (*models.Revision, error) {
	rev := &models.Revision{
		SectionID:  section.ID,
		Prompt:     userPrompt,
		OldContent: section.Content,
		NewContent: newText,
	}
	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.sections.UpdateContent(txCtx, section.ID, newText); err != nil {
			return err
		}
		return s.revisions.Append(txCtx, rev)
	})
	if err != nil {
		return nil, err
	}
	return rev, nil
}

// fallbackText picks the degraded body for a failed section: the
// existing content when present, otherwise a placeholder naming the
// failure kind.
func fallbackText(section *models.Section, genErr error) string {
	if section.Content != nil && strings.TrimSpace(*section.Content) != "" {
		return *section.Content
	}
	if errors.Is(genErr, domain.ErrUnavailable) {
		return fallbackUnavailable
	}
	return fallbackFailed
}
