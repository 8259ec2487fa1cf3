// Package outline implements the section-configuration reconciliation:
// comparing a submitted outline against the stored sections and either
// preserving everything or atomically resetting all dependent content.
package outline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"draftdeck/internal/config"
	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
	"draftdeck/internal/domain/services"
)

// Service implements services.OutlineService.
type Service struct {
	projects  repositories.ProjectRepository
	sections  repositories.SectionRepository
	revisions repositories.RevisionRepository
	feedback  repositories.FeedbackRepository
	comments  repositories.CommentRepository
	txManager repositories.TransactionManager
	logger    *slog.Logger
}

// NewService creates a new outline reconciliation service
func NewService(
	projects repositories.ProjectRepository,
	sections repositories.SectionRepository,
	revisions repositories.RevisionRepository,
	feedback repositories.FeedbackRepository,
	comments repositories.CommentRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) *Service {
	return &Service{
		projects:  projects,
		sections:  sections,
		revisions: revisions,
		feedback:  feedback,
		comments:  comments,
		txManager: txManager,
		logger:    logger,
	}
}

// Configure reconciles the submitted outline with the stored sections.
//
// An outline structurally identical to the stored one (equal length and,
// index-sorted, pairwise equal index and trimmed title) preserves every
// section, revision, feedback and comment row untouched. Any structural
// difference deletes all of them and inserts the new outline as fresh
// sections, in a single transaction. A pure index reordering with titles
// attached to different indices counts as changed; this coarse policy is
// deliberate and callers depend on its all-or-nothing behavior.
func (s *Service) Configure(ctx context.Context, projectID, userID string, entries []services.OutlineEntryInput) (services.Outcome, error) {
	project, err := s.projects.GetByID(ctx, projectID, userID)
	if err != nil {
		return "", err
	}

	submitted, err := normalize(entries)
	if err != nil {
		return "", err
	}

	existing, err := s.sections.ListByProject(ctx, project.ID)
	if err != nil {
		return "", err
	}

	if !structureChanged(existing, submitted) {
		// Nothing changed: keep content, revisions, feedback and
		// comments exactly as they are.
		if err := s.projects.SetStatus(ctx, project.ID, models.StatusConfigured); err != nil {
			return "", err
		}
		s.logger.Info("outline preserved",
			"project_id", project.ID,
			"sections", len(submitted),
		)
		return services.OutcomePreserved, nil
	}

	// Structure changed: replace sections and all dependent rows in one
	// transaction. Children go first so the reset never relies on
	// declared cascades alone.
	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.revisions.DeleteByProject(txCtx, project.ID); err != nil {
			return err
		}
		if err := s.feedback.DeleteByProject(txCtx, project.ID); err != nil {
			return err
		}
		if err := s.comments.DeleteByProject(txCtx, project.ID); err != nil {
			return err
		}
		if err := s.sections.DeleteByProject(txCtx, project.ID); err != nil {
			return err
		}
		if _, err := s.sections.CreateBatch(txCtx, project.ID, submitted); err != nil {
			return err
		}
		return s.projects.SetStatus(txCtx, project.ID, models.StatusConfigured)
	})
	if err != nil {
		return "", fmt.Errorf("reset outline: %w", err)
	}

	s.logger.Info("outline reset",
		"project_id", project.ID,
		"old_sections", len(existing),
		"new_sections", len(submitted),
	)
	return services.OutcomeReset, nil
}

// normalize validates and cleans the submitted entries: titles are
// trimmed, entries missing an index or left with a blank title are
// silently dropped, and the survivors are sorted by index. An empty
// result, an oversized outline or a duplicate index rejects the whole
// submission.
func normalize(entries []services.OutlineEntryInput) ([]models.OutlineEntry, error) {
	if len(entries) == 0 {
		return nil, &domain.ValidationError{Message: "sections array is required"}
	}
	if len(entries) > config.MaxOutlineEntries {
		return nil, &domain.ValidationError{
			Message: fmt.Sprintf("at most %d sections are allowed", config.MaxOutlineEntries),
		}
	}

	cleaned := make([]models.OutlineEntry, 0, len(entries))
	for _, entry := range entries {
		title := strings.TrimSpace(entry.Title)
		if entry.Index == nil || title == "" {
			continue
		}
		if len(title) > config.MaxSectionTitleLength {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("section title exceeds %d characters", config.MaxSectionTitleLength),
			}
		}
		cleaned = append(cleaned, models.OutlineEntry{Index: *entry.Index, Title: title})
	}

	if len(cleaned) == 0 {
		return nil, &domain.ValidationError{
			Message: "at least one section with a valid index and title is required",
		}
	}

	sort.Slice(cleaned, func(i, j int) bool { return cleaned[i].Index < cleaned[j].Index })

	for i := 1; i < len(cleaned); i++ {
		if cleaned[i].Index == cleaned[i-1].Index {
			return nil, &domain.ValidationError{
				Message: fmt.Sprintf("duplicate section index %d", cleaned[i].Index),
			}
		}
	}

	return cleaned, nil
}

// structureChanged compares the stored sections with the normalized
// submission. Both sides are index-sorted; equality is positional on
// (index, trimmed title) pairs.
func structureChanged(existing []models.Section, submitted []models.OutlineEntry) bool {
	if len(existing) != len(submitted) {
		return true
	}
	for i, section := range existing {
		if section.Index != submitted[i].Index {
			return true
		}
		if strings.TrimSpace(section.Title) != submitted[i].Title {
			return true
		}
	}
	return false
}
