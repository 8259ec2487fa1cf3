package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"draftdeck/internal/config"
	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/repositories"
	"draftdeck/internal/domain/services"
)

// feedbackService implements the FeedbackService interface
type feedbackService struct {
	projects repositories.ProjectRepository
	sections repositories.SectionRepository
	feedback repositories.FeedbackRepository
	comments repositories.CommentRepository
	logger   *slog.Logger
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(
	projects repositories.ProjectRepository,
	sections repositories.SectionRepository,
	feedback repositories.FeedbackRepository,
	comments repositories.CommentRepository,
	logger *slog.Logger,
) services.FeedbackService {
	return &feedbackService{
		projects: projects,
		sections: sections,
		feedback: feedback,
		comments: comments,
		logger:   logger,
	}
}

// AddFeedback appends a like/dislike vote to an owned section
func (s *feedbackService) AddFeedback(ctx context.Context, sectionID, userID string, isLike bool) (*models.Feedback, error) {
	section, err := s.ownedSection(ctx, sectionID, userID)
	if err != nil {
		return nil, err
	}

	fb := &models.Feedback{
		SectionID: section.ID,
		IsLike:    isLike,
	}
	if err := s.feedback.Append(ctx, fb); err != nil {
		return nil, err
	}

	s.logger.Info("feedback recorded",
		"section_id", section.ID,
		"is_like", isLike,
	)
	return fb, nil
}

// AddComment appends a free-text comment to an owned section
func (s *feedbackService) AddComment(ctx context.Context, sectionID, userID, text string) (*models.Comment, error) {
	text = strings.TrimSpace(text)
	if err := validation.Validate(text,
		validation.Required.Error("comment is required"),
		validation.Length(1, config.MaxCommentLength),
	); err != nil {
		return nil, &domain.ValidationError{Message: err.Error()}
	}

	section, err := s.ownedSection(ctx, sectionID, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		SectionID: section.ID,
		Comment:   text,
	}
	if err := s.comments.Append(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment added", "section_id", section.ID)
	return comment, nil
}

// ProjectComments returns the per-section comments with like/dislike
// tallies for a whole project
func (s *feedbackService) ProjectComments(ctx context.Context, projectID, userID string) (*services.ProjectComments, error) {
	project, err := s.projects.GetByID(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}

	sections, err := s.sections.ListByProject(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	result := &services.ProjectComments{
		ProjectID:    project.ID,
		ProjectTitle: project.Title,
		Items:        make([]services.SectionComments, 0, len(sections)),
	}

	for _, section := range sections {
		comments, err := s.comments.ListBySection(ctx, section.ID)
		if err != nil {
			return nil, err
		}
		likes, dislikes, err := s.feedback.CountBySection(ctx, section.ID)
		if err != nil {
			return nil, err
		}

		result.Items = append(result.Items, services.SectionComments{
			SectionID:    section.ID,
			SectionIndex: section.Index,
			SectionTitle: section.Title,
			Comments:     comments,
			Likes:        likes,
			Dislikes:     dislikes,
		})
	}

	return result, nil
}

// ownedSection loads a section and verifies the caller owns its
// project. A section owned by someone else yields Forbidden, a missing
// one NotFound.
func (s *feedbackService) ownedSection(ctx context.Context, sectionID, userID string) (*models.Section, error) {
	section, err := s.sections.GetByID(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	if _, err := s.projects.GetByID(ctx, section.ProjectID, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.ForbiddenError{Message: "not authorized for this section"}
		}
		return nil, err
	}

	return section, nil
}
