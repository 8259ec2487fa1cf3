package repositories

import (
	"context"

	"draftdeck/internal/domain/models"
)

// FeedbackRepository stores the append-only like/dislike tally.
type FeedbackRepository interface {
	Append(ctx context.Context, fb *models.Feedback) error

	// CountBySection returns the like and dislike totals for a section.
	CountBySection(ctx context.Context, sectionID string) (likes, dislikes int, err error)

	// DeleteByProject removes all feedback of the project's sections.
	DeleteByProject(ctx context.Context, projectID string) error
}

// CommentRepository stores append-only free-text section comments.
type CommentRepository interface {
	Append(ctx context.Context, comment *models.Comment) error

	// ListBySection returns the section's comments oldest first.
	ListBySection(ctx context.Context, sectionID string) ([]models.Comment, error)

	// DeleteByProject removes all comments of the project's sections.
	DeleteByProject(ctx context.Context, projectID string) error
}
