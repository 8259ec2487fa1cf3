package services

import (
	"context"

	"draftdeck/internal/domain/models"
)

// SectionComments groups one section's comments with its vote tally.
type SectionComments struct {
	SectionID    string           `json:"section_id"`
	SectionIndex int              `json:"section_index"`
	SectionTitle string           `json:"section_title"`
	Comments     []models.Comment `json:"comments"`
	Likes        int              `json:"likes"`
	Dislikes     int              `json:"dislikes"`
}

// ProjectComments is the per-section comment and feedback summary of a
// project.
type ProjectComments struct {
	ProjectID    string            `json:"project_id"`
	ProjectTitle string            `json:"project_title"`
	Items        []SectionComments `json:"items"`
}

// FeedbackService appends likes and comments to sections and summarizes
// them per project.
type FeedbackService interface {
	AddFeedback(ctx context.Context, sectionID, userID string, isLike bool) (*models.Feedback, error)
	AddComment(ctx context.Context, sectionID, userID, text string) (*models.Comment, error)
	ProjectComments(ctx context.Context, projectID, userID string) (*ProjectComments, error)
}
