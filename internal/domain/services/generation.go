package services

import (
	"context"
)

// ProviderRequest is one prompt sent to a text generation provider.
type ProviderRequest struct {
	System    string
	Prompt    string
	Model     string
	MaxTokens int
}

// TextGenerator produces prose for a single prompt. Implementations
// wrap one external text-generation backend; they are pure with respect
// to storage.
type TextGenerator interface {
	// Name identifies the provider in logs.
	Name() string

	// GenerateText returns the generated body text. Failures to reach
	// the backend wrap domain.ErrUnavailable.
	GenerateText(ctx context.Context, req *ProviderRequest) (string, error)
}

// RefineResult is the outcome of a single-section refinement.
type RefineResult struct {
	SectionID string `json:"section_id"`
	Version   int    `json:"version"`
	Content   string `json:"content"`
}

// GenerationService orchestrates text generation against the content
// store: batch generation for a whole project and prompt-guided
// refinement of one section.
type GenerationService interface {
	// GenerateProject fills every section body, appending one revision
	// per section. A provider failure on one section degrades that
	// section to fallback text and never aborts the batch.
	GenerateProject(ctx context.Context, projectID, userID string) error

	// RefineSection rewrites one section from a user instruction. On
	// provider failure no revision is recorded.
	RefineSection(ctx context.Context, sectionID, userID, prompt string) (*RefineResult, error)
}
