// Package lorem is a mock text generation provider producing lorem
// ipsum prose. Used for development and tests without real API keys.
package lorem

import (
	"context"
	"strings"

	loremgen "github.com/bozaro/golorem"

	"draftdeck/internal/domain/services"
)

// Provider implements the TextGenerator interface with generated
// placeholder text.
type Provider struct {
	generator *loremgen.Lorem
}

// NewProvider creates a new lorem ipsum provider.
func NewProvider() *Provider {
	return &Provider{
		generator: loremgen.New(),
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "lorem"
}

// GenerateText returns lorem ipsum paragraphs sized to the request's
// token budget. Estimate: 1 token ≈ 4 characters.
func (p *Provider) GenerateText(ctx context.Context, req *services.ProviderRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 256
	}
	targetChars := maxTokens * 4

	var sb strings.Builder
	for sb.Len() < targetChars {
		sb.WriteString(p.generator.Paragraph(3, 5))
		sb.WriteString("\n\n")
	}

	return strings.TrimSpace(sb.String()), nil
}
