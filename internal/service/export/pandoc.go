package export

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/services"
)

// MIME types of the supported office formats.
const (
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimePPTX = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

// PandocBuilder renders documents by piping templated HTML through the
// pandoc binary. A missing binary surfaces as domain.ErrUnavailable, so
// the rest of the service stays usable without it.
type PandocBuilder struct {
	path string
}

// NewPandocBuilder creates a builder invoking the given pandoc binary.
func NewPandocBuilder(path string) *PandocBuilder {
	if path == "" {
		path = "pandoc"
	}
	return &PandocBuilder{path: path}
}

// Build converts the assembled document to the requested format.
func (b *PandocBuilder) Build(ctx context.Context, doc *services.ExportDocument, format services.ExportFormat) (*services.ExportResult, error) {
	if _, err := exec.LookPath(b.path); err != nil {
		return nil, fmt.Errorf("%w: pandoc not installed", domain.ErrUnavailable)
	}

	html, err := renderHTML(doc, format)
	if err != nil {
		return nil, err
	}

	target, mime := "docx", mimeDOCX
	if format == services.ExportPPTX {
		target, mime = "pptx", mimePPTX
	}

	cmd := exec.CommandContext(ctx, b.path,
		"-f", "html",
		"-t", target,
		"--standalone",
		"-o", "-", // Output to stdout
	)
	cmd.Stdin = strings.NewReader(html)

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("%w: pandoc failed: %s", domain.ErrUnavailable, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("%w: pandoc execution failed: %v", domain.ErrUnavailable, err)
	}

	return &services.ExportResult{
		Data:     output,
		Filename: sanitizeFilename(doc.Title) + "." + target,
		MimeType: mime,
	}, nil
}
