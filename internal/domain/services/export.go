package services

import (
	"context"

	"draftdeck/internal/domain/models"
)

// ExportFormat selects the rendered file type.
type ExportFormat string

const (
	ExportDOCX ExportFormat = "docx"
	ExportPPTX ExportFormat = "pptx"
)

// Valid reports whether the format is one of the supported kinds.
func (f ExportFormat) Valid() bool {
	return f == ExportDOCX || f == ExportPPTX
}

// ExportSection is one renderable section of an export document.
type ExportSection struct {
	Title   string
	Content string
}

// ExportDocument is the assembled project handed to a DocumentBuilder.
type ExportDocument struct {
	Title    string
	DocType  models.DocType
	Sections []ExportSection
}

// ExportResult contains the rendered file.
type ExportResult struct {
	Data     []byte
	Filename string
	MimeType string
}

// DocumentBuilder renders an assembled document into a binary office
// file. Implementations wrap one external builder; a builder that
// cannot be invoked wraps domain.ErrUnavailable.
type DocumentBuilder interface {
	Build(ctx context.Context, doc *ExportDocument, format ExportFormat) (*ExportResult, error)
}

// ExportService assembles a project's ordered sections and renders them
// through the document builder. Read-only with respect to storage.
type ExportService interface {
	Export(ctx context.Context, projectID, userID string, format ExportFormat) (*ExportResult, error)
}
