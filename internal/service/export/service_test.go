package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/services"
)

type stubProjects struct {
	project *models.Project
}

func (f *stubProjects) Create(_ context.Context, _ *models.Project) error { return nil }

func (f *stubProjects) GetByID(_ context.Context, id, userID string) (*models.Project, error) {
	if f.project == nil || f.project.ID != id || f.project.UserID != userID {
		return nil, &domain.NotFoundError{Message: "project not found"}
	}
	clone := *f.project
	return &clone, nil
}

func (f *stubProjects) List(_ context.Context, _ string) ([]models.Project, error) { return nil, nil }

func (f *stubProjects) SetStatus(_ context.Context, _ string, _ models.ProjectStatus) error {
	return nil
}

type stubSections struct {
	sections []models.Section
}

func (f *stubSections) ListByProject(_ context.Context, _ string) ([]models.Section, error) {
	return f.sections, nil
}

func (f *stubSections) GetByID(_ context.Context, _ string) (*models.Section, error) {
	return nil, &domain.NotFoundError{Message: "section not found"}
}

func (f *stubSections) CreateBatch(_ context.Context, _ string, _ []models.OutlineEntry) ([]models.Section, error) {
	return nil, nil
}

func (f *stubSections) DeleteByProject(_ context.Context, _ string) error { return nil }

func (f *stubSections) UpdateContent(_ context.Context, _ string, _ string) error { return nil }

// captureBuilder records what it was asked to build and returns a
// canned result.
type captureBuilder struct {
	doc    *services.ExportDocument
	format services.ExportFormat
	err    error
}

func (b *captureBuilder) Build(_ context.Context, doc *services.ExportDocument, format services.ExportFormat) (*services.ExportResult, error) {
	b.doc = doc
	b.format = format
	if b.err != nil {
		return nil, b.err
	}
	return &services.ExportResult{
		Data:     []byte("binary"),
		Filename: "out." + string(format),
		MimeType: "application/octet-stream",
	}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(nullWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }

func strPtr(s string) *string { return &s }

func testProject() *models.Project {
	return &models.Project{
		ID:      "proj-1",
		UserID:  "user-1",
		Title:   "Quarterly Report",
		DocType: models.DocTypeSlides,
	}
}

func TestExport_AssemblesOrderedSections(t *testing.T) {
	builder := &captureBuilder{}
	svc := NewService(
		&stubProjects{project: testProject()},
		&stubSections{sections: []models.Section{
			{ID: "s1", Index: 1, Title: "Opening", Content: strPtr("Hello")},
			{ID: "s2", Index: 2, Title: "Middle", Content: nil},
			{ID: "s3", Index: 3, Title: "Closing", Content: strPtr("Bye")},
		}},
		builder,
		quietLogger(),
	)

	result, err := svc.Export(context.Background(), "proj-1", "user-1", services.ExportPPTX)
	if err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if len(result.Data) == 0 {
		t.Errorf("result has no data")
	}

	if builder.doc.Title != "Quarterly Report" {
		t.Errorf("builder doc title = %q", builder.doc.Title)
	}
	if len(builder.doc.Sections) != 3 {
		t.Fatalf("builder got %d sections, want 3", len(builder.doc.Sections))
	}
	// Nil content renders as an empty body, not a skipped section.
	if builder.doc.Sections[1].Title != "Middle" || builder.doc.Sections[1].Content != "" {
		t.Errorf("ungenerated section not passed through empty: %+v", builder.doc.Sections[1])
	}
}

func TestExport_DefaultsFormatToDocType(t *testing.T) {
	builder := &captureBuilder{}
	svc := NewService(
		&stubProjects{project: testProject()},
		&stubSections{sections: []models.Section{{Index: 1, Title: "S", Content: strPtr("x")}}},
		builder,
		quietLogger(),
	)

	if _, err := svc.Export(context.Background(), "proj-1", "user-1", ""); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}
	if builder.format != services.ExportPPTX {
		t.Errorf("format = %q, want %q (project doc type)", builder.format, services.ExportPPTX)
	}
}

func TestExport_RejectsUnknownFormat(t *testing.T) {
	svc := NewService(&stubProjects{project: testProject()}, &stubSections{}, &captureBuilder{}, quietLogger())

	_, err := svc.Export(context.Background(), "proj-1", "user-1", "pdf")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error %v is not a validation error", err)
	}
}

func TestExport_NoSections(t *testing.T) {
	svc := NewService(&stubProjects{project: testProject()}, &stubSections{}, &captureBuilder{}, quietLogger())

	_, err := svc.Export(context.Background(), "proj-1", "user-1", services.ExportDOCX)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("error %v is not a validation error", err)
	}
}

func TestExport_UnknownProject(t *testing.T) {
	svc := NewService(&stubProjects{}, &stubSections{}, &captureBuilder{}, quietLogger())

	_, err := svc.Export(context.Background(), "missing", "user-1", services.ExportDOCX)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error %v is not a not-found error", err)
	}
}

func TestExport_BuilderUnavailable(t *testing.T) {
	builder := &captureBuilder{err: fmt.Errorf("%w: pandoc not installed", domain.ErrUnavailable)}
	svc := NewService(
		&stubProjects{project: testProject()},
		&stubSections{sections: []models.Section{{Index: 1, Title: "S", Content: strPtr("x")}}},
		builder,
		quietLogger(),
	)

	_, err := svc.Export(context.Background(), "proj-1", "user-1", services.ExportDOCX)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("error %v is not an unavailable error", err)
	}
}
