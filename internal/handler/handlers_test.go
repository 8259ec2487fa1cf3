package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"draftdeck/internal/domain"
	"draftdeck/internal/domain/models"
	"draftdeck/internal/domain/services"
	"draftdeck/internal/httputil"
)

type fakeOutlineService struct {
	outcome services.Outcome
	err     error
	entries []services.OutlineEntryInput
}

func (f *fakeOutlineService) Configure(_ context.Context, _, _ string, entries []services.OutlineEntryInput) (services.Outcome, error) {
	f.entries = entries
	if f.err != nil {
		return "", f.err
	}
	return f.outcome, nil
}

type fakeProjectService struct {
	project *models.Project
	detail  *services.ProjectDetail
	err     error
}

func (f *fakeProjectService) CreateProject(_ context.Context, _ *services.CreateProjectRequest) (*models.Project, error) {
	return f.project, f.err
}

func (f *fakeProjectService) GetProject(_ context.Context, _, _ string) (*services.ProjectDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.detail, nil
}

func (f *fakeProjectService) ListProjects(_ context.Context, _ string) ([]models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.project == nil {
		return nil, nil
	}
	return []models.Project{*f.project}, nil
}

type fakeExportService struct {
	result *services.ExportResult
	err    error
	format services.ExportFormat
}

func (f *fakeExportService) Export(_ context.Context, _, _ string, format services.ExportFormat) (*services.ExportResult, error) {
	f.format = format
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(sink{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type sink struct{}

func (sink) Write(p []byte) (int, error) { return len(p), nil }

// doRequest routes the request through a mux so path values resolve,
// optionally injecting an authenticated user.
func doRequest(t *testing.T, pattern string, h http.HandlerFunc, req *http.Request, userID string) *httptest.ResponseRecorder {
	t.Helper()
	if userID != "" {
		req = httputil.WithUserID(req, userID)
	}
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestConfigureSections_PreservedMessage(t *testing.T) {
	svc := &fakeOutlineService{outcome: services.OutcomePreserved}
	h := NewOutlineHandler(svc, testLogger())

	body := `{"sections":[{"index":1,"title":"Intro"},{"index":2,"title":"Body"}]}`
	req := httptest.NewRequest(http.MethodPut, "/api/projects/p1/sections", strings.NewReader(body))
	rec := doRequest(t, "PUT /api/projects/{id}/sections", h.ConfigureSections, req, "user-1")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp configureSectionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Outcome != "preserved" {
		t.Errorf("outcome = %q, want preserved", resp.Outcome)
	}
	if !strings.Contains(resp.Message, "preserved") {
		t.Errorf("message = %q does not mention preservation", resp.Message)
	}
	if len(svc.entries) != 2 {
		t.Errorf("service got %d entries, want 2", len(svc.entries))
	}
}

func TestConfigureSections_ResetMessage(t *testing.T) {
	svc := &fakeOutlineService{outcome: services.OutcomeReset}
	h := NewOutlineHandler(svc, testLogger())

	body := `{"sections":[{"index":1,"title":"Intro"}]}`
	req := httptest.NewRequest(http.MethodPut, "/api/projects/p1/sections", strings.NewReader(body))
	rec := doRequest(t, "PUT /api/projects/{id}/sections", h.ConfigureSections, req, "user-1")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp configureSectionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Message != "Sections configured successfully" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestConfigureSections_NullIndexPassedThrough(t *testing.T) {
	svc := &fakeOutlineService{outcome: services.OutcomeReset}
	h := NewOutlineHandler(svc, testLogger())

	body := `{"sections":[{"index":null,"title":"No index"},{"index":2,"title":"Real"}]}`
	req := httptest.NewRequest(http.MethodPut, "/api/projects/p1/sections", strings.NewReader(body))
	doRequest(t, "PUT /api/projects/{id}/sections", h.ConfigureSections, req, "user-1")

	if len(svc.entries) != 2 {
		t.Fatalf("service got %d entries, want 2", len(svc.entries))
	}
	if svc.entries[0].Index != nil {
		t.Errorf("null index decoded as %v, want nil", *svc.entries[0].Index)
	}
	if svc.entries[1].Index == nil || *svc.entries[1].Index != 2 {
		t.Errorf("numeric index lost in decoding")
	}
}

func TestConfigureSections_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", &domain.ValidationError{Message: "sections array is required"}, http.StatusBadRequest},
		{"not found", &domain.NotFoundError{Message: "project not found"}, http.StatusNotFound},
		{"forbidden", &domain.ForbiddenError{Message: "not yours"}, http.StatusForbidden},
		{"conflict", &domain.ConflictError{Message: "version conflict"}, http.StatusConflict},
		{"unavailable", &domain.UnavailableError{Message: "backend down"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewOutlineHandler(&fakeOutlineService{err: tt.err}, testLogger())
			body := `{"sections":[{"index":1,"title":"Intro"}]}`
			req := httptest.NewRequest(http.MethodPut, "/api/projects/p1/sections", strings.NewReader(body))
			rec := doRequest(t, "PUT /api/projects/{id}/sections", h.ConfigureSections, req, "user-1")

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Errorf("content type = %q, want problem+json", ct)
			}
		})
	}
}

func TestConfigureSections_Unauthenticated(t *testing.T) {
	h := NewOutlineHandler(&fakeOutlineService{}, testLogger())
	req := httptest.NewRequest(http.MethodPut, "/api/projects/p1/sections", strings.NewReader(`{}`))
	rec := doRequest(t, "PUT /api/projects/{id}/sections", h.ConfigureSections, req, "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestConfigureSections_MalformedBody(t *testing.T) {
	h := NewOutlineHandler(&fakeOutlineService{}, testLogger())
	req := httptest.NewRequest(http.MethodPut, "/api/projects/p1/sections", strings.NewReader(`{not json`))
	rec := doRequest(t, "PUT /api/projects/{id}/sections", h.ConfigureSections, req, "user-1")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateProject_Created(t *testing.T) {
	svc := &fakeProjectService{project: &models.Project{ID: "p1", Title: "New", DocType: models.DocTypeReport}}
	h := NewProjectHandler(svc, testLogger())

	body := `{"title":"New","doc_type":"docx","main_topic":"topic"}`
	req := httptest.NewRequest(http.MethodPost, "/api/projects", strings.NewReader(body))
	rec := doRequest(t, "POST /api/projects", h.CreateProject, req, "user-1")

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	var project models.Project
	if err := json.Unmarshal(rec.Body.Bytes(), &project); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if project.ID != "p1" {
		t.Errorf("project id = %q", project.ID)
	}
}

func TestGetProject_NotFound(t *testing.T) {
	svc := &fakeProjectService{err: &domain.NotFoundError{Message: "project not found"}}
	h := NewProjectHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/projects/missing", nil)
	rec := doRequest(t, "GET /api/projects/{id}", h.GetProject, req, "user-1")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestExportProject_Download(t *testing.T) {
	svc := &fakeExportService{result: &services.ExportResult{
		Data:     []byte{0x50, 0x4b, 0x03, 0x04},
		Filename: "Quarterly Report.docx",
		MimeType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}}
	h := NewExportHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/projects/p1/export/docx", nil)
	rec := doRequest(t, "GET /api/projects/{id}/export/{format}", h.ExportProject, req, "user-1")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.format != services.ExportDOCX {
		t.Errorf("service got format %q, want docx", svc.format)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Quarterly Report.docx") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "wordprocessingml") {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Body.Len() != 4 {
		t.Errorf("body length = %d, want 4", rec.Body.Len())
	}
}

func TestExportProject_BuilderMissing(t *testing.T) {
	svc := &fakeExportService{err: &domain.UnavailableError{Message: "pandoc not installed"}}
	h := NewExportHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/projects/p1/export/docx", nil)
	rec := doRequest(t, "GET /api/projects/{id}/export/{format}", h.ExportProject, req, "user-1")

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	HealthCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %v", body["status"])
	}
}
