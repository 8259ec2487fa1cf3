package handler

import (
	"log/slog"
	"net/http"

	"draftdeck/internal/domain/services"
	"draftdeck/internal/httputil"
)

// GenerationHandler handles AI content generation requests
type GenerationHandler struct {
	generationService services.GenerationService
	logger            *slog.Logger
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(generationService services.GenerationService, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{
		generationService: generationService,
		logger:            logger,
	}
}

type refineSectionRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateProject generates content for every configured section
// POST /api/projects/{id}/generate
func (h *GenerationHandler) GenerateProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID is required")
		return
	}

	if err := h.generationService.GenerateProject(r.Context(), id, userID); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Content generated successfully",
	})
}

// RefineSection rewrites one section from a user instruction
// POST /api/sections/{id}/refine
func (h *GenerationHandler) RefineSection(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section ID is required")
		return
	}

	var req refineSectionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.generationService.RefineSection(r.Context(), id, userID, req.Prompt)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}
