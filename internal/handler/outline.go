package handler

import (
	"log/slog"
	"net/http"

	"draftdeck/internal/domain/services"
	"draftdeck/internal/httputil"
)

// OutlineHandler handles section configuration requests
type OutlineHandler struct {
	outlineService services.OutlineService
	logger         *slog.Logger
}

// NewOutlineHandler creates a new outline handler
func NewOutlineHandler(outlineService services.OutlineService, logger *slog.Logger) *OutlineHandler {
	return &OutlineHandler{
		outlineService: outlineService,
		logger:         logger,
	}
}

type outlineEntryRequest struct {
	Index *int   `json:"index"`
	Title string `json:"title"`
}

type configureSectionsRequest struct {
	Sections []outlineEntryRequest `json:"sections"`
}

type configureSectionsResponse struct {
	Outcome string `json:"outcome"`
	Message string `json:"message"`
}

// ConfigureSections submits a project outline. An outline structurally
// identical to the stored one preserves all generated content; any
// change resets the sections and everything attached to them.
// POST /api/projects/{id}/sections
func (h *OutlineHandler) ConfigureSections(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID is required")
		return
	}

	var req configureSectionsRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entries := make([]services.OutlineEntryInput, 0, len(req.Sections))
	for _, entry := range req.Sections {
		entries = append(entries, services.OutlineEntryInput{
			Index: entry.Index,
			Title: entry.Title,
		})
	}

	outcome, err := h.outlineService.Configure(r.Context(), id, userID, entries)
	if err != nil {
		handleError(w, err)
		return
	}

	message := "Sections configured successfully"
	if outcome == services.OutcomePreserved {
		message = "Sections unchanged; existing AI content, comments, and feedback are preserved."
	}

	httputil.RespondJSON(w, http.StatusOK, configureSectionsResponse{
		Outcome: string(outcome),
		Message: message,
	})
}
