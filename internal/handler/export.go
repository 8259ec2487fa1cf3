package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"draftdeck/internal/domain/services"
	"draftdeck/internal/httputil"
)

// ExportHandler handles document export requests
type ExportHandler struct {
	exportService services.ExportService
	logger        *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService services.ExportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		logger:        logger,
	}
}

// ExportProject renders the project as a downloadable office document.
// GET /api/projects/{id}/export/{format}
func (h *ExportHandler) ExportProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID is required")
		return
	}

	format := services.ExportFormat(r.PathValue("format"))

	result, err := h.exportService.Export(r.Context(), id, userID, format)
	if err != nil {
		handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.MimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Data)
}
