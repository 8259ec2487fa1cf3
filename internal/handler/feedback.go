package handler

import (
	"log/slog"
	"net/http"

	"draftdeck/internal/domain/services"
	"draftdeck/internal/httputil"
)

// FeedbackHandler handles section feedback and comment requests
type FeedbackHandler struct {
	feedbackService services.FeedbackService
	logger          *slog.Logger
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackService services.FeedbackService, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

type addFeedbackRequest struct {
	IsLike *bool `json:"is_like"`
}

type addCommentRequest struct {
	Comment string `json:"comment"`
}

// AddFeedback records a like or dislike vote on a section
// POST /api/sections/{id}/feedback
func (h *FeedbackHandler) AddFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section ID is required")
		return
	}

	var req addFeedbackRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.IsLike == nil {
		httputil.RespondError(w, http.StatusBadRequest, "is_like is required")
		return
	}

	feedback, err := h.feedbackService.AddFeedback(r.Context(), id, userID, *req.IsLike)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, feedback)
}

// AddComment records a free-text comment on a section
// POST /api/sections/{id}/comments
func (h *FeedbackHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "section ID is required")
		return
	}

	var req addCommentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.feedbackService.AddComment(r.Context(), id, userID, req.Comment)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, comment)
}

// ProjectComments returns the grouped comments and vote tallies of a
// project's sections
// GET /api/projects/{id}/comments
func (h *FeedbackHandler) ProjectComments(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "project ID is required")
		return
	}

	summary, err := h.feedbackService.ProjectComments(r.Context(), id, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, summary)
}
