package comment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Sociable/internal/api/handlers"
	"Sociable/internal/api/middleware"
	"Sociable/internal/core/comments"
)

// CreateCommentHandler handles comment creation requests
type CreateCommentHandler struct {
	service comments.Service
}

// NewCreateCommentHandler creates a new handler for adding comments
func NewCreateCommentHandler(service comments.Service) *CreateCommentHandler {
	return &CreateCommentHandler{service: service}
}

// CreateCommentInput is the request body for adding a comment
type CreateCommentInput struct {
	Comment string `json:"comment"`
}

// HandleCreate appends a comment to a post
// POST /posts/{postID}/comment
//
// Request body: { "comment": "..." }
// Response: the updated post
func (h *CreateCommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	if postID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "postID is required")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	// Limit request body size (100KB is plenty for comment text)
	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var input CreateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	post, err := h.service.AddComment(r.Context(), postID, userID, input.Comment)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, post)
}
