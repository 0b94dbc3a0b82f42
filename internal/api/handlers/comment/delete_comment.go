package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Sociable/internal/api/handlers"
	"Sociable/internal/api/middleware"
	"Sociable/internal/core/comments"
)

// DeleteCommentHandler handles comment deletion requests
type DeleteCommentHandler struct {
	service comments.Service
}

// NewDeleteCommentHandler creates a new handler for deleting comments
func NewDeleteCommentHandler(service comments.Service) *DeleteCommentHandler {
	return &DeleteCommentHandler{service: service}
}

// HandleDelete removes a comment from a post
// DELETE /posts/{postID}/comment/{commentID}
//
// Comments are addressed by their immutable id. Only the comment's author
// may delete it; deletion is destructive and immediate.
// Response: the updated post
func (h *DeleteCommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	commentID := chi.URLParam(r, "commentID")
	if postID == "" || commentID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "postID and commentID are required")
		return
	}

	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	post, err := h.service.DeleteComment(r.Context(), postID, commentID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, post)
}
