package post

import (
	"log"
	"net/http"

	"Sociable/internal/api/handlers"
	"Sociable/internal/core/posts"
	"Sociable/internal/core/users"
)

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case posts.ErrNotFound:
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case users.ErrUserNotFound:
		handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
	case posts.ErrEmptyDescription:
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Description is required")
	case posts.ErrConflict:
		handlers.WriteError(w, http.StatusConflict, "Conflict", "Post was modified concurrently, please retry")
	default:
		log.Printf("Post handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
