package comment

import (
	"log"
	"net/http"

	"Sociable/internal/api/handlers"
	"Sociable/internal/core/comments"
	"Sociable/internal/core/posts"
	"Sociable/internal/core/users"
)

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case posts.ErrNotFound:
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case posts.ErrCommentNotFound:
		handlers.WriteError(w, http.StatusNotFound, "CommentNotFound", "Comment not found")
	case users.ErrUserNotFound:
		handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
	case comments.ErrContentEmpty:
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Comment cannot be empty")
	case comments.ErrContentTooLong:
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Comment is too long")
	case posts.ErrNotCommentAuthor:
		handlers.WriteError(w, http.StatusForbidden, "NotAuthorized", "You can only delete your own comments")
	case posts.ErrConflict:
		handlers.WriteError(w, http.StatusConflict, "Conflict", "Post was modified concurrently, please retry")
	default:
		log.Printf("Comment handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
