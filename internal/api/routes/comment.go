package routes

import (
	"github.com/go-chi/chi/v5"

	"Sociable/internal/api/handlers/comment"
	"Sociable/internal/api/middleware"
	commentsCore "Sociable/internal/core/comments"
)

// RegisterCommentRoutes registers comment endpoints on the router
// All comment operations require authentication
func RegisterCommentRoutes(r chi.Router, service commentsCore.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := comment.NewCreateCommentHandler(service)
	deleteHandler := comment.NewDeleteCommentHandler(service)

	// POST /posts/{postID}/comment - append a comment to a post
	r.With(authMiddleware.RequireAuth).Post("/posts/{postID}/comment", createHandler.HandleCreate)

	// DELETE /posts/{postID}/comment/{commentID} - delete own comment by id
	r.With(authMiddleware.RequireAuth).Delete("/posts/{postID}/comment/{commentID}", deleteHandler.HandleDelete)
}
