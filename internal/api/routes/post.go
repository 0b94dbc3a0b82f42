package routes

import (
	"github.com/go-chi/chi/v5"

	"Sociable/internal/api/handlers/post"
	"Sociable/internal/api/middleware"
	postsCore "Sociable/internal/core/posts"
)

// RegisterPostRoutes registers post creation and listing endpoints
func RegisterPostRoutes(r chi.Router, service postsCore.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := post.NewCreatePostHandler(service)
	feedHandler := post.NewGetFeedHandler(service)
	userPostsHandler := post.NewGetUserPostsHandler(service)

	// POST /posts - create a post authored by the caller
	r.With(authMiddleware.RequireAuth).Post("/posts", createHandler.HandleCreate)

	// GET /posts - all posts, newest first
	r.With(authMiddleware.RequireAuth).Get("/posts", feedHandler.HandleGetFeed)

	// GET /posts/{userID}/posts - posts authored by a user
	r.With(authMiddleware.RequireAuth).Get("/posts/{userID}/posts", userPostsHandler.HandleGetUserPosts)
}
