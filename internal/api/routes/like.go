package routes

import (
	"github.com/go-chi/chi/v5"

	"Sociable/internal/api/handlers/like"
	"Sociable/internal/api/middleware"
	"Sociable/internal/core/likes"
)

// RegisterLikeRoutes registers the like toggle endpoint on the router
func RegisterLikeRoutes(r chi.Router, service likes.Service, authMiddleware *middleware.AuthMiddleware) {
	toggleHandler := like.NewToggleLikeHandler(service)

	// PATCH /posts/{postID}/like - flip the caller's like on a post
	r.With(authMiddleware.RequireAuth).Patch("/posts/{postID}/like", toggleHandler.HandleToggleLike)
}
