package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Sociable/internal/api/handlers"
	"Sociable/internal/core/posts"
)

// GetFeedHandler handles feed listing requests
type GetFeedHandler struct {
	service posts.Service
}

// NewGetFeedHandler creates a new feed handler
func NewGetFeedHandler(service posts.Service) *GetFeedHandler {
	return &GetFeedHandler{service: service}
}

// HandleGetFeed returns all posts, newest first
// GET /posts
func (h *GetFeedHandler) HandleGetFeed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.service.GetFeed(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, feed)
}

// GetUserPostsHandler handles per-author listing requests
type GetUserPostsHandler struct {
	service posts.Service
}

// NewGetUserPostsHandler creates a new user posts handler
func NewGetUserPostsHandler(service posts.Service) *GetUserPostsHandler {
	return &GetUserPostsHandler{service: service}
}

// HandleGetUserPosts returns the posts authored by a user, newest first
// GET /posts/{userID}/posts
func (h *GetUserPostsHandler) HandleGetUserPosts(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "userID is required")
		return
	}

	authored, err := h.service.GetUserPosts(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, authored)
}
