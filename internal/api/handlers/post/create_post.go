package post

import (
	"encoding/json"
	"net/http"

	"Sociable/internal/api/handlers"
	"Sociable/internal/api/middleware"
	"Sociable/internal/core/posts"
)

// CreatePostHandler handles post creation requests
type CreatePostHandler struct {
	service posts.Service
}

// NewCreatePostHandler creates a new create post handler
func NewCreatePostHandler(service posts.Service) *CreatePostHandler {
	return &CreatePostHandler{service: service}
}

// HandleCreate creates a new post authored by the caller
// POST /posts
//
// Request body: { "description": "...", "picturePath": "..." }
// The picture path references media already stored by the upload service.
// Response: 201 with the created post
func (h *CreatePostHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1024*1024)

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	created, err := h.service.CreatePost(r.Context(), userID, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, created)
}
