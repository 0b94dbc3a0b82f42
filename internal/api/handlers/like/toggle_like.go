package like

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Sociable/internal/api/handlers"
	"Sociable/internal/api/middleware"
	"Sociable/internal/core/likes"
)

// ToggleLikeHandler handles like toggle requests
type ToggleLikeHandler struct {
	service likes.Service
}

// NewToggleLikeHandler creates a new toggle like handler
func NewToggleLikeHandler(service likes.Service) *ToggleLikeHandler {
	return &ToggleLikeHandler{service: service}
}

// HandleToggleLike flips the caller's like on a post
// PATCH /posts/{postID}/like
//
// Response: the updated post. Clients derive "liked by me" from membership
// in the likes mapping and the count from its size.
func (h *ToggleLikeHandler) HandleToggleLike(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	if postID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "postID is required")
		return
	}

	// Acting user comes from the verified token, not the request body
	userID := middleware.GetUserID(r)
	if userID == "" {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	post, err := h.service.ToggleLike(r.Context(), postID, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, post)
}
