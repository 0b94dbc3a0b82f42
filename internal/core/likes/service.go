package likes

import (
	"context"
	"log/slog"

	"Sociable/internal/core/posts"
	"Sociable/internal/core/users"
)

// Service defines the business logic interface for like toggles
type Service interface {
	// ToggleLike flips userID's membership in the post's like set:
	// absent -> insert, present -> remove. Two consecutive toggles by the
	// same user return the post to its original state.
	// Any authenticated user may toggle a like on any post.
	ToggleLike(ctx context.Context, postID, userID string) (*posts.Post, error)
}

// likeService implements the Service interface
type likeService struct {
	postRepo posts.Repository
	userRepo users.Repository
	logger   *slog.Logger
}

// NewService creates a new like service instance
func NewService(postRepo posts.Repository, userRepo users.Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &likeService{
		postRepo: postRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// ToggleLike verifies the user exists, then delegates the flip to the store's
// atomic toggle so concurrent requests against the same post cannot clobber
// each other's effect.
func (s *likeService) ToggleLike(ctx context.Context, postID, userID string) (*posts.Post, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	post, err := s.postRepo.ToggleLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("like toggled",
		"post", postID,
		"user", userID,
		"liked", post.Likes.Has(userID),
		"likeCount", post.Likes.Count())

	return post, nil
}
