package posts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"Sociable/internal/core/users"
)

// postService implements the Service interface
type postService struct {
	repo     Repository
	userRepo users.Repository
	logger   *slog.Logger
}

// NewService creates a new post service instance
func NewService(repo Repository, userRepo users.Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:     repo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreatePost validates the request, hydrates author fields and stores the post
func (s *postService) CreatePost(ctx context.Context, userID string, req CreatePostRequest) (*Post, error) {
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrEmptyDescription
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &Post{
		ID:              uuid.NewString(),
		UserID:          author.ID,
		FirstName:       author.FirstName,
		LastName:        author.LastName,
		Location:        author.Location,
		Description:     req.Description,
		PicturePath:     req.PicturePath,
		UserPicturePath: author.PicturePath,
		Likes:           NewLikeSet(),
		Comments:        []Comment{},
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("post created",
		"post", post.ID,
		"author", author.ID)

	return post, nil
}

// GetFeed returns all posts, newest first
func (s *postService) GetFeed(ctx context.Context) ([]*Post, error) {
	feed, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return feed, nil
}

// GetUserPosts returns the posts authored by userID, newest first
func (s *postService) GetUserPosts(ctx context.Context, userID string) ([]*Post, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	authored, err := s.repo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}
	return authored, nil
}
