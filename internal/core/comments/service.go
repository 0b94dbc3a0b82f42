package comments

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rivo/uniseg"

	"Sociable/internal/core/posts"
	"Sociable/internal/core/users"
)

// maxCommentGraphemes is the maximum length for comment content in graphemes
const maxCommentGraphemes = 10000

// Service defines the business logic interface for comment operations
type Service interface {
	// AddComment appends a comment with a server-assigned id and timestamp to
	// the end of the post's comment sequence and returns the updated post
	AddComment(ctx context.Context, postID, userID, text string) (*posts.Post, error)

	// DeleteComment removes the identified comment if requesterID authored it.
	// Deletion is destructive and immediate; later comments shift down one
	// position. Returns the updated post.
	DeleteComment(ctx context.Context, postID, commentID, requesterID string) (*posts.Post, error)
}

// commentService implements the Service interface
type commentService struct {
	postRepo posts.Repository
	userRepo users.Repository
	logger   *slog.Logger
}

// NewService creates a new comment service instance
func NewService(postRepo posts.Repository, userRepo users.Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		postRepo: postRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// AddComment validates the text, hydrates author fields and appends the
// comment through the store's atomic append. No mutation occurs on
// validation failure.
func (s *commentService) AddComment(ctx context.Context, postID, userID, text string) (*posts.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrContentEmpty
	}
	if uniseg.GraphemeClusterCount(text) > maxCommentGraphemes {
		return nil, ErrContentTooLong
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &posts.Comment{
		ID:              uuid.NewString(),
		UserID:          author.ID,
		Comment:         text,
		FirstName:       author.FirstName,
		LastName:        author.LastName,
		UserPicturePath: author.PicturePath,
		CreatedAt:       time.Now().UTC(),
	}

	post, err := s.postRepo.AddComment(ctx, postID, comment)
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment added",
		"post", postID,
		"comment", comment.ID,
		"author", author.ID)

	return post, nil
}

// DeleteComment removes the comment through the store, which enforces the
// ownership check under the same lock as the deletion itself.
func (s *commentService) DeleteComment(ctx context.Context, postID, commentID, requesterID string) (*posts.Post, error) {
	post, err := s.postRepo.DeleteComment(ctx, postID, commentID, requesterID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment deleted",
		"post", postID,
		"comment", commentID,
		"user", requesterID)

	return post, nil
}
