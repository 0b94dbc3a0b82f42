package posts

import "context"

// Repository is the post store. Implementations must serialize concurrent
// mutations to the same post so that read-modify-write sequences cannot race
// and silently drop an update: every mutation is equivalent to some serial
// order (per-post row locking in the Postgres implementation).
type Repository interface {
	// Create inserts a new post with an empty like set and comment sequence
	Create(ctx context.Context, post *Post) error

	// GetByID retrieves the full post document
	// Returns ErrNotFound if no such post exists
	GetByID(ctx context.Context, postID string) (*Post, error)

	// ListAll retrieves every post, newest first
	ListAll(ctx context.Context) ([]*Post, error)

	// ListByAuthor retrieves the author's posts, newest first
	ListByAuthor(ctx context.Context, authorID string) ([]*Post, error)

	// ToggleLike atomically flips userID's membership in the post's like set
	// and returns the updated post. Returns ErrNotFound for unknown posts.
	ToggleLike(ctx context.Context, postID, userID string) (*Post, error)

	// AddComment atomically appends the comment to the end of the post's
	// comment sequence and returns the updated post
	AddComment(ctx context.Context, postID string, comment *Comment) (*Post, error)

	// DeleteComment atomically removes the identified comment, shifting later
	// comments down one position while preserving their relative order.
	// Returns ErrCommentNotFound if the post has no such comment and
	// ErrNotCommentAuthor if it was authored by a different user.
	DeleteComment(ctx context.Context, postID, commentID, requesterID string) (*Post, error)
}

// Service defines the business logic interface for post creation and listing
type Service interface {
	// CreatePost creates a post authored by userID
	CreatePost(ctx context.Context, userID string, req CreatePostRequest) (*Post, error)

	// GetFeed retrieves all posts, newest first
	GetFeed(ctx context.Context) ([]*Post, error)

	// GetUserPosts retrieves the posts authored by userID, newest first
	GetUserPosts(ctx context.Context, userID string) ([]*Post, error)
}
