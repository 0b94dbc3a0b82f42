package posts

import "errors"

var (
	// ErrNotFound indicates the requested post doesn't exist
	ErrNotFound = errors.New("post not found")

	// ErrCommentNotFound indicates the post has no comment with the given id
	ErrCommentNotFound = errors.New("comment not found")

	// ErrNotCommentAuthor indicates the comment belongs to a different user
	ErrNotCommentAuthor = errors.New("comment belongs to another user")

	// ErrEmptyDescription indicates the post description is empty
	ErrEmptyDescription = errors.New("post description is required")

	// ErrConflict indicates the underlying store reported a write conflict.
	// The request can be retried by the caller.
	ErrConflict = errors.New("post was modified concurrently")
)
