package memory

import (
	"context"
	"sort"
	"sync"

	"Sociable/internal/core/posts"
)

// PostRepository is a mutex-guarded in-memory post store.
// It gives the same per-post serialization guarantee as the Postgres store
// (one mutex serializes all mutations) and backs service and handler tests.
type PostRepository struct {
	mu    sync.Mutex
	store map[string]*posts.Post
}

// NewPostRepository creates an empty in-memory post repository
func NewPostRepository() *PostRepository {
	return &PostRepository{store: make(map[string]*posts.Post)}
}

// Create inserts a new post
func (r *PostRepository) Create(ctx context.Context, post *posts.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[post.ID] = clonePost(post)
	return nil
}

// GetByID retrieves the full post document
func (r *PostRepository) GetByID(ctx context.Context, postID string) (*posts.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.store[postID]
	if !ok {
		return nil, posts.ErrNotFound
	}
	return clonePost(post), nil
}

// ListAll retrieves every post, newest first
func (r *PostRepository) ListAll(ctx context.Context) ([]*posts.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*posts.Post, 0, len(r.store))
	for _, post := range r.store {
		all = append(all, clonePost(post))
	}
	sortNewestFirst(all)
	return all, nil
}

// ListByAuthor retrieves the author's posts, newest first
func (r *PostRepository) ListByAuthor(ctx context.Context, authorID string) ([]*posts.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	authored := make([]*posts.Post, 0)
	for _, post := range r.store {
		if post.UserID == authorID {
			authored = append(authored, clonePost(post))
		}
	}
	sortNewestFirst(authored)
	return authored, nil
}

// ToggleLike atomically flips userID's membership in the post's like set
func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID string) (*posts.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.store[postID]
	if !ok {
		return nil, posts.ErrNotFound
	}

	if post.Likes.Has(userID) {
		post.Likes.Remove(userID)
	} else {
		post.Likes.Add(userID)
	}

	return clonePost(post), nil
}

// AddComment atomically appends the comment to the post's comment sequence
func (r *PostRepository) AddComment(ctx context.Context, postID string, comment *posts.Comment) (*posts.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.store[postID]
	if !ok {
		return nil, posts.ErrNotFound
	}

	post.Comments = append(post.Comments, *comment)
	return clonePost(post), nil
}

// DeleteComment atomically removes the identified comment after the
// ownership check
func (r *PostRepository) DeleteComment(ctx context.Context, postID, commentID, requesterID string) (*posts.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post, ok := r.store[postID]
	if !ok {
		return nil, posts.ErrNotFound
	}

	for i, comment := range post.Comments {
		if comment.ID != commentID {
			continue
		}
		if comment.UserID != requesterID {
			return nil, posts.ErrNotCommentAuthor
		}
		post.Comments = append(post.Comments[:i], post.Comments[i+1:]...)
		return clonePost(post), nil
	}

	return nil, posts.ErrCommentNotFound
}

func sortNewestFirst(list []*posts.Post) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		}
		return list[i].ID > list[j].ID
	})
}

// clonePost deep-copies a post so callers never alias stored state
func clonePost(post *posts.Post) *posts.Post {
	cp := *post

	cp.Likes = posts.NewLikeSet()
	for userID := range post.Likes {
		cp.Likes.Add(userID)
	}

	cp.Comments = make([]posts.Comment, len(post.Comments))
	copy(cp.Comments, post.Comments)

	if post.PicturePath != nil {
		path := *post.PicturePath
		cp.PicturePath = &path
	}

	return &cp
}
