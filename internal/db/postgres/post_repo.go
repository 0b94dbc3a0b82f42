package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"Sociable/internal/core/posts"
	"Sociable/internal/core/users"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// queryer abstracts *sql.DB and *sql.Tx so post hydration can run both
// standalone and inside mutation transactions
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Create inserts a new post row. The like set and comment sequence start
// empty; they live in their own tables and are never written here.
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (id, author_id, description, picture_path, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	var picture sql.NullString
	if post.PicturePath != nil {
		picture.String = *post.PicturePath
		picture.Valid = true
	}

	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.UserID, post.Description, picture, post.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return users.ErrUserNotFound
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID retrieves the full post document
func (r *postgresPostRepo) GetByID(ctx context.Context, postID string) (*posts.Post, error) {
	return getPost(ctx, r.db, postID)
}

// ListAll retrieves every post, newest first
func (r *postgresPostRepo) ListAll(ctx context.Context) ([]*posts.Post, error) {
	return r.list(ctx, `SELECT id FROM posts ORDER BY created_at DESC, id DESC`)
}

// ListByAuthor retrieves the author's posts, newest first
func (r *postgresPostRepo) ListByAuthor(ctx context.Context, authorID string) ([]*posts.Post, error) {
	query := `SELECT id FROM posts WHERE author_id = $1 ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query, authorID)
}

// ToggleLike flips userID's membership in the post's like set.
// The single-row delete/insert pair runs under the post lock, so the flip is
// a true conditional update on one element, never a rewrite of the set.
func (r *postgresPostRepo) ToggleLike(ctx context.Context, postID, userID string) (*posts.Post, error) {
	var post *posts.Post

	err := r.withPostLock(ctx, postID, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`,
			postID, userID)
		if err != nil {
			return fmt.Errorf("failed to remove like: %w", err)
		}

		removed, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}

		if removed == 0 {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2)`,
				postID, userID)
			if err != nil {
				return fmt.Errorf("failed to add like: %w", err)
			}
		}

		p, err := getPost(ctx, tx, postID)
		if err != nil {
			return err
		}
		post = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// AddComment appends the comment to the end of the post's comment sequence
func (r *postgresPostRepo) AddComment(ctx context.Context, postID string, comment *posts.Comment) (*posts.Post, error) {
	var post *posts.Post

	err := r.withPostLock(ctx, postID, func(tx *sql.Tx) error {
		query := `
			INSERT INTO post_comments (id, post_id, author_id, content, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`
		_, err := tx.ExecContext(ctx, query,
			comment.ID, postID, comment.UserID, comment.Comment, comment.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert comment: %w", err)
		}

		p, err := getPost(ctx, tx, postID)
		if err != nil {
			return err
		}
		post = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// DeleteComment removes the identified comment after verifying ownership.
// The check and the delete run under the same post lock, so a comment cannot
// change hands or disappear between them.
func (r *postgresPostRepo) DeleteComment(ctx context.Context, postID, commentID, requesterID string) (*posts.Post, error) {
	var post *posts.Post

	err := r.withPostLock(ctx, postID, func(tx *sql.Tx) error {
		var authorID string
		err := tx.QueryRowContext(ctx,
			`SELECT author_id FROM post_comments WHERE id = $1 AND post_id = $2`,
			commentID, postID).Scan(&authorID)
		if err == sql.ErrNoRows {
			return posts.ErrCommentNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load comment: %w", err)
		}

		if authorID != requesterID {
			return posts.ErrNotCommentAuthor
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM post_comments WHERE id = $1`, commentID); err != nil {
			return fmt.Errorf("failed to delete comment: %w", err)
		}

		p, err := getPost(ctx, tx, postID)
		if err != nil {
			return err
		}
		post = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return post, nil
}

// withPostLock runs fn inside a transaction holding a row lock on the post.
// All mutations to one post serialize on this lock, which makes each
// read-modify-write linearizable. Returns posts.ErrNotFound for unknown posts.
func (r *postgresPostRepo) withPostLock(ctx context.Context, postID string, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM posts WHERE id = $1 FOR UPDATE`, postID).Scan(&id)
	if err == sql.ErrNoRows {
		return posts.ErrNotFound
	}
	if err != nil {
		return mapConflict(err, "failed to lock post")
	}

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return mapConflict(err, "failed to commit")
	}

	return nil
}

// mapConflict converts serialization and deadlock failures (pq error class 40)
// to posts.ErrConflict so the gateway can signal a retryable 409
func mapConflict(err error, msg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "40" {
		return posts.ErrConflict
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// list loads ids with the given query, then hydrates each post
func (r *postgresPostRepo) list(ctx context.Context, query string, args ...any) ([]*posts.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan post id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	result := make([]*posts.Post, 0, len(ids))
	for _, id := range ids {
		post, err := getPost(ctx, r.db, id)
		if err != nil {
			if errors.Is(err, posts.ErrNotFound) {
				continue // deleted between the id query and hydration
			}
			return nil, err
		}
		result = append(result, post)
	}

	return result, nil
}

// getPost hydrates the full post document: post row with author fields,
// like set, and comment sequence in insertion order
func getPost(ctx context.Context, q queryer, postID string) (*posts.Post, error) {
	query := `
		SELECT p.id, p.author_id, u.first_name, u.last_name, u.location,
		       p.description, p.picture_path, u.picture_path, p.created_at
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`

	var post posts.Post
	var postPicture, authorPicture sql.NullString

	err := q.QueryRowContext(ctx, query, postID).Scan(
		&post.ID, &post.UserID, &post.FirstName, &post.LastName, &post.Location,
		&post.Description, &postPicture, &authorPicture, &post.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if postPicture.Valid {
		path := postPicture.String
		post.PicturePath = &path
	}
	if authorPicture.Valid {
		post.UserPicturePath = authorPicture.String
	}

	likes, err := loadLikes(ctx, q, postID)
	if err != nil {
		return nil, err
	}
	post.Likes = likes

	comments, err := loadComments(ctx, q, postID)
	if err != nil {
		return nil, err
	}
	post.Comments = comments

	return &post, nil
}

// loadLikes loads the post's like set
func loadLikes(ctx context.Context, q queryer, postID string) (posts.LikeSet, error) {
	rows, err := q.QueryContext(ctx, `SELECT user_id FROM post_likes WHERE post_id = $1`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to load likes: %w", err)
	}
	defer rows.Close()

	likes := posts.NewLikeSet()
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("failed to scan like: %w", err)
		}
		likes.Add(userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate likes: %w", err)
	}

	return likes, nil
}

// loadComments loads the post's comment sequence in insertion order
func loadComments(ctx context.Context, q queryer, postID string) ([]posts.Comment, error) {
	query := `
		SELECT c.id, c.author_id, c.content, u.first_name, u.last_name,
		       u.picture_path, c.created_at
		FROM post_comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.seq ASC
	`

	rows, err := q.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}
	defer rows.Close()

	comments := make([]posts.Comment, 0)
	for rows.Next() {
		var c posts.Comment
		var picture sql.NullString
		err := rows.Scan(&c.ID, &c.UserID, &c.Comment, &c.FirstName, &c.LastName,
			&picture, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		if picture.Valid {
			c.UserPicturePath = picture.String
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return comments, nil
}
