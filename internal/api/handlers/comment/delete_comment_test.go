package comment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sociable/internal/core/posts"
)

func TestDeleteCommentHandler_Success(t *testing.T) {
	var gotPostID, gotCommentID, gotRequesterID string
	service := &mockCommentService{
		deleteFunc: func(ctx context.Context, postID, commentID, requesterID string) (*posts.Post, error) {
			gotPostID, gotCommentID, gotRequesterID = postID, commentID, requesterID
			return &posts.Post{ID: postID, Likes: posts.NewLikeSet(), Comments: []posts.Comment{}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/posts/post-1/comment/comment-1", nil)
	req = withUser(req, "user-1")

	w := httptest.NewRecorder()
	newRouter(service).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "post-1", gotPostID)
	assert.Equal(t, "comment-1", gotCommentID)
	assert.Equal(t, "user-1", gotRequesterID)

	var updated posts.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Empty(t, updated.Comments)
}

func TestDeleteCommentHandler_Forbidden(t *testing.T) {
	service := &mockCommentService{
		deleteFunc: func(ctx context.Context, postID, commentID, requesterID string) (*posts.Post, error) {
			return nil, posts.ErrNotCommentAuthor
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/posts/post-1/comment/comment-1", nil)
	req = withUser(req, "intruder")

	w := httptest.NewRecorder()
	newRouter(service).ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)

	var errBody map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.Equal(t, "You can only delete your own comments", errBody["message"])
}

func TestDeleteCommentHandler_CommentNotFound(t *testing.T) {
	service := &mockCommentService{
		deleteFunc: func(ctx context.Context, postID, commentID, requesterID string) (*posts.Post, error) {
			return nil, posts.ErrCommentNotFound
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/posts/post-1/comment/no-such-comment", nil)
	req = withUser(req, "user-1")

	w := httptest.NewRecorder()
	newRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCommentHandler_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/posts/post-1/comment/comment-1", nil)

	w := httptest.NewRecorder()
	newRouter(&mockCommentService{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
