package post

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Sociable/internal/api/middleware"
	"Sociable/internal/core/posts"
	"Sociable/internal/core/users"
)

// mockPostService implements posts.Service for testing
type mockPostService struct {
	createFunc    func(ctx context.Context, userID string, req posts.CreatePostRequest) (*posts.Post, error)
	feedFunc      func(ctx context.Context) ([]*posts.Post, error)
	userPostsFunc func(ctx context.Context, userID string) ([]*posts.Post, error)
}

func (m *mockPostService) CreatePost(ctx context.Context, userID string, req posts.CreatePostRequest) (*posts.Post, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &posts.Post{ID: "post-1", UserID: userID, Description: req.Description,
		Likes: posts.NewLikeSet(), Comments: []posts.Comment{}}, nil
}

func (m *mockPostService) GetFeed(ctx context.Context) ([]*posts.Post, error) {
	if m.feedFunc != nil {
		return m.feedFunc(ctx)
	}
	return []*posts.Post{}, nil
}

func (m *mockPostService) GetUserPosts(ctx context.Context, userID string) ([]*posts.Post, error) {
	if m.userPostsFunc != nil {
		return m.userPostsFunc(ctx, userID)
	}
	return []*posts.Post{}, nil
}

func newRouter(service *mockPostService) chi.Router {
	r := chi.NewRouter()
	r.Post("/posts", NewCreatePostHandler(service).HandleCreate)
	r.Get("/posts", NewGetFeedHandler(service).HandleGetFeed)
	r.Get("/posts/{userID}/posts", NewGetUserPostsHandler(service).HandleGetUserPosts)
	return r
}

func withUser(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

func TestCreatePostHandler_Success(t *testing.T) {
	body, err := json.Marshal(posts.CreatePostRequest{Description: "hello world"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = withUser(req, "user-1")

	w := httptest.NewRecorder()
	newRouter(&mockPostService{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created posts.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, "hello world", created.Description)
}

func TestCreatePostHandler_EmptyDescription(t *testing.T) {
	service := &mockPostService{
		createFunc: func(ctx context.Context, userID string, req posts.CreatePostRequest) (*posts.Post, error) {
			return nil, posts.ErrEmptyDescription
		},
	}

	body, _ := json.Marshal(posts.CreatePostRequest{Description: ""})
	req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))
	req = withUser(req, "user-1")

	w := httptest.NewRecorder()
	newRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePostHandler_Unauthenticated(t *testing.T) {
	body, _ := json.Marshal(posts.CreatePostRequest{Description: "hello"})
	req := httptest.NewRequest(http.MethodPost, "/posts", bytes.NewReader(body))

	w := httptest.NewRecorder()
	newRouter(&mockPostService{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUserPostsHandler_UnknownUser(t *testing.T) {
	service := &mockPostService{
		userPostsFunc: func(ctx context.Context, userID string) ([]*posts.Post, error) {
			return nil, users.ErrUserNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/posts/no-such-user/posts", nil)
	req = withUser(req, "user-1")

	w := httptest.NewRecorder()
	newRouter(service).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetFeedHandler_Success(t *testing.T) {
	service := &mockPostService{
		feedFunc: func(ctx context.Context) ([]*posts.Post, error) {
			return []*posts.Post{
				{ID: "post-2", Likes: posts.NewLikeSet(), Comments: []posts.Comment{}},
				{ID: "post-1", Likes: posts.NewLikeSet(), Comments: []posts.Comment{}},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req = withUser(req, "user-1")

	w := httptest.NewRecorder()
	newRouter(service).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var feed []*posts.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed, 2)
	assert.Equal(t, "post-2", feed[0].ID)
}
