package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facexd/facexd-go/pkg/apiclient"
)

func TestAuthLogin(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req apiclient.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "dana@facexd.example", req.Email)
		assert.Equal(t, "hunter2", req.Password)

		_, _ = w.Write([]byte(`{
			"accessToken": "tok-abc",
			"user": {"id":"u1","name":"Dana","email":"dana@facexd.example","avatar":"","createdAt":"2024-01-01T00:00:00Z"}
		}`))
	}))

	resp, err := api.Auth.Login(context.Background(), "dana@facexd.example", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", resp.AccessToken)
	assert.Equal(t, "u1", resp.User.ID)
}

func TestAuthLoginRejected(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":"invalid_credentials","message":"wrong email or password"}`))
	}))

	_, err := api.Auth.Login(context.Background(), "dana@facexd.example", "nope")
	assert.ErrorIs(t, err, apiclient.ErrRequestRejected)
}

func TestPostsFeed(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/posts", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{
			"posts": [{"id":"p1","author":{"id":"u2","name":"Alex","avatar":"","createdAt":"2024-01-01T00:00:00Z"},"content":"hello","likeCount":3,"commentCount":1,"liked":true,"createdAt":"2024-03-01T08:00:00Z"}],
			"meta": {"currentPage":2,"totalPages":5,"totalItems":42,"hasNextPage":true}
		}`))
	}))

	page, err := api.Posts.Feed(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "p1", page.Posts[0].ID)
	assert.True(t, page.Posts[0].Liked)
	assert.True(t, page.Meta.HasNext)
}

func TestPostsLikeUnlike(t *testing.T) {
	var calls []string
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, api.Posts.Like(context.Background(), "p1"))
	require.NoError(t, api.Posts.Unlike(context.Background(), "p1"))

	assert.Equal(t, []string{
		"POST /api/v1/posts/p1/like",
		"DELETE /api/v1/posts/p1/like",
	}, calls)
}

func TestFriendRequestFlow(t *testing.T) {
	var calls []string
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/api/v1/friends/requests":
			if r.Method == http.MethodGet {
				_, _ = w.Write([]byte(`{"requests":[{"id":"fr1","from":{"id":"u3","name":"Sam","avatar":"","createdAt":"2024-01-01T00:00:00Z"},"createdAt":"2024-03-01T11:00:00Z"}]}`))
				return
			}
			w.WriteHeader(http.StatusCreated)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))

	ctx := context.Background()

	reqs, err := api.Friends.Requests(ctx)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "Sam", reqs[0].From.Name)

	require.NoError(t, api.Friends.Send(ctx, "u9"))
	require.NoError(t, api.Friends.Accept(ctx, "fr1"))
	require.NoError(t, api.Friends.Reject(ctx, "fr2"))

	assert.Equal(t, []string{
		"GET /api/v1/friends/requests",
		"POST /api/v1/friends/requests",
		"PUT /api/v1/friends/requests/fr1/accept",
		"DELETE /api/v1/friends/requests/fr2",
	}, calls)
}

func TestUsersGet(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/u7", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"u7","name":"Robin","avatar":"","bio":"hi","createdAt":"2024-01-01T00:00:00Z"}`))
	}))

	user, err := api.Users.Get(context.Background(), "u7")
	require.NoError(t, err)
	assert.Equal(t, "Robin", user.Name)
	assert.Equal(t, "hi", user.Bio)
}
