package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facexd/facexd-go/pkg/apiclient"
	"github.com/facexd/facexd-go/pkg/notifications"
)

func newTestAPI(t *testing.T, handler http.Handler) *apiclient.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := apiclient.New(srv.URL, apiclient.WithTokenSource(staticToken("tok")))
	require.NoError(t, err)
	return api
}

func TestNotificationsList(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/notifications", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"notifications": [
				{"id":"n1","type":"friend_request","sender":{"id":"u1","name":"Alex","avatar":""},"content":"Alex sent you a friend request","relatedId":"u1","read":false,"createdAt":"2024-03-01T10:00:00Z"},
				{"id":"n2","type":"post_like","sender":{"id":"u2","name":"Dana","avatar":""},"content":"Dana liked your post","relatedId":"p9","read":true,"createdAt":"2024-03-01T09:00:00Z"}
			]
		}`))
	}))

	list, err := api.Notifications.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Server order is preserved verbatim.
	assert.Equal(t, "n1", list[0].ID)
	assert.Equal(t, notifications.TypeFriendRequest, list[0].Type)
	assert.False(t, list[0].Read)
	assert.Equal(t, "n2", list[1].ID)
	assert.True(t, list[1].Read)
}

func TestNotificationsListEmpty(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"notifications": null}`))
	}))

	list, err := api.Notifications.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestNotificationsUnreadCount(t *testing.T) {
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/notifications/unread-count", r.URL.Path)
		_, _ = w.Write([]byte(`{"count": 4}`))
	}))

	count, err := api.Notifications.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestNotificationsMarkRead(t *testing.T) {
	var gotMethod, gotPath string
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, api.Notifications.MarkRead(context.Background(), "n1"))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/v1/notifications/n1/read", gotPath)
}

func TestNotificationsMarkAllRead(t *testing.T) {
	var gotMethod, gotPath string
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, api.Notifications.MarkAllRead(context.Background()))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/v1/notifications/read-all", gotPath)
}

func TestNotificationsDelete(t *testing.T) {
	var gotMethod, gotPath string
	api := newTestAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, api.Notifications.Delete(context.Background(), "n2"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/api/v1/notifications/n2", gotPath)
}

// The service must satisfy the store's remote contract.
var _ notifications.Service = (*apiclient.NotificationsService)(nil)
