package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticToken(token string) TokenProvider {
	return func(ctx context.Context) (string, error) {
		return token, nil
	}
}

func TestClient_DecodesEmpty404Payload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/workspaces/ws_abc/folders", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"object":"list","data":[],"total":0}`))
	}))
	defer server.Close()

	c := New(server.URL, staticToken("tok"))
	defer c.Close()

	result, err := c.Folders(context.Background(), "ws_abc")
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, result.Status)
	assert.Empty(t, result.Data.Data)
	assert.Zero(t, result.Data.Total)
}

func TestClient_SyncUserDecodesCreatedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/auth/sync", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"user":{"id":42,"subject":"auth0|jane","email":"jane@example.com","created_at":1756684800},"workspaces":[{"id":"ws_abc","name":"Jane's Workspace","type":"PERSONAL"}]}`))
	}))
	defer server.Close()

	c := New(server.URL, staticToken("tok"))
	defer c.Close()

	result, err := c.SyncUser(context.Background())
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, result.Status)
	assert.Equal(t, uint(42), result.Data.User.ID)
	require.Len(t, result.Data.Workspaces, 1)
	assert.Equal(t, "PERSONAL", result.Data.Workspaces[0].Type)
}

func TestClient_SearchUsersSendsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ana", r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","data":[{"id":2,"email":"banana@x.com"}],"total":1}`))
	}))
	defer server.Close()

	c := New(server.URL, staticToken("tok"))
	defer c.Close()

	result, err := c.SearchUsers(context.Background(), "ana")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.Status)
	require.Len(t, result.Data.Data, 1)
	assert.Equal(t, "banana@x.com", result.Data.Data[0].Email)
}

func TestClient_TransportErrorIsReturned(t *testing.T) {
	c := New("http://127.0.0.1:1", staticToken("tok"))
	defer c.Close()

	_, err := c.Workspaces(context.Background())
	assert.Error(t, err)
}
