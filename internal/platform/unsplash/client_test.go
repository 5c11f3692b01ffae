package unsplash

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomImageSuccess(t *testing.T) {
	t.Parallel()

	var gotAuth, gotQuery, gotOrientation string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query().Get("query")
		gotOrientation = r.URL.Query().Get("orientation")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"urls": {"regular": "https://images.unsplash.com/photo-123"}}`))
	}))
	t.Cleanup(server.Close)

	client := NewClientWithEndpoint("test-key", server.URL, nil)

	url, err := client.RandomImage(context.Background(), "mountain sunrise")
	require.NoError(t, err)

	assert.Equal(t, "https://images.unsplash.com/photo-123", url)
	assert.Equal(t, "Client-ID test-key", gotAuth)
	assert.Equal(t, "mountain sunrise", gotQuery)
	assert.Equal(t, "landscape", gotOrientation)
}

func TestRandomImageUnconfigured(t *testing.T) {
	t.Parallel()

	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(server.Close)

	client := NewClientWithEndpoint("", server.URL, nil)

	url, err := client.RandomImage(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, url)
	assert.False(t, called, "unconfigured client must not call out")
}

func TestRandomImageErrorStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
	}{
		{name: "rate limited", status: http.StatusForbidden},
		{name: "unauthorized", status: http.StatusUnauthorized},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			t.Cleanup(server.Close)

			client := NewClientWithEndpoint("test-key", server.URL, nil)

			url, err := client.RandomImage(context.Background(), "anything")
			require.Error(t, err)
			assert.Empty(t, url)
			assert.Contains(t, err.Error(), "Unsplash API error")
		})
	}
}

func TestRandomImageNetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClientWithEndpoint("test-key", url, nil)

	_, err := client.RandomImage(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query Unsplash API")
}

func TestRandomImageEmptyResult(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"urls": {}}`))
	}))
	t.Cleanup(server.Close)

	client := NewClientWithEndpoint("test-key", server.URL, nil)

	url, err := client.RandomImage(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, url)
}
