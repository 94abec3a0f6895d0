package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClientAuthorization(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		wantAuth string
	}{
		{
			name:     "with token",
			token:    "secret",
			wantAuth: "Bearer secret",
		},
		{
			name:     "without token",
			token:    "",
			wantAuth: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAuth string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			httpClient, err := NewHTTPClient(tt.token, 100, time.Minute, 5*time.Second)
			require.NoError(t, err)
			assert.Equal(t, 5*time.Second, httpClient.Timeout)

			resp, err := httpClient.Get(server.URL)
			require.NoError(t, err)
			resp.Body.Close()

			assert.Equal(t, tt.wantAuth, gotAuth)
		})
	}
}

func TestNewHTTPClientWithGithubClient(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/pixel-phantoms/site", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.Write([]byte(`{"stargazers_count":1,"forks_count":2}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	httpClient, err := NewHTTPClient("secret", 0, time.Minute, 5*time.Second)
	require.NoError(t, err)
	c, err := NewClient(httpClient, server.URL)
	require.NoError(t, err)

	meta, err := c.Repository(context.Background(), testRepo)
	require.NoError(t, err)
	assert.Equal(t, 1, meta.Stars)
	assert.Equal(t, 2, meta.Forks)
}
