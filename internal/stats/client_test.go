package stats_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jr-cho/backdrop/internal/stats"
)

// newTestClient creates a Client backed by the given httptest handler.
func newTestClient(t *testing.T, handler http.Handler) *stats.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := stats.NewClientWithHTTPClient(server.Client(), server.URL+"/", "testuser")
	require.NoError(t, err)

	return client
}

// userJSON is a helper struct for building GitHub API profile responses.
type userJSON struct {
	Login       string `json:"login"`
	PublicRepos *int   `json:"public_repos,omitempty"`
	Followers   *int   `json:"followers,omitempty"`
}

func intp(v int) *int { return &v }

func TestFetch_CapsLanguagesAtEight(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/testuser", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(userJSON{
			Login:       "testuser",
			PublicRepos: intp(20),
			Followers:   intp(7),
		})
	})

	profile, err := newTestClient(t, handler).Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stats.Profile{Repos: 20, Followers: 7, Languages: 8}, profile)
}

func TestFetch_SmallProfileKeepsLanguagesUncapped(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(userJSON{
			Login:       "testuser",
			PublicRepos: intp(3),
			Followers:   intp(0),
		})
	})

	profile, err := newTestClient(t, handler).Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stats.Profile{Repos: 3, Followers: 0, Languages: 3}, profile)
}

func TestFetch_ServerError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	})

	_, err := newTestClient(t, handler).Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetch_MissingCountsIsAnError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(userJSON{Login: "testuser"})
	})

	_, err := newTestClient(t, handler).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestFetch_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL + "/"
	server.Close()

	client, err := stats.NewClientWithHTTPClient(&http.Client{}, baseURL, "testuser")
	require.NoError(t, err)

	_, err = client.Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetch_RespectsContextCancellation(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	client := newTestClient(t, handler)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Fetch(ctx)
	assert.Error(t, err)
}
