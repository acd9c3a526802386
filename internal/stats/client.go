// Package stats fetches the public GitHub profile numbers shown in the page
// chrome.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"
	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"
)

// MaxLanguages caps the derived languages counter.
const MaxLanguages = 8

// Profile holds the three numbers the page displays.
type Profile struct {
	Repos     int
	Followers int
	Languages int
}

// Client fetches one user's public profile from the GitHub REST API.
type Client struct {
	gh       *gh.Client
	username string
}

// NewClient creates a GitHub API client with the following transport stack:
//  1. httpcache (ETag-based conditional request caching)
//  2. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  3. go-github (GitHub REST API client)
//
// The token is optional: the profile endpoint is public, and an empty token
// leaves the request unauthenticated.
func NewClient(username, token string) *Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(cacheTransport)

	client := gh.NewClient(rateLimitClient)
	if token != "" {
		client = client.WithAuthToken(token)
	}

	return &Client{gh: client, username: username}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base
// URL. This constructor is intended for testing, allowing injection of an
// httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL, username string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{gh: client, username: username}, nil
}

// Fetch retrieves the profile numbers for the configured user. The languages
// count is derived from the repo count and capped at MaxLanguages; the API is
// never asked for per-repo language breakdowns.
func (c *Client) Fetch(ctx context.Context) (Profile, error) {
	user, resp, err := c.gh.Users.Get(ctx, c.username)
	if err != nil {
		return Profile{}, fmt.Errorf("fetching profile %s: %w", c.username, err)
	}

	logRateLimit(resp, c.username)

	// GetXxx() would mask an absent field as zero; a payload without these
	// is malformed, not a profile with no repos.
	if user.PublicRepos == nil || user.Followers == nil {
		return Profile{}, fmt.Errorf("profile %s: payload missing repo or follower counts", c.username)
	}

	p := Profile{
		Repos:     user.GetPublicRepos(),
		Followers: user.GetFollowers(),
	}
	p.Languages = p.Repos
	if p.Languages > MaxLanguages {
		p.Languages = MaxLanguages
	}

	return p, nil
}

// logRateLimit logs the GitHub API rate limit status after each call.
func logRateLimit(resp *gh.Response, username string) {
	if resp == nil {
		return
	}

	slog.Debug("github api call",
		"endpoint", "users/"+username,
		"rate_remaining", resp.Rate.Remaining,
		"rate_limit", resp.Rate.Limit,
	)
}
