package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every BACKDROP_ env var that Load() reads.
var allConfigKeys = []string{
	"BACKDROP_GITHUB_USER",
	"BACKDROP_GITHUB_TOKEN",
	"BACKDROP_STATS",
	"BACKDROP_SOUND",
	"BACKDROP_DEBUG",
	"BACKDROP_CONTENT",
	"BACKDROP_WINDOW_WIDTH",
	"BACKDROP_WINDOW_HEIGHT",
}

// isolateConfigEnv saves and unsets all BACKDROP_ env vars so tests don't
// inherit values from the host environment. t.Cleanup restores original
// values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "jr-cho", cfg.GitHubUser)
	assert.Equal(t, "", cfg.GitHubToken)
	assert.True(t, cfg.StatsEnabled)
	assert.True(t, cfg.SoundEnabled)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "", cfg.ContentPath)
	assert.Equal(t, 1024, cfg.WindowWidth)
	assert.Equal(t, 768, cfg.WindowHeight)
}

func TestLoad_Overrides(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("BACKDROP_GITHUB_USER", "someoneelse")
	t.Setenv("BACKDROP_GITHUB_TOKEN", "ghp_test123")
	t.Setenv("BACKDROP_STATS", "false")
	t.Setenv("BACKDROP_SOUND", "0")
	t.Setenv("BACKDROP_DEBUG", "true")
	t.Setenv("BACKDROP_CONTENT", "/tmp/post.md")
	t.Setenv("BACKDROP_WINDOW_WIDTH", "640")
	t.Setenv("BACKDROP_WINDOW_HEIGHT", "480")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "someoneelse", cfg.GitHubUser)
	assert.Equal(t, "ghp_test123", cfg.GitHubToken)
	assert.False(t, cfg.StatsEnabled)
	assert.False(t, cfg.SoundEnabled)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/post.md", cfg.ContentPath)
	assert.Equal(t, 640, cfg.WindowWidth)
	assert.Equal(t, 480, cfg.WindowHeight)
}

func TestLoad_InvalidBool(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("BACKDROP_SOUND", "loud")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BACKDROP_SOUND")
}

func TestLoad_InvalidWidth(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("BACKDROP_WINDOW_WIDTH", "wide")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BACKDROP_WINDOW_WIDTH")
}

func TestLoad_NonPositiveWindow(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("BACKDROP_WINDOW_HEIGHT", "0")

	cfg, err := Load()

	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestStatsActive(t *testing.T) {
	cases := []struct {
		name    string
		enabled bool
		user    string
		want    bool
	}{
		{"enabled with user", true, "jr-cho", true},
		{"disabled", false, "jr-cho", false},
		{"no user", true, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{StatsEnabled: tc.enabled, GitHubUser: tc.user}
			assert.Equal(t, tc.want, cfg.StatsActive())
		})
	}
}
