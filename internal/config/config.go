// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	GitHubUser  string
	GitHubToken string

	StatsEnabled bool
	SoundEnabled bool
	Debug        bool

	// ContentPath points at an alternate Markdown article; empty means the
	// embedded landing page.
	ContentPath string

	WindowWidth  int
	WindowHeight int
}

// StatsActive returns true when the profile fetch should run at startup:
// stats are enabled and a user to look up is configured. An empty user is not
// an error, it just leaves the counters on their placeholders.
func (c *Config) StatsActive() bool {
	return c.StatsEnabled && c.GitHubUser != ""
}

// Load reads configuration from environment variables and returns a validated
// Config. All variables are optional. Defaults: BACKDROP_GITHUB_USER (jr-cho),
// BACKDROP_STATS (true), BACKDROP_SOUND (true), BACKDROP_DEBUG (false),
// BACKDROP_WINDOW_WIDTH (1024), BACKDROP_WINDOW_HEIGHT (768).
// BACKDROP_GITHUB_TOKEN and BACKDROP_CONTENT default to empty.
func Load() (*Config, error) {
	user := "jr-cho"
	if v, ok := os.LookupEnv("BACKDROP_GITHUB_USER"); ok {
		user = v
	}

	statsEnabled, err := lookupBool("BACKDROP_STATS", true)
	if err != nil {
		return nil, err
	}
	soundEnabled, err := lookupBool("BACKDROP_SOUND", true)
	if err != nil {
		return nil, err
	}
	debug, err := lookupBool("BACKDROP_DEBUG", false)
	if err != nil {
		return nil, err
	}

	width, err := lookupInt("BACKDROP_WINDOW_WIDTH", 1024)
	if err != nil {
		return nil, err
	}
	height, err := lookupInt("BACKDROP_WINDOW_HEIGHT", 768)
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("window size %dx%d is not positive", width, height)
	}

	return &Config{
		GitHubUser:   user,
		GitHubToken:  os.Getenv("BACKDROP_GITHUB_TOKEN"),
		StatsEnabled: statsEnabled,
		SoundEnabled: soundEnabled,
		Debug:        debug,
		ContentPath:  os.Getenv("BACKDROP_CONTENT"),
		WindowWidth:  width,
		WindowHeight: height,
	}, nil
}

func lookupBool(name string, def bool) (bool, error) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s has invalid boolean %q: %w", name, v, err)
	}
	return b, nil
}

func lookupInt(name string, def int) (int, error) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s has invalid integer %q: %w", name, v, err)
	}
	return n, nil
}
