// Package tmdb provides a client for The Movie Database v3 API.
package tmdb

import (
	"os"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public TMDB v3 endpoint.
	DefaultBaseURL = "https://api.themoviedb.org/3"

	defaultLanguage = "en-US"
	defaultTimeout  = 10 * time.Second
)

// Config holds configuration for the TMDB client.
type Config struct {
	APIKey   string        // v3 API key sent as the api_key query parameter
	BaseURL  string        // e.g. "https://api.themoviedb.org/3"
	Language string        // sent as the language query parameter
	Timeout  time.Duration // HTTP request timeout
}

// LoadConfig loads TMDB configuration from environment variables.
func LoadConfig() Config {
	baseURL := strings.TrimRight(os.Getenv("TMDB_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Config{
		APIKey:   os.Getenv("TMDB_API_KEY"),
		BaseURL:  baseURL,
		Language: defaultLanguage,
		Timeout:  defaultTimeout,
	}
}
