package image

import (
	"context"
	"io"
)

// SearchResult represents a single image search result
type SearchResult struct {
	ID           string // Unique identifier
	URL          string // Direct URL to the image
	ThumbnailURL string // URL to thumbnail version
	Width        int    // Image width in pixels
	Height       int    // Image height in pixels
	Description  string // Image description or tags
	Source       string // Source provider (e.g., "pixabay")
}

// SearchOptions configures the image search
type SearchOptions struct {
	Query      string // Search query (English word)
	Language   string // Language code (default: "en")
	SafeSearch bool   // Enable safe search filtering
	PerPage    int    // Number of results per page
	Page       int    // Page number (1-based)
	ImageType  string // Type: "photo", "illustration", "vector", "all"
}

// DefaultSearchOptions returns sensible defaults for word illustrations
func DefaultSearchOptions(query string) *SearchOptions {
	return &SearchOptions{
		Query:      query,
		Language:   "en",
		SafeSearch: true,
		PerPage:    5,
		Page:       1,
		ImageType:  "photo",
	}
}

// Searcher defines the interface for image search providers
type Searcher interface {
	// Search performs an image search with the given options
	Search(ctx context.Context, opts *SearchOptions) ([]SearchResult, error)

	// Download downloads an image from the given URL
	Download(ctx context.Context, url string) (io.ReadCloser, error)

	// Name returns the name of the search provider
	Name() string
}

// SearchError represents an error from an image search provider
type SearchError struct {
	Provider string
	Code     string
	Message  string
}

func (e *SearchError) Error() string {
	return e.Provider + ": " + e.Message
}

// RateLimitError indicates that the API rate limit has been exceeded
type RateLimitError struct {
	Provider   string
	RetryAfter int // Seconds to wait before retry
}

func (e *RateLimitError) Error() string {
	return e.Provider + ": rate limit exceeded"
}
