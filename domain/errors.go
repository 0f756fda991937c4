package domain

import (
	"errors"
	"fmt"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrEmptyFeedURL    = errors.New("feed URL is empty")
)

// ExternalHTTPError represents an unexpected HTTP status from an external
// provider or feed host.
type ExternalHTTPError struct {
	StatusCode int
	URL        string
}

func (e *ExternalHTTPError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %q", e.StatusCode, e.URL)
}
