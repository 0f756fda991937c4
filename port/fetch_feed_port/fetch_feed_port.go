package fetch_feed_port

import (
	"context"

	"newslens/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=fetch_feed_port.go -destination=../../mocks/mock_fetch_feed_port.go -package=mocks

// FetchFeedPort retrieves the normalized items of one feed URL.
type FetchFeedPort interface {
	Fetch(ctx context.Context, url string) ([]domain.FeedItem, error)
}
