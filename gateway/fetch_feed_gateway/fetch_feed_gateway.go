package fetch_feed_gateway

import (
	"context"

	"newslens/domain"
	"newslens/driver/feed_reader"
	apperrors "newslens/utils/errors"
	"newslens/utils/rate_limiter"
)

// FetchFeedGateway implements fetch_feed_port.FetchFeedPort over the gofeed
// driver, applying per-host rate limiting before every fetch.
type FetchFeedGateway struct {
	reader      *feed_reader.FeedReader
	rateLimiter *rate_limiter.HostRateLimiter
}

func NewFetchFeedGateway(reader *feed_reader.FeedReader, rateLimiter *rate_limiter.HostRateLimiter) *FetchFeedGateway {
	return &FetchFeedGateway{
		reader:      reader,
		rateLimiter: rateLimiter,
	}
}

func (g *FetchFeedGateway) Fetch(ctx context.Context, url string) ([]domain.FeedItem, error) {
	if g.rateLimiter != nil {
		if err := g.rateLimiter.WaitForHost(ctx, url); err != nil {
			return nil, apperrors.NewRateLimitContextError(
				"rate limiting interrupted",
				"gateway", "FetchFeedGateway", "Fetch",
				err,
				map[string]interface{}{"feed_url": url},
			)
		}
	}

	items, err := g.reader.Fetch(ctx, url)
	if err != nil {
		return nil, apperrors.NewExternalAPIContextError(
			"failed to fetch feed",
			"gateway", "FetchFeedGateway", "Fetch",
			err,
			map[string]interface{}{"feed_url": url},
		)
	}

	return items, nil
}
