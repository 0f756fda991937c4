package feed_reader

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"newslens/domain"
	"newslens/utils/html_parser"
	"newslens/utils/logger"
)

// FeedReader retrieves and parses one RSS/Atom feed URL into normalized feed
// items. The gofeed parser is a black box here; this driver only owns the
// HTTP client settings and the field mapping.
type FeedReader struct {
	parser *gofeed.Parser
}

func NewFeedReader(timeout time.Duration) *FeedReader {
	parser := gofeed.NewParser()
	parser.Client = newHTTPClient(timeout)
	return &FeedReader{parser: parser}
}

// Fetch downloads and parses the feed at url. The returned items carry the
// feed's display title as their source name.
func (r *FeedReader) Fetch(ctx context.Context, url string) ([]domain.FeedItem, error) {
	if url == "" {
		return nil, domain.ErrEmptyFeedURL
	}

	feed, err := r.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, err
	}

	source := feed.Title
	if source == "" {
		source = "Unknown Source"
	}

	items := make([]domain.FeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil || item.Link == "" {
			continue
		}
		items = append(items, domain.FeedItem{
			Title:          item.Title,
			Link:           item.Link,
			Content:        item.Content,
			ContentSnippet: html_parser.ExtractText(item.Description),
			PubDate:        item.Published,
			Source:         source,
		})
	}

	logger.Logger.Info("Feed collected", "url", url, "title", feed.Title, "items", len(items))

	return items, nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: false,
			MinVersion:         tls.VersionTLS12,
		},
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 30 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
