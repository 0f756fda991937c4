package fetch_feed_gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newslens/driver/feed_reader"
	apperrors "newslens/utils/errors"
	"newslens/utils/logger"
	"newslens/utils/rate_limiter"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	m.Run()
}

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Gateway Test Feed</title>
    <item>
      <title>First item</title>
      <link>https://example.com/1</link>
      <description>First description</description>
    </item>
  </channel>
</rss>`

func TestFetchFeedGateway_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(feedXML))
	}))
	defer server.Close()

	gateway := NewFetchFeedGateway(
		feed_reader.NewFeedReader(5*time.Second),
		rate_limiter.NewHostRateLimiter(time.Millisecond),
	)

	items, err := gateway.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Source != "Gateway Test Feed" {
		t.Errorf("expected source from channel title, got %q", items[0].Source)
	}
}

func TestFetchFeedGateway_Fetch_DriverError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	gateway := NewFetchFeedGateway(
		feed_reader.NewFeedReader(5*time.Second),
		rate_limiter.NewHostRateLimiter(time.Millisecond),
	)

	_, err := gateway.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var appErr *apperrors.AppContextError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppContextError, got %T", err)
	}
	if appErr.Code != apperrors.CodeExternalAPI {
		t.Errorf("expected code %s, got %s", apperrors.CodeExternalAPI, appErr.Code)
	}
	if appErr.Context["feed_url"] != server.URL {
		t.Errorf("expected feed_url context %q, got %v", server.URL, appErr.Context["feed_url"])
	}
}

func TestFetchFeedGateway_Fetch_CancelledDuringRateLimit(t *testing.T) {
	gateway := NewFetchFeedGateway(
		feed_reader.NewFeedReader(5*time.Second),
		rate_limiter.NewHostRateLimiter(time.Hour),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.Fetch(ctx, "https://slow.example.com/feed")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var appErr *apperrors.AppContextError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppContextError, got %T", err)
	}
	if appErr.Code != apperrors.CodeRateLimit {
		t.Errorf("expected code %s, got %s", apperrors.CodeRateLimit, appErr.Code)
	}
}
