package feed_reader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newslens/domain"
	"newslens/utils/logger"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example Tech News</title>
    <link>https://news.example.com</link>
    <item>
      <title>First story</title>
      <link>https://news.example.com/1</link>
      <description>&lt;p&gt;A &lt;b&gt;bold&lt;/b&gt; description.&lt;/p&gt;</description>
      <pubDate>Mon, 24 Aug 2026 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Second story</title>
      <link>https://news.example.com/2</link>
      <description>Plain description.</description>
    </item>
    <item>
      <title>No link, dropped</title>
      <description>orphan</description>
    </item>
  </channel>
</rss>`

func TestMain(m *testing.M) {
	logger.InitLogger()
	m.Run()
}

func TestFeedReader_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	reader := NewFeedReader(5 * time.Second)
	items, err := reader.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 items (entry without link dropped), got %d", len(items))
	}

	first := items[0]
	if first.Title != "First story" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.Link != "https://news.example.com/1" {
		t.Errorf("Link = %q", first.Link)
	}
	if first.Source != "Example Tech News" {
		t.Errorf("Source = %q", first.Source)
	}
	if first.ContentSnippet != "A bold description." {
		t.Errorf("ContentSnippet = %q, want HTML stripped", first.ContentSnippet)
	}
	if first.PubDate == "" {
		t.Error("PubDate should be carried through")
	}
}

func TestFeedReader_Fetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	reader := NewFeedReader(5 * time.Second)
	if _, err := reader.Fetch(context.Background(), server.URL); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestFeedReader_Fetch_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not a feed"))
	}))
	defer server.Close()

	reader := NewFeedReader(5 * time.Second)
	if _, err := reader.Fetch(context.Background(), server.URL); err == nil {
		t.Error("expected parse error for non-XML body")
	}
}

func TestFeedReader_Fetch_EmptyURL(t *testing.T) {
	reader := NewFeedReader(5 * time.Second)
	if _, err := reader.Fetch(context.Background(), ""); err != domain.ErrEmptyFeedURL {
		t.Errorf("error = %v, want ErrEmptyFeedURL", err)
	}
}

func TestFeedReader_Fetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	reader := NewFeedReader(5 * time.Second)
	if _, err := reader.Fetch(ctx, server.URL); err == nil {
		t.Error("expected error when the context deadline passes")
	}
}
