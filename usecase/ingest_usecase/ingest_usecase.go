package ingest_usecase

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"newslens/domain"
	"newslens/driver/article_store"
	"newslens/port/fetch_feed_port"
	"newslens/utils/html_parser"
	"newslens/utils/logger"
	"newslens/utils/metrics"
	"newslens/utils/topic_classifier"
)

// wordsPerMinute is the assumed reading speed behind the timeToRead estimate.
const wordsPerMinute = 200

// IngestUsecase pulls every configured feed, normalizes the items into
// articles and inserts them into the store. One failing feed never aborts the
// pass; its error is logged and the remaining feeds proceed.
type IngestUsecase struct {
	fetcher  fetch_feed_port.FetchFeedPort
	store    *article_store.Store
	metrics  *metrics.Metrics
	feedURLs []string
	maxConc  int64
}

func NewIngestUsecase(
	fetcher fetch_feed_port.FetchFeedPort,
	store *article_store.Store,
	m *metrics.Metrics,
	feedURLs []string,
	maxConcurrency int,
) *IngestUsecase {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &IngestUsecase{
		fetcher:  fetcher,
		store:    store,
		metrics:  m,
		feedURLs: feedURLs,
		maxConc:  int64(maxConcurrency),
	}
}

// Execute runs one ingestion pass over all configured feeds and returns the
// number of newly inserted articles.
func (u *IngestUsecase) Execute(ctx context.Context) (int, error) {
	start := time.Now()

	sem := semaphore.NewWeighted(u.maxConc)
	var wg sync.WaitGroup
	var mu sync.Mutex
	inserted := 0

	for _, url := range u.feedURLs {
		// Acquire can succeed on a done context when weight is available, so
		// check cancellation explicitly.
		if ctx.Err() != nil {
			logger.Logger.Warn("ingestion pass interrupted", "error", ctx.Err())
			break
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			logger.Logger.Warn("ingestion pass interrupted", "error", err)
			break
		}

		wg.Add(1)
		go func(feedURL string) {
			defer wg.Done()
			defer sem.Release(1)

			count, err := u.ingestFeed(ctx, feedURL)
			if err != nil {
				if u.metrics != nil {
					u.metrics.FeedFetchErrors.Inc()
				}
				logger.Logger.Error("failed to ingest feed",
					"feed_url", feedURL,
					"error", err)
				return
			}

			mu.Lock()
			inserted += count
			mu.Unlock()
		}(url)
	}

	wg.Wait()

	logger.Logger.Info("ingestion pass finished",
		"feeds", len(u.feedURLs),
		"inserted", inserted,
		"total", u.store.Count(),
		"duration", time.Since(start))

	return inserted, nil
}

func (u *IngestUsecase) ingestFeed(ctx context.Context, feedURL string) (int, error) {
	items, err := u.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, item := range items {
		article := u.buildArticle(item)
		if u.store.Add(article) {
			inserted++
			if u.metrics != nil {
				u.metrics.ArticlesIngested.Inc()
			}
		}
	}

	return inserted, nil
}

func (u *IngestUsecase) buildArticle(item domain.FeedItem) *domain.Article {
	pubDate := item.PubDate
	if pubDate == "" {
		pubDate = time.Now().UTC().Format(time.RFC3339)
	}

	return &domain.Article{
		ID:             uuid.New().String(),
		Title:          item.Title,
		Link:           item.Link,
		Content:        item.Content,
		ContentSnippet: html_parser.SanitizeHTML(item.ContentSnippet),
		PubDate:        pubDate,
		Source:         item.Source,
		Topic:          topic_classifier.Classify(item.Title),
		TimeToRead:     estimateTimeToRead(item),
		Summary:        domain.SummaryPlaceholder,
		Why:            domain.WhyPlaceholder,
		Insights:       []string{},
		Likes:          0,
	}
}

func estimateTimeToRead(item domain.FeedItem) string {
	text := item.ContentSnippet
	if text == "" {
		text = item.Content
	}

	words := html_parser.WordCount(text)
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min", minutes)
}
