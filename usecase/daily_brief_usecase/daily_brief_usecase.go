package daily_brief_usecase

import (
	"context"
	"sync"
	"time"

	"newslens/domain"
	"newslens/driver/article_store"
	"newslens/port/ingest_port"
	"newslens/utils/logger"
)

const briefSize = 3

// BriefEntry is one curated article of the daily brief.
type BriefEntry struct {
	Topic   string `json:"topic"`
	Title   string `json:"title"`
	Time    string `json:"time,omitempty"`
	Summary string `json:"summary"`
	Link    string `json:"link,omitempty"`
}

// Brief is the daily brief payload with its cache window.
type Brief struct {
	Articles  []BriefEntry `json:"articles"`
	CachedAt  string       `json:"cachedAt"`
	ExpiresAt string       `json:"expiresAt"`
}

// topicCluster maps a brief slot to the store topics that can fill it.
type topicCluster struct {
	label         string
	topics        []string
	defaultTime   string
	cannedSummary string
}

var clusters = []topicCluster{
	{
		label:         "AI",
		topics:        []string{"AI & ML"},
		defaultTime:   "3 min",
		cannedSummary: "Discover the latest advancements in artificial intelligence and machine learning models.",
	},
	{
		label:         "Science",
		topics:        []string{"Science", "Space", "Health", "Climate"},
		defaultTime:   "4 min",
		cannedSummary: "Explore recent discoveries pushing the boundaries of scientific research.",
	},
	{
		label:         "Tech",
		topics:        []string{"Web Dev", "DevOps", "Security", "Crypto", "Tech"},
		defaultTime:   "2 min",
		cannedSummary: "Stay up to date with the newest frameworks, tools, and developer ecosystems.",
	},
}

const (
	fillerSummary      = "A notable update from your personalized news feed curated today."
	placeholderTitle   = "Wait for feed to load..."
	placeholderSummary = "Fetching the latest news. Please refresh."
)

// DailyBriefUsecase curates a small cross-topic selection of articles behind
// a single-slot cache. A brief built from real articles is cached for the
// configured expiry; placeholder briefs are never cached.
type DailyBriefUsecase struct {
	store    *article_store.Store
	ingester ingest_port.IngestPort
	expiry   time.Duration

	mu       sync.Mutex
	cached   []BriefEntry
	cachedAt time.Time

	// now is replaceable so tests can control cache expiry.
	now func() time.Time
}

func NewDailyBriefUsecase(store *article_store.Store, ingester ingest_port.IngestPort, expiry time.Duration) *DailyBriefUsecase {
	return &DailyBriefUsecase{
		store:    store,
		ingester: ingester,
		expiry:   expiry,
		now:      time.Now,
	}
}

// Execute returns the current daily brief, rebuilding it when the cached one
// has expired. An empty store triggers a synchronous ingestion pass first.
func (u *DailyBriefUsecase) Execute(ctx context.Context) Brief {
	u.mu.Lock()
	defer u.mu.Unlock()

	now := u.now()

	if u.cached != nil && now.Sub(u.cachedAt) < u.expiry {
		return Brief{
			Articles:  u.cached,
			CachedAt:  u.cachedAt.UTC().Format(time.RFC3339),
			ExpiresAt: u.cachedAt.Add(u.expiry).UTC().Format(time.RFC3339),
		}
	}

	if u.store.Count() == 0 && u.ingester != nil {
		if _, err := u.ingester.Execute(ctx); err != nil {
			logger.Logger.Error("brief ingestion failed", "error", err)
		}
	}

	entries := u.selectEntries()

	if len(entries) > 0 {
		u.cached = entries
		u.cachedAt = now
		return Brief{
			Articles:  entries,
			CachedAt:  now.UTC().Format(time.RFC3339),
			ExpiresAt: now.Add(u.expiry).UTC().Format(time.RFC3339),
		}
	}

	// Placeholders are returned uncached and expire immediately.
	stamp := now.UTC().Format(time.RFC3339)
	return Brief{
		Articles: []BriefEntry{
			{Topic: "AI", Title: placeholderTitle, Summary: placeholderSummary},
			{Topic: "Science", Title: placeholderTitle, Summary: placeholderSummary},
			{Topic: "Tech", Title: placeholderTitle, Summary: placeholderSummary},
		},
		CachedAt:  stamp,
		ExpiresAt: stamp,
	}
}

// selectEntries fills one slot per topic cluster, then pads with arbitrary
// remaining articles up to the brief size.
func (u *DailyBriefUsecase) selectEntries() []BriefEntry {
	articles := u.store.List()
	used := make(map[string]struct{})
	entries := make([]BriefEntry, 0, briefSize)

	for _, cluster := range clusters {
		article := firstMatching(articles, cluster.topics, used)
		if article == nil {
			continue
		}
		used[article.ID] = struct{}{}

		entry := BriefEntry{
			Topic:   cluster.label,
			Title:   article.Title,
			Time:    article.TimeToRead,
			Summary: cluster.cannedSummary,
			Link:    article.Link,
		}
		if entry.Time == "" {
			entry.Time = cluster.defaultTime
		}
		if article.Analyzed() {
			entry.Summary = article.Summary
		}
		entries = append(entries, entry)
	}

	for _, article := range articles {
		if len(entries) >= briefSize {
			break
		}
		if _, taken := used[article.ID]; taken {
			continue
		}
		used[article.ID] = struct{}{}

		entry := BriefEntry{
			Topic:   article.Topic,
			Title:   article.Title,
			Time:    article.TimeToRead,
			Summary: fillerSummary,
			Link:    article.Link,
		}
		if entry.Topic == "" {
			entry.Topic = "News"
		}
		if entry.Time == "" {
			entry.Time = "3 min"
		}
		if article.Analyzed() {
			entry.Summary = article.Summary
		}
		entries = append(entries, entry)
	}

	return entries
}

func firstMatching(articles []domain.Article, topics []string, used map[string]struct{}) *domain.Article {
	for i := range articles {
		article := &articles[i]
		if _, taken := used[article.ID]; taken {
			continue
		}
		for _, topic := range topics {
			if article.Topic == topic {
				return article
			}
		}
	}
	return nil
}
