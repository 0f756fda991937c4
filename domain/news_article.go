package domain

// Sentinel values for AI-derived fields that have not been populated yet.
// The analyze flow treats any article whose Summary differs from
// SummaryPlaceholder as already analyzed.
const (
	SummaryPlaceholder = "Click to analyze"
	WhyPlaceholder     = "Pending analysis"
	TopicUncategorized = "Uncategorized"
)

// Article is one ingested news item. Source fields come from the RSS feed and
// are immutable after ingestion; Summary, Why, Insights and Topic are mutated
// in place exactly once by the analysis flow.
type Article struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Link           string   `json:"link"`
	Content        string   `json:"content"`
	ContentSnippet string   `json:"contentSnippet"`
	PubDate        string   `json:"pubDate"`
	Source         string   `json:"source"`
	Topic          string   `json:"topic"`
	TimeToRead     string   `json:"timeToRead"`
	Summary        string   `json:"summary"`
	Why            string   `json:"why"`
	Insights       []string `json:"insights"`
	Likes          int      `json:"likes"`
	// Categorizing is kept for wire compatibility with older clients.
	// Classification is synchronous, so it is always false.
	Categorizing bool `json:"categorizing"`
}

// Analyzed reports whether the article has already been enriched by a
// provider. Re-analyzing an analyzed article is a no-op.
func (a *Article) Analyzed() bool {
	return a.Summary != SummaryPlaceholder
}

// Clone returns a copy of the article with its own Insights slice, so the
// copy can be read without synchronizing against later mutations of the
// original.
func (a *Article) Clone() Article {
	copied := *a
	if a.Insights != nil {
		copied.Insights = make([]string, len(a.Insights))
		copy(copied.Insights, a.Insights)
	}
	return copied
}

// AnalysisText picks the text handed to the provider: snippet first, then
// full content, then the bare title.
func (a *Article) AnalysisText() string {
	if a.ContentSnippet != "" {
		return a.ContentSnippet
	}
	if a.Content != "" {
		return a.Content
	}
	return a.Title
}

// FeedItem is one normalized entry of a parsed RSS feed, before it becomes an
// Article.
type FeedItem struct {
	Title          string `json:"title"`
	Link           string `json:"link"`
	Content        string `json:"content"`
	ContentSnippet string `json:"contentSnippet"`
	PubDate        string `json:"pubDate"`
	Source         string `json:"source"`
}
