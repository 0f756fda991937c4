package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the prometheus collectors the backend exposes. A single
// instance is created by the composition root and shared through the DI
// container so tests can use isolated registries.
type Metrics struct {
	ArticlesIngested prometheus.Counter
	FeedFetchErrors  prometheus.Counter
	AnalysisRequests *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
}

// New registers the collectors on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ArticlesIngested: factory.NewCounter(prometheus.CounterOpts{
			Name: "newslens_articles_ingested_total",
			Help: "Number of new articles inserted into the store.",
		}),
		FeedFetchErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "newslens_feed_fetch_errors_total",
			Help: "Number of per-feed fetch or parse failures during ingestion.",
		}),
		AnalysisRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "newslens_analysis_requests_total",
			Help: "Analysis attempts by provider and outcome.",
		}, []string{"provider", "outcome"}),
		AnalysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "newslens_analysis_duration_seconds",
			Help:    "Wall time of on-demand article analysis, fallback included.",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		}),
	}
}

// NewDefault registers on the global prometheus registry.
func NewDefault() *Metrics {
	return New(prometheus.DefaultRegisterer)
}
