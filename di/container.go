package di

import (
	"newslens/config"
	"newslens/driver/article_store"
	"newslens/driver/feed_reader"
	"newslens/driver/llm"
	"newslens/gateway/analysis_gateway"
	"newslens/gateway/fetch_feed_gateway"
	"newslens/usecase/analyze_usecase"
	"newslens/usecase/daily_brief_usecase"
	"newslens/usecase/ingest_usecase"
	"newslens/usecase/insights_usecase"
	"newslens/usecase/trending_usecase"
	"newslens/utils/metrics"
	"newslens/utils/rate_limiter"
)

type ApplicationComponents struct {
	ArticleStore      *article_store.Store
	IngestUsecase     *ingest_usecase.IngestUsecase
	AnalyzeUsecase    *analyze_usecase.AnalyzeUsecase
	TrendingUsecase   *trending_usecase.TrendingUsecase
	InsightsUsecase   *insights_usecase.InsightsUsecase
	DailyBriefUsecase *daily_brief_usecase.DailyBriefUsecase
	Metrics           *metrics.Metrics
}

func NewApplicationComponents(cfg *config.Config, feedURLs []string) *ApplicationComponents {
	store := article_store.NewStore(cfg.Ingest.StoreCapacity)
	appMetrics := metrics.NewDefault()

	feedGateway := fetch_feed_gateway.NewFetchFeedGateway(
		feed_reader.NewFeedReader(cfg.HTTP.ClientTimeout),
		rate_limiter.NewHostRateLimiter(cfg.RateLimit.FeedFetchInterval),
	)
	ingestUsecase := ingest_usecase.NewIngestUsecase(
		feedGateway, store, appMetrics, feedURLs, cfg.Ingest.MaxConcurrency)

	groqGateway := analysis_gateway.NewProviderGateway(
		llm.NewGroqClient(cfg.AI.GroqAPIURL, cfg.AI.GroqAPIKey, cfg.AI.GroqModel, cfg.AI.RequestTimeout))
	geminiGateway := analysis_gateway.NewProviderGateway(
		llm.NewGeminiClient(cfg.AI.GeminiAPIURL, cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel, cfg.AI.RequestTimeout))

	analyzeUsecase := analyze_usecase.NewAnalyzeUsecase(
		groqGateway, geminiGateway, store, appMetrics,
		analyze_usecase.Options{
			AttemptTimeout: cfg.AI.RequestTimeout,
			MaxRetries:     cfg.AI.MaxRetries,
			BackoffBase:    cfg.AI.BackoffBase,
			BackoffCap:     cfg.AI.BackoffCap,
		})

	return &ApplicationComponents{
		ArticleStore:      store,
		IngestUsecase:     ingestUsecase,
		AnalyzeUsecase:    analyzeUsecase,
		TrendingUsecase:   trending_usecase.NewTrendingUsecase(store),
		InsightsUsecase:   insights_usecase.NewInsightsUsecase(store),
		DailyBriefUsecase: daily_brief_usecase.NewDailyBriefUsecase(store, ingestUsecase, cfg.Cache.DailyBriefExpiry),
		Metrics:           appMetrics,
	}
}
