package analyze_usecase

import (
	"context"
	"errors"
	"time"

	"newslens/domain"
	"newslens/driver/article_store"
	"newslens/port/analysis_port"
	apperrors "newslens/utils/errors"
	"newslens/utils/logger"
	"newslens/utils/metrics"
)

const (
	defaultAttemptTimeout = 15 * time.Second
	defaultMaxRetries     = 2
	defaultBackoffBase    = 2 * time.Second
	defaultBackoffCap     = 10 * time.Second
)

// outcome tags the result of one provider attempt so the retry loop can
// branch without inspecting error strings.
type outcome int

const (
	outcomeOK outcome = iota
	outcomeRateLimited
	outcomeTimedOut
	outcomeFailed
)

func (o outcome) String() string {
	switch o {
	case outcomeOK:
		return "ok"
	case outcomeRateLimited:
		return "rate_limited"
	case outcomeTimedOut:
		return "timed_out"
	default:
		return "failed"
	}
}

// Options tune the retry behavior. Zero values fall back to defaults.
type Options struct {
	AttemptTimeout time.Duration
	MaxRetries     int
	BackoffBase    time.Duration
	BackoffCap     time.Duration
}

// AnalyzeUsecase runs the on-demand analysis flow for one article. Rate
// limited attempts are retried with capped exponential backoff; a timed out
// attempt is never retried against the same provider. Under the hybrid
// preference a definitive Groq failure falls back to Gemini exactly once.
// Provider failures never surface to the caller; the flow degrades to a
// placeholder result instead.
type AnalyzeUsecase struct {
	groq    analysis_port.AnalysisProviderPort
	gemini  analysis_port.AnalysisProviderPort
	store   *article_store.Store
	metrics *metrics.Metrics

	attemptTimeout time.Duration
	maxRetries     int
	backoffBase    time.Duration
	backoffCap     time.Duration

	// sleep is replaceable so tests can observe backoff without waiting.
	sleep func(ctx context.Context, d time.Duration) error

	clog *logger.ContextLogger
}

func NewAnalyzeUsecase(
	groq analysis_port.AnalysisProviderPort,
	gemini analysis_port.AnalysisProviderPort,
	store *article_store.Store,
	m *metrics.Metrics,
	opts Options,
) *AnalyzeUsecase {
	if opts.AttemptTimeout <= 0 {
		opts.AttemptTimeout = defaultAttemptTimeout
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = defaultMaxRetries
	}
	if opts.BackoffBase <= 0 {
		opts.BackoffBase = defaultBackoffBase
	}
	if opts.BackoffCap <= 0 {
		opts.BackoffCap = defaultBackoffCap
	}

	return &AnalyzeUsecase{
		groq:           groq,
		gemini:         gemini,
		store:          store,
		metrics:        m,
		attemptTimeout: opts.AttemptTimeout,
		maxRetries:     opts.MaxRetries,
		backoffBase:    opts.BackoffBase,
		backoffCap:     opts.BackoffCap,
		sleep:          sleepContext,
		clog:           logger.NewContextLogger(logger.Logger),
	}
}

// Execute analyzes the article with the given id under the caller's provider
// preference and returns the enriched article. Already analyzed articles are
// returned as stored without any provider call. The only error it returns is
// for an unknown article id.
func (u *AnalyzeUsecase) Execute(ctx context.Context, articleID string, pref domain.ProviderPreference) (*domain.Article, error) {
	article, err := u.store.GetByID(articleID)
	if err != nil {
		return nil, apperrors.NewNotFoundContextError(
			"article not found",
			"usecase", "AnalyzeUsecase", "Execute",
			map[string]interface{}{"article_id": articleID},
		)
	}

	if article.Analyzed() {
		return &article, nil
	}

	ctx = context.WithValue(ctx, logger.ArticleIDKey, articleID)

	start := time.Now()
	text := article.AnalysisText()

	result, degraded := u.run(ctx, text, pref)

	if u.metrics != nil {
		u.metrics.AnalysisDuration.Observe(time.Since(start).Seconds())
	}
	u.clog.LogDuration(ctx, "analyze_article", time.Since(start))

	if degraded {
		// Not persisted: the article stays analyzable so a later attempt can
		// replace the placeholder with a real result.
		logger.Logger.Warn("analysis degraded",
			"article_id", articleID,
			"provider_preference", string(pref))
		article.Summary = result.Summary
		article.Why = result.Why
		article.Insights = result.Insights
		return &article, nil
	}

	updated, err := u.store.Update(articleID, func(a *domain.Article) {
		a.Summary = result.Summary
		a.Why = result.Why
		a.Insights = result.Insights
		if result.Topic != "" {
			a.Topic = result.Topic
		}
	})
	if err != nil {
		// Evicted between lookup and publish. Return the enriched copy.
		article.Summary = result.Summary
		article.Why = result.Why
		article.Insights = result.Insights
		if result.Topic != "" {
			article.Topic = result.Topic
		}
		return &article, nil
	}

	return &updated, nil
}

// run executes the provider strategy for the preference and reports whether
// the result is degraded.
func (u *AnalyzeUsecase) run(ctx context.Context, text string, pref domain.ProviderPreference) (*domain.AnalysisResult, bool) {
	switch pref {
	case domain.ProviderGemini:
		if result := u.attemptOnce(ctx, u.gemini, text); result != nil {
			return result, false
		}
		return domain.DegradedAnalysisResult(), true

	case domain.ProviderGroq:
		result, _ := u.attemptWithRetry(ctx, u.groq, text)
		if result != nil {
			return result, false
		}
		return domain.DegradedAnalysisResult(), true

	default: // hybrid
		result, _ := u.attemptWithRetry(ctx, u.groq, text)
		if result != nil {
			return result, false
		}
		if result := u.attemptOnce(ctx, u.gemini, text); result != nil {
			return result, false
		}
		return domain.DegradedAnalysisResult(), true
	}
}

// attemptWithRetry drives the primary provider loop: up to maxRetries+1
// attempts, retrying only rate limited attempts with capped exponential
// backoff. Timeouts and non-retryable failures end the loop immediately.
func (u *AnalyzeUsecase) attemptWithRetry(ctx context.Context, provider analysis_port.AnalysisProviderPort, text string) (*domain.AnalysisResult, outcome) {
	var last outcome

	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		result, o := u.attempt(ctx, provider, text)
		last = o

		switch o {
		case outcomeOK:
			return result, outcomeOK

		case outcomeRateLimited:
			if attempt == u.maxRetries {
				return nil, outcomeRateLimited
			}
			wait := u.backoffDelay(attempt)
			logger.Logger.Info("provider rate limited, backing off",
				"provider", provider.Name(),
				"attempt", attempt+1,
				"wait", wait)
			if err := u.sleep(ctx, wait); err != nil {
				return nil, outcomeRateLimited
			}

		case outcomeTimedOut, outcomeFailed:
			return nil, o
		}
	}

	return nil, last
}

// attemptOnce is the single-shot path used for Gemini.
func (u *AnalyzeUsecase) attemptOnce(ctx context.Context, provider analysis_port.AnalysisProviderPort, text string) *domain.AnalysisResult {
	result, _ := u.attempt(ctx, provider, text)
	return result
}

func (u *AnalyzeUsecase) attempt(ctx context.Context, provider analysis_port.AnalysisProviderPort, text string) (*domain.AnalysisResult, outcome) {
	attemptCtx, cancel := context.WithTimeout(ctx, u.attemptTimeout)
	defer cancel()

	result, err := provider.Analyze(attemptCtx, text)
	o := classify(err)

	if u.metrics != nil {
		u.metrics.AnalysisRequests.WithLabelValues(provider.Name(), o.String()).Inc()
	}

	if o != outcomeOK {
		logger.Logger.Warn("provider attempt failed",
			"provider", provider.Name(),
			"outcome", o.String(),
			"error", err)
		return nil, o
	}

	return result, outcomeOK
}

func classify(err error) outcome {
	if err == nil {
		return outcomeOK
	}

	var appErr *apperrors.AppContextError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case apperrors.CodeRateLimit:
			return outcomeRateLimited
		case apperrors.CodeTimeout:
			return outcomeTimedOut
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return outcomeTimedOut
	}

	return outcomeFailed
}

// backoffDelay doubles the base delay per attempt up to the cap. Doubling
// stops at the cap instead of shifting, so a large attempt count cannot
// overflow the duration.
func (u *AnalyzeUsecase) backoffDelay(attempt int) time.Duration {
	wait := u.backoffBase
	for i := 0; i < attempt && wait < u.backoffCap; i++ {
		wait *= 2
	}
	if wait > u.backoffCap {
		wait = u.backoffCap
	}
	return wait
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
