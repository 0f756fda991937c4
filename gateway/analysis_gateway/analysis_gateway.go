package analysis_gateway

import (
	"context"
	"errors"

	"newslens/domain"
	"newslens/driver/llm"
	apperrors "newslens/utils/errors"
)

// provider is the surface both LLM drivers share.
type provider interface {
	Name() string
	Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error)
}

// ProviderGateway implements analysis_port.AnalysisProviderPort for one LLM
// backend, translating driver errors into coded errors the analyze flow can
// branch on: rate limits retry, timeouts never do.
type ProviderGateway struct {
	provider provider
}

func NewProviderGateway(p provider) *ProviderGateway {
	return &ProviderGateway{provider: p}
}

func (g *ProviderGateway) Name() string {
	return g.provider.Name()
}

func (g *ProviderGateway) Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	result, err := g.provider.Analyze(ctx, text)
	if err != nil {
		return nil, g.classifyError(err, text)
	}
	return result, nil
}

func (g *ProviderGateway) classifyError(err error, text string) error {
	errCtx := map[string]interface{}{
		"provider":    g.provider.Name(),
		"text_length": len(text),
	}

	switch {
	case errors.Is(err, llm.ErrRateLimited):
		return apperrors.NewRateLimitContextError(
			"provider rate limit exceeded",
			"gateway", "ProviderGateway", "Analyze",
			err, errCtx,
		)
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.NewTimeoutContextError(
			"provider request timed out",
			"gateway", "ProviderGateway", "Analyze",
			err, errCtx,
		)
	default:
		return apperrors.NewExternalAPIContextError(
			"provider request failed",
			"gateway", "ProviderGateway", "Analyze",
			err, errCtx,
		)
	}
}
