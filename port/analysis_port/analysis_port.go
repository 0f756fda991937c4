package analysis_port

import (
	"context"

	"newslens/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=analysis_port.go -destination=../../mocks/mock_analysis_port.go -package=mocks

// AnalysisProviderPort is one LLM backend capable of producing a structured
// article analysis. Implementations classify their failures into the
// AppContextError taxonomy (rate limit, timeout, external API) so the
// analyze flow can branch on error class without provider knowledge.
type AnalysisProviderPort interface {
	Name() string
	Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error)
}
