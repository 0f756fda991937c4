package domain

// ProviderPreference selects which LLM backend the analysis flow talks to.
type ProviderPreference string

const (
	ProviderGroq   ProviderPreference = "groq"
	ProviderGemini ProviderPreference = "gemini"
	// ProviderHybrid prefers Groq and falls back to Gemini on definitive
	// failure. Default when the caller expresses no preference.
	ProviderHybrid ProviderPreference = "hybrid"
)

// ParseProviderPreference maps free-form client input to a preference,
// defaulting to hybrid for anything unrecognized.
func ParseProviderPreference(s string) ProviderPreference {
	switch ProviderPreference(s) {
	case ProviderGroq:
		return ProviderGroq
	case ProviderGemini:
		return ProviderGemini
	default:
		return ProviderHybrid
	}
}

// AnalysisResult is the structured output of one provider call: a factual
// summary, 3-5 insights, a two-sentence "why it matters" and a topic from the
// fixed vocabulary.
type AnalysisResult struct {
	Summary  string   `json:"summary"`
	Insights []string `json:"insights"`
	Why      string   `json:"why"`
	Topic    string   `json:"topic"`
}

// DegradedAnalysisResult is returned when every provider attempt failed. It
// is a well-formed result so callers never see a raw provider error.
func DegradedAnalysisResult() *AnalysisResult {
	return &AnalysisResult{
		Summary:  "Analysis is temporarily unavailable. The AI providers could not be reached; please try again in a moment.",
		Insights: []string{"The article text is still available below while analysis is offline."},
		Why:      "Provider capacity is limited right now. A retry usually succeeds once rate limits reset.",
		Topic:    TopicUncategorized,
	}
}
