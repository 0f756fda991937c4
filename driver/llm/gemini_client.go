package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"newslens/domain"
)

const (
	defaultGeminiURL   = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel = "gemini-1.5-flash"
)

// GeminiClient talks to the Gemini generateContent API. Gemini has no strict
// JSON mode here, so the prompt carries an explicit raw-JSON instruction and
// the response is unwrapped from any markdown fence before parsing.
type GeminiClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

func NewGeminiClient(baseURL, apiKey, model string, timeout time.Duration) *GeminiClient {
	if baseURL == "" {
		baseURL = defaultGeminiURL
	}
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

func (c *GeminiClient) Name() string { return "gemini" }

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Analyze sends the analysis prompt for text and parses the structured
// response out of the candidate text.
func (c *GeminiClient) Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	prompt := AnalysisPrompt(text) +
		"\n\nRespond with ONLY the raw JSON object, without markdown fences or commentary."

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &domain.ExternalHTTPError{StatusCode: resp.StatusCode, URL: c.baseURL}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var envelope geminiResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse generateContent envelope: %w", err)
	}
	if len(envelope.Candidates) == 0 || len(envelope.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("response contained no candidates")
	}

	content := stripCodeFence(envelope.Candidates[0].Content.Parts[0].Text)

	var result domain.AnalysisResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}

	return &result, nil
}

// stripCodeFence removes a surrounding markdown code fence, with or without
// a language tag, leaving the inner payload.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx != -1 {
		// Drop the language tag line ("json", "JSON", or empty).
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
