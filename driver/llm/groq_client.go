package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"newslens/domain"
)

// ErrRateLimited signals an HTTP 429 from a provider. The analyze flow
// retries these with backoff; everything else fails the attempt outright.
var ErrRateLimited = errors.New("provider rate limit exceeded")

const (
	defaultGroqURL   = "https://api.groq.com/openai/v1/chat/completions"
	defaultGroqModel = "llama-3.1-8b-instant"
)

// GroqClient talks to the Groq chat-completions API in JSON mode.
type GroqClient struct {
	client *http.Client
	apiURL string
	apiKey string
	model  string
}

func NewGroqClient(apiURL, apiKey, model string, timeout time.Duration) *GroqClient {
	if apiURL == "" {
		apiURL = defaultGroqURL
	}
	if model == "" {
		model = defaultGroqModel
	}
	return &GroqClient{
		client: &http.Client{Timeout: timeout},
		apiURL: apiURL,
		apiKey: apiKey,
		model:  model,
	}
}

func (c *GroqClient) Name() string { return "groq" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
	MaxTokens      int            `json:"max_tokens"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Analyze sends the analysis prompt for text and parses the structured
// response. Rate limiting surfaces as ErrRateLimited; other non-200 statuses
// surface as ExternalHTTPError.
func (c *GroqClient) Analyze(ctx context.Context, text string) (*domain.AnalysisResult, error) {
	payload := chatCompletionRequest{
		Model:          c.model,
		Messages:       []chatMessage{{Role: "user", Content: AnalysisPrompt(text)}},
		ResponseFormat: responseFormat{Type: "json_object"},
		MaxTokens:      800,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &domain.ExternalHTTPError{StatusCode: resp.StatusCode, URL: c.apiURL}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return nil, fmt.Errorf("failed to parse completion envelope: %w", err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return nil, errors.New("completion contained no choices")
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &result); err != nil {
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}

	return &result, nil
}
