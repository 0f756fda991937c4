package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newslens/domain"
)

func groqServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		var req chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("request body is not valid JSON: %v", err)
		}
		if req.ResponseFormat.Type != "json_object" {
			t.Errorf("expected json_object response format, got %q", req.ResponseFormat.Type)
		}

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestGroqClient_Analyze_Success(t *testing.T) {
	analysis := `{"summary":"A detailed summary.","insights":["one","two","three"],"why":"It matters.","topic":"Science"}`
	server := groqServer(t, http.StatusOK, analysis)
	defer server.Close()

	client := NewGroqClient(server.URL, "test-key", "", 5*time.Second)
	result, err := client.Analyze(context.Background(), "article text")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if result.Summary != "A detailed summary." {
		t.Errorf("Summary = %q", result.Summary)
	}
	if len(result.Insights) != 3 {
		t.Errorf("len(Insights) = %d, want 3", len(result.Insights))
	}
	if result.Topic != "Science" {
		t.Errorf("Topic = %q", result.Topic)
	}
}

func TestGroqClient_Analyze_RateLimited(t *testing.T) {
	server := groqServer(t, http.StatusTooManyRequests, "")
	defer server.Close()

	client := NewGroqClient(server.URL, "test-key", "", 5*time.Second)
	_, err := client.Analyze(context.Background(), "article text")
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("error = %v, want ErrRateLimited", err)
	}
}

func TestGroqClient_Analyze_ServerError(t *testing.T) {
	server := groqServer(t, http.StatusInternalServerError, "")
	defer server.Close()

	client := NewGroqClient(server.URL, "test-key", "", 5*time.Second)
	_, err := client.Analyze(context.Background(), "article text")

	var httpErr *domain.ExternalHTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("error = %v, want ExternalHTTPError", err)
	}
	if httpErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d", httpErr.StatusCode)
	}
}

func TestGroqClient_Analyze_UnparseableContent(t *testing.T) {
	server := groqServer(t, http.StatusOK, "not json at all")
	defer server.Close()

	client := NewGroqClient(server.URL, "test-key", "", 5*time.Second)
	if _, err := client.Analyze(context.Background(), "article text"); err == nil {
		t.Error("expected error for unparseable analysis content")
	}
}

func TestGroqClient_Analyze_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewGroqClient(server.URL, "test-key", "", 5*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.Analyze(ctx, "article text")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded in chain", err)
	}
}

func TestAnalysisPrompt_TruncatesLongText(t *testing.T) {
	long := strings.Repeat("x", maxPromptChars+500)
	prompt := AnalysisPrompt(long)
	if strings.Contains(prompt, strings.Repeat("x", maxPromptChars+1)) {
		t.Error("prompt should truncate article text to the input limit")
	}
	if !strings.Contains(prompt, "AI & ML") || !strings.Contains(prompt, "Space") {
		t.Error("prompt should list the fixed topic vocabulary")
	}
}
