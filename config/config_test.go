package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var testEnvKeys = []string{
	"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT",
	"INGEST_FEEDS_FILE", "INGEST_STORE_CAPACITY", "INGEST_MAX_CONCURRENCY", "INGEST_INTERVAL", "INGEST_JOB_ENABLED",
	"GROQ_API_KEY", "GROQ_API_URL", "GROQ_MODEL",
	"GEMINI_API_KEY", "GEMINI_API_URL", "GEMINI_MODEL",
	"AI_REQUEST_TIMEOUT", "AI_MAX_RETRIES", "AI_BACKOFF_BASE", "AI_BACKOFF_CAP",
	"RATE_LIMIT_FEED_FETCH_INTERVAL", "CACHE_DAILY_BRIEF_EXPIRY",
	"LOG_LEVEL", "LOG_FORMAT",
	"HTTP_CLIENT_TIMEOUT", "HTTP_DIAL_TIMEOUT", "HTTP_IDLE_CONN_TIMEOUT",
}

func clearTestEnv() {
	for _, key := range testEnvKeys {
		os.Unsetenv(key)
	}
}

func TestNewConfig_WithDefaults(t *testing.T) {
	clearTestEnv()

	config, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() failed: %v", err)
	}

	if config.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", config.Server.Port)
	}
	if config.Ingest.StoreCapacity != 150 {
		t.Errorf("expected store capacity 150, got %d", config.Ingest.StoreCapacity)
	}
	if config.Ingest.MaxConcurrency != 4 {
		t.Errorf("expected max concurrency 4, got %d", config.Ingest.MaxConcurrency)
	}
	if !config.Ingest.JobEnabled {
		t.Error("expected ingest job enabled by default")
	}
	if config.AI.RequestTimeout != 15*time.Second {
		t.Errorf("expected request timeout 15s, got %v", config.AI.RequestTimeout)
	}
	if config.AI.MaxRetries != 2 {
		t.Errorf("expected max retries 2, got %d", config.AI.MaxRetries)
	}
	if config.AI.BackoffBase != 2*time.Second {
		t.Errorf("expected backoff base 2s, got %v", config.AI.BackoffBase)
	}
	if config.AI.BackoffCap != 10*time.Second {
		t.Errorf("expected backoff cap 10s, got %v", config.AI.BackoffCap)
	}
	if config.AI.GroqModel != "llama-3.1-8b-instant" {
		t.Errorf("unexpected groq model %s", config.AI.GroqModel)
	}
	if config.Cache.DailyBriefExpiry != 6*time.Hour {
		t.Errorf("expected daily brief expiry 6h, got %v", config.Cache.DailyBriefExpiry)
	}
	if config.Logging.Level != "info" || config.Logging.Format != "json" {
		t.Errorf("unexpected logging defaults: %+v", config.Logging)
	}
}

func TestNewConfig_WithEnvironmentOverrides(t *testing.T) {
	clearTestEnv()
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("INGEST_STORE_CAPACITY", "50")
	t.Setenv("AI_REQUEST_TIMEOUT", "5s")
	t.Setenv("INGEST_JOB_ENABLED", "false")
	t.Setenv("GROQ_API_KEY", "test-key")

	config, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig() failed: %v", err)
	}

	if config.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", config.Server.Port)
	}
	if config.Ingest.StoreCapacity != 50 {
		t.Errorf("expected store capacity 50, got %d", config.Ingest.StoreCapacity)
	}
	if config.AI.RequestTimeout != 5*time.Second {
		t.Errorf("expected request timeout 5s, got %v", config.AI.RequestTimeout)
	}
	if config.Ingest.JobEnabled {
		t.Error("expected ingest job disabled")
	}
	if config.AI.GroqAPIKey != "test-key" {
		t.Errorf("expected groq key from env, got %q", config.AI.GroqAPIKey)
	}
}

func TestNewConfig_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "invalid port", key: "SERVER_PORT", value: "70000"},
		{name: "zero store capacity", key: "INGEST_STORE_CAPACITY", value: "0"},
		{name: "negative retries", key: "AI_MAX_RETRIES", value: "-1"},
		{name: "excessive retries", key: "AI_MAX_RETRIES", value: "64"},
		{name: "invalid log level", key: "LOG_LEVEL", value: "verbose"},
		{name: "unparseable duration", key: "AI_REQUEST_TIMEOUT", value: "fifteen"},
		{name: "cap below base", key: "AI_BACKOFF_CAP", value: "1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearTestEnv()
			t.Setenv(tt.key, tt.value)

			if _, err := NewConfig(); err == nil {
				t.Errorf("expected error for %s=%s, got nil", tt.key, tt.value)
			}
		})
	}
}

func TestLoadFeedURLs_Defaults(t *testing.T) {
	urls, err := LoadFeedURLs("")
	if err != nil {
		t.Fatalf("LoadFeedURLs() failed: %v", err)
	}
	if len(urls) != 8 {
		t.Fatalf("expected 8 default feeds, got %d", len(urls))
	}
	if urls[0] != "https://techcrunch.com/feed/" {
		t.Errorf("unexpected first default feed %s", urls[0])
	}
}

func TestLoadFeedURLs_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feeds.yaml")
	content := "feeds:\n  - https://example.com/a.xml\n  - https://example.com/b.xml\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	urls, err := LoadFeedURLs(path)
	if err != nil {
		t.Fatalf("LoadFeedURLs() failed: %v", err)
	}
	if len(urls) != 2 || urls[1] != "https://example.com/b.xml" {
		t.Errorf("unexpected feed list %v", urls)
	}
}

func TestLoadFeedURLs_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFeedURLs(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("empty feed list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "feeds.yaml")
		if err := os.WriteFile(path, []byte("feeds: []\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFeedURLs(path); err == nil {
			t.Error("expected error for empty feed list")
		}
	})
}
