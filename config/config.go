package config

import (
	"time"
)

type Config struct {
	Server    ServerConfig    `json:"server"`
	Ingest    IngestConfig    `json:"ingest"`
	AI        AIConfig        `json:"ai"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Cache     CacheConfig     `json:"cache"`
	Logging   LoggingConfig   `json:"logging"`
	HTTP      HTTPConfig      `json:"http"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"120s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"120s"` // LLM calls can run long
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type IngestConfig struct {
	FeedsFile      string        `json:"feeds_file" env:"INGEST_FEEDS_FILE"`
	StoreCapacity  int           `json:"store_capacity" env:"INGEST_STORE_CAPACITY" default:"150"`
	MaxConcurrency int           `json:"max_concurrency" env:"INGEST_MAX_CONCURRENCY" default:"4"`
	Interval       time.Duration `json:"interval" env:"INGEST_INTERVAL" default:"30m"`
	JobEnabled     bool          `json:"job_enabled" env:"INGEST_JOB_ENABLED" default:"true"`
}

type AIConfig struct {
	GroqAPIKey     string        `json:"-" env:"GROQ_API_KEY"`
	GroqAPIURL     string        `json:"groq_api_url" env:"GROQ_API_URL"`
	GroqModel      string        `json:"groq_model" env:"GROQ_MODEL" default:"llama-3.1-8b-instant"`
	GeminiAPIKey   string        `json:"-" env:"GEMINI_API_KEY"`
	GeminiAPIURL   string        `json:"gemini_api_url" env:"GEMINI_API_URL"`
	GeminiModel    string        `json:"gemini_model" env:"GEMINI_MODEL" default:"gemini-1.5-flash"`
	RequestTimeout time.Duration `json:"request_timeout" env:"AI_REQUEST_TIMEOUT" default:"15s"`
	MaxRetries     int           `json:"max_retries" env:"AI_MAX_RETRIES" default:"2"`
	BackoffBase    time.Duration `json:"backoff_base" env:"AI_BACKOFF_BASE" default:"2s"`
	BackoffCap     time.Duration `json:"backoff_cap" env:"AI_BACKOFF_CAP" default:"10s"`
}

type RateLimitConfig struct {
	FeedFetchInterval time.Duration `json:"feed_fetch_interval" env:"RATE_LIMIT_FEED_FETCH_INTERVAL" default:"1s"`
}

type CacheConfig struct {
	DailyBriefExpiry time.Duration `json:"daily_brief_expiry" env:"CACHE_DAILY_BRIEF_EXPIRY" default:"6h"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"json"`
}

type HTTPConfig struct {
	ClientTimeout   time.Duration `json:"client_timeout" env:"HTTP_CLIENT_TIMEOUT" default:"30s"`
	DialTimeout     time.Duration `json:"dial_timeout" env:"HTTP_DIAL_TIMEOUT" default:"10s"`
	IdleConnTimeout time.Duration `json:"idle_conn_timeout" env:"HTTP_IDLE_CONN_TIMEOUT" default:"90s"`
}

// NewConfig loads configuration from environment variables with fallback to
// default values.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Load is an alias for NewConfig.
func Load() (*Config, error) {
	return NewConfig()
}
