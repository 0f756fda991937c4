package config

import (
	"fmt"
	"strings"
	"time"
)

// validateConfig validates the loaded configuration values
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateIngestConfig(&config.Ingest); err != nil {
		return fmt.Errorf("ingest config validation failed: %w", err)
	}

	if err := validateAIConfig(&config.AI); err != nil {
		return fmt.Errorf("AI config validation failed: %w", err)
	}

	if err := validateRateLimitConfig(&config.RateLimit); err != nil {
		return fmt.Errorf("rate limit config validation failed: %w", err)
	}

	if err := validateCacheConfig(&config.Cache); err != nil {
		return fmt.Errorf("cache config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if err := validateHTTPConfig(&config.HTTP); err != nil {
		return fmt.Errorf("HTTP config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateIngestConfig(config *IngestConfig) error {
	if config.StoreCapacity < 1 {
		return fmt.Errorf("store capacity must be at least 1, got %d", config.StoreCapacity)
	}

	if config.MaxConcurrency < 1 {
		return fmt.Errorf("max concurrency must be at least 1, got %d", config.MaxConcurrency)
	}

	if config.Interval < time.Minute {
		return fmt.Errorf("ingest interval must be at least 1 minute, got %v", config.Interval)
	}

	return nil
}

func validateAIConfig(config *AIConfig) error {
	if config.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %v", config.RequestTimeout)
	}

	if config.MaxRetries < 0 || config.MaxRetries > 10 {
		return fmt.Errorf("max retries must be between 0 and 10, got %d", config.MaxRetries)
	}

	if config.BackoffBase <= 0 {
		return fmt.Errorf("backoff base must be positive, got %v", config.BackoffBase)
	}

	if config.BackoffCap < config.BackoffBase {
		return fmt.Errorf("backoff cap must be >= backoff base, got cap: %v, base: %v",
			config.BackoffCap, config.BackoffBase)
	}

	return nil
}

func validateRateLimitConfig(config *RateLimitConfig) error {
	if config.FeedFetchInterval <= 0 {
		return fmt.Errorf("feed fetch interval must be positive, got %v", config.FeedFetchInterval)
	}

	return nil
}

func validateCacheConfig(config *CacheConfig) error {
	if config.DailyBriefExpiry <= 0 {
		return fmt.Errorf("daily brief expiry must be positive, got %v", config.DailyBriefExpiry)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	level := strings.ToLower(config.Level)

	valid := false
	for _, validLevel := range validLevels {
		if level == validLevel {
			valid = true
			break
		}
	}

	if !valid {
		return fmt.Errorf("log level must be one of: %s, got %s",
			strings.Join(validLevels, ", "), config.Level)
	}

	validFormats := []string{"json", "text"}
	format := strings.ToLower(config.Format)

	valid = false
	for _, validFormat := range validFormats {
		if format == validFormat {
			valid = true
			break
		}
	}

	if !valid {
		return fmt.Errorf("log format must be one of: %s, got %s",
			strings.Join(validFormats, ", "), config.Format)
	}

	return nil
}

func validateHTTPConfig(config *HTTPConfig) error {
	if config.ClientTimeout <= 0 {
		return fmt.Errorf("client timeout must be positive, got %v", config.ClientTimeout)
	}

	if config.DialTimeout <= 0 {
		return fmt.Errorf("dial timeout must be positive, got %v", config.DialTimeout)
	}

	if config.IdleConnTimeout <= 0 {
		return fmt.Errorf("idle connection timeout must be positive, got %v", config.IdleConnTimeout)
	}

	return nil
}
