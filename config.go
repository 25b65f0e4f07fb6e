package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	providerOpenAI = "openai"
	providerGemini = "gemini"
)

// Config holds the service settings, read from the environment.
type Config struct {
	Port          string
	Provider      string
	Model         string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	GeminiAPIKey  string
	GCPProjectID  string
	GCPRegion     string
	FeedURL       string
	LogLevel      string
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() Config {
	return Config{
		Port:          getEnv("PORT", "3000"),
		Provider:      strings.ToLower(getEnv("LLM_PROVIDER", providerOpenAI)),
		Model:         os.Getenv("LLM_MODEL"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GCPProjectID:  os.Getenv("GCP_PROJECT_ID"),
		GCPRegion:     getEnv("GCP_REGION", defaultRegion),
		FeedURL:       getEnv("FEED_URL", defaultFeedURL),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

// Validate checks that the selected provider has a credential.
func (c Config) Validate() error {
	switch c.Provider {
	case providerOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for provider %q", c.Provider)
		}
	case providerGemini:
		if c.GeminiAPIKey == "" && c.GCPProjectID == "" {
			return fmt.Errorf("GEMINI_API_KEY or GCP_PROJECT_ID is required for provider %q", c.Provider)
		}
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q (want %q or %q)", c.Provider, providerOpenAI, providerGemini)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	return nil
}

// NewCompleter builds the completion client for the configured provider.
func (c Config) NewCompleter(ctx context.Context) (Completer, error) {
	switch c.Provider {
	case providerOpenAI:
		return NewOpenAIClient(c.OpenAIAPIKey, c.Model, c.OpenAIBaseURL)
	case providerGemini:
		return NewGeminiClient(ctx, GeminiConfig{
			APIKey:    c.GeminiAPIKey,
			ProjectID: c.GCPProjectID,
			Region:    c.GCPRegion,
			Model:     c.Model,
		})
	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER %q", c.Provider)
	}
}

// NewLogger builds a production zap logger at the configured level.
func (c Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
