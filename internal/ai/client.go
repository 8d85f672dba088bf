// Package ai talks to an OpenAI-style chat completion API to generate
// financial advice. Callers are expected to degrade to the local advisor
// knowledge base when a call fails.
package ai

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"
)

// ErrNotConfigured is returned when no API key is set. The chat endpoint
// treats it like any other failure and serves the local fallback.
var ErrNotConfigured = errors.New("no AI API key is configured")

// Client generates a chat completion for a user message.
type Client interface {
	Advise(ctx context.Context, systemPrompt, message string) (string, error)
}

// Config holds the settings for the chat completion API.
type Config struct {
	APIKey      string
	Model       string        // defaults to gpt-4o-mini
	BaseURL     string        // defaults to the OpenAI API
	Temperature float64       // defaults to 0.3
	MaxTokens   int           // defaults to 500
	Timeout     time.Duration // defaults to 30s
}

// FromEnv reads the client configuration from the environment.
func FromEnv() Config {
	temperature, _ := strconv.ParseFloat(os.Getenv("OPENAI_TEMPERATURE"), 64)

	return Config{
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		Model:       os.Getenv("OPENAI_MODEL"),
		BaseURL:     os.Getenv("OPENAI_BASE_URL"),
		Temperature: temperature,
	}
}
