// Package llm provides optional LLM enrichment for the career assistant.
// Providers speak the OpenAI-compatible chat completions protocol; a
// multi-provider client rotates between them on failure. The assistant
// treats all of this as best effort and falls back to its template
// responses when no provider answers.
package llm

import (
	"context"
	"time"
)

// Provider is a single LLM backend.
type Provider interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Name() string
	Close() error
}

// Config for an individual provider client.
type Config struct {
	APIKey     string
	ModelName  string
	MaxRetries int
	RetryDelay time.Duration
}

func (c *Config) applyDefaults(defaultModel string) {
	if c.ModelName == "" {
		c.ModelName = defaultModel
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = 3
	}
	if c.RetryDelay == 0 {
		c.RetryDelay = 2 * time.Second
	}
}

// SystemPrompt frames every completion request sent by the assistant.
const SystemPrompt = `You are PersonaPath, an internal career advisor for employees. ` +
	`Answer career questions concisely using the provided role information. ` +
	`If you lack specific internal data, give general career guidance and ` +
	`recommend the employee contact HR for specifics. Do not invent salary figures.`
