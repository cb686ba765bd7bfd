package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"personapath/internal/config"

	"go.uber.org/zap"
)

// MultiProviderClient manages multiple LLM providers with fallback.
type MultiProviderClient struct {
	providers    []*RateLimitedProvider
	currentIndex int
	mu           sync.RWMutex
	logger       *zap.Logger
	failureCount map[int]int
	maxFailures  int
}

// NewMultiProviderClient creates a client over the configured providers.
// Returns nil (not an error) when no providers are configured, so callers
// can treat enrichment as disabled.
func NewMultiProviderClient(cfgs []config.ProviderConfig, maxFailures int, logger *zap.Logger) (*MultiProviderClient, error) {
	if len(cfgs) == 0 {
		return nil, nil
	}

	if maxFailures == 0 {
		maxFailures = 3
	}

	providers := make([]*RateLimitedProvider, 0, len(cfgs))

	for i, pc := range cfgs {
		var provider Provider
		var err error

		clientCfg := Config{
			APIKey:     pc.APIKey,
			ModelName:  pc.ModelName,
			MaxRetries: pc.MaxRetries,
			RetryDelay: pc.RetryDelay.Std(),
		}

		switch pc.Type {
		case "groq":
			provider, err = NewGroqClient(clientCfg, logger)
		case "openrouter":
			provider, err = NewOpenRouterClient(clientCfg, logger)
		default:
			logger.Warn("Unknown provider type, skipping",
				zap.String("type", pc.Type),
				zap.Int("index", i))
			continue
		}

		if err != nil {
			logger.Error("Failed to create provider",
				zap.String("type", pc.Type),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}

		rateLimit := pc.RequestsPerMinute
		if rateLimit == 0 {
			rateLimit = 8 // Conservative default for free tier
		}

		providers = append(providers, NewRateLimitedProvider(provider, rateLimit, logger))

		logger.Info("Provider initialized",
			zap.String("type", pc.Type),
			zap.String("model", pc.ModelName),
			zap.Int("rate_limit", rateLimit))
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers could be initialized")
	}

	return &MultiProviderClient{
		providers:    providers,
		logger:       logger,
		failureCount: make(map[int]int),
		maxFailures:  maxFailures,
	}, nil
}

func (c *MultiProviderClient) getCurrentProvider() (*RateLimitedProvider, int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.providers[c.currentIndex], c.currentIndex
}

func (c *MultiProviderClient) switchToNextProvider() {
	c.mu.Lock()
	defer c.mu.Unlock()

	oldIndex := c.currentIndex
	c.currentIndex = (c.currentIndex + 1) % len(c.providers)

	c.logger.Info("Switching provider",
		zap.Int("from_index", oldIndex),
		zap.Int("to_index", c.currentIndex))
}

// recordFailure reports whether the provider hit the failure threshold.
func (c *MultiProviderClient) recordFailure(providerIndex int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.failureCount[providerIndex]++
	if c.failureCount[providerIndex] >= c.maxFailures {
		c.logger.Warn("Provider reached max failures",
			zap.Int("provider_index", providerIndex),
			zap.Int("failures", c.failureCount[providerIndex]))
		return true
	}
	return false
}

func (c *MultiProviderClient) resetFailureCount(providerIndex int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failureCount[providerIndex] = 0
}

// Complete tries the current provider and rotates to the next one on
// repeated failure or rate limiting.
func (c *MultiProviderClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	for attempts := 0; attempts < len(c.providers); attempts++ {
		provider, providerIndex := c.getCurrentProvider()

		result, err := provider.Complete(ctx, systemPrompt, userPrompt)
		if err == nil {
			c.resetFailureCount(providerIndex)
			return result, nil
		}

		c.logger.Error("Provider failed",
			zap.String("provider", provider.Name()),
			zap.Error(err))

		shouldSwitch := c.recordFailure(providerIndex)
		if shouldSwitch || isRateLimitError(err) {
			c.switchToNextProvider()
		}
	}

	return "", fmt.Errorf("all providers failed")
}

// Close closes all providers.
func (c *MultiProviderClient) Close() error {
	var lastErr error
	for i, provider := range c.providers {
		if err := provider.Close(); err != nil {
			c.logger.Error("Failed to close provider", zap.Int("index", i), zap.Error(err))
			lastErr = err
		}
	}
	return lastErr
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "429") ||
		strings.Contains(s, "quota") ||
		strings.Contains(s, "rate limit")
}
