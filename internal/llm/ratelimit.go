package llm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// RateLimiter implements token bucket rate limiting.
type RateLimiter struct {
	mu              sync.Mutex
	tokens          int
	maxTokens       int
	refillRate      time.Duration
	lastRefill      time.Time
	minuteResetTime time.Time
}

// NewRateLimiter creates a new rate limiter.
func NewRateLimiter(requestsPerMinute int) *RateLimiter {
	return &RateLimiter{
		tokens:          requestsPerMinute,
		maxTokens:       requestsPerMinute,
		refillRate:      time.Minute / time.Duration(requestsPerMinute),
		lastRefill:      time.Now(),
		minuteResetTime: time.Now().Add(time.Minute),
	}
}

// Wait blocks until a token is available.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Reset counter every minute
	now := time.Now()
	if now.After(rl.minuteResetTime) {
		rl.minuteResetTime = now.Add(time.Minute)
		rl.tokens = rl.maxTokens
		rl.lastRefill = now
	}

	// Refill tokens based on time passed
	elapsed := now.Sub(rl.lastRefill)
	tokensToAdd := int(elapsed / rl.refillRate)
	if tokensToAdd > 0 {
		rl.tokens += tokensToAdd
		if rl.tokens > rl.maxTokens {
			rl.tokens = rl.maxTokens
		}
		rl.lastRefill = now
	}

	// If no tokens available, wait
	if rl.tokens <= 0 {
		waitTime := rl.refillRate
		rl.mu.Unlock()

		select {
		case <-time.After(waitTime):
			rl.mu.Lock()
			rl.tokens = 1
			rl.lastRefill = time.Now()
		case <-ctx.Done():
			rl.mu.Lock()
			return ctx.Err()
		}
	}

	// Consume a token
	rl.tokens--

	return nil
}

// RateLimitedProvider wraps a provider with rate limiting.
type RateLimitedProvider struct {
	provider Provider
	limiter  *RateLimiter
	logger   *zap.Logger
}

// NewRateLimitedProvider wraps a provider with rate limiting.
func NewRateLimitedProvider(provider Provider, requestsPerMinute int, logger *zap.Logger) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider: provider,
		limiter:  NewRateLimiter(requestsPerMinute),
		logger:   logger,
	}
}

func (p *RateLimitedProvider) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait cancelled: %w", err)
	}
	return p.provider.Complete(ctx, systemPrompt, userPrompt)
}

func (p *RateLimitedProvider) Name() string {
	return p.provider.Name()
}

func (p *RateLimitedProvider) Close() error {
	return p.provider.Close()
}
