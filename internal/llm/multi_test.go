package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"personapath/internal/config"
)

func TestNewMultiProviderClientNoProviders(t *testing.T) {
	client, err := NewMultiProviderClient(nil, 3, zap.NewNop())
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if client != nil {
		t.Error("expected nil client with no providers configured")
	}
}

func TestNewMultiProviderClientUnknownType(t *testing.T) {
	cfgs := []config.ProviderConfig{{Type: "carrier-pigeon", APIKey: "k"}}
	if _, err := NewMultiProviderClient(cfgs, 3, zap.NewNop()); err == nil {
		t.Error("expected error when every provider is skipped")
	}
}

func TestNewMultiProviderClientBuildsChain(t *testing.T) {
	cfgs := []config.ProviderConfig{
		{Type: "groq", APIKey: "key-a"},
		{Type: "openrouter", APIKey: "key-b"},
	}
	client, err := NewMultiProviderClient(cfgs, 0, zap.NewNop())
	if err != nil {
		t.Fatalf("NewMultiProviderClient: %v", err)
	}
	if len(client.providers) != 2 {
		t.Errorf("providers = %d, want 2", len(client.providers))
	}
	if client.maxFailures != 3 {
		t.Errorf("maxFailures = %d, want default 3", client.maxFailures)
	}
}

func TestIsRateLimitError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("connection refused"), false},
		{errors.New("unexpected status 429"), true},
		{errors.New("monthly quota exceeded"), true},
		{errors.New("rate limit hit, retry later"), true},
	}
	for _, tt := range tests {
		if got := isRateLimitError(tt.err); got != tt.want {
			t.Errorf("isRateLimitError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestSwitchToNextProviderWraps(t *testing.T) {
	cfgs := []config.ProviderConfig{
		{Type: "groq", APIKey: "key-a"},
		{Type: "openrouter", APIKey: "key-b"},
	}
	client, err := NewMultiProviderClient(cfgs, 3, zap.NewNop())
	if err != nil {
		t.Fatalf("NewMultiProviderClient: %v", err)
	}

	_, idx := client.getCurrentProvider()
	if idx != 0 {
		t.Fatalf("start index = %d", idx)
	}
	client.switchToNextProvider()
	if _, idx = client.getCurrentProvider(); idx != 1 {
		t.Errorf("index = %d, want 1", idx)
	}
	client.switchToNextProvider()
	if _, idx = client.getCurrentProvider(); idx != 0 {
		t.Errorf("index = %d, want wrap to 0", idx)
	}
}

func TestRecordFailureThreshold(t *testing.T) {
	cfgs := []config.ProviderConfig{{Type: "groq", APIKey: "key-a"}}
	client, err := NewMultiProviderClient(cfgs, 2, zap.NewNop())
	if err != nil {
		t.Fatalf("NewMultiProviderClient: %v", err)
	}

	if client.recordFailure(0) {
		t.Error("first failure should not hit threshold")
	}
	if !client.recordFailure(0) {
		t.Error("second failure should hit threshold")
	}
	client.resetFailureCount(0)
	if client.recordFailure(0) {
		t.Error("failure count was not reset")
	}
}

func TestRateLimiterAllowsBurstUpToLimit(t *testing.T) {
	rl := NewRateLimiter(5)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 5; i++ {
		if err := rl.Wait(ctx); err != nil {
			t.Fatalf("Wait %d: %v", i, err)
		}
	}
}

func TestRateLimiterHonorsCancellation(t *testing.T) {
	rl := NewRateLimiter(1)
	ctx := context.Background()
	if err := rl.Wait(ctx); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	if err := rl.Wait(cancelled); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
