package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// OpenRouterClient calls the OpenRouter chat completions API.
type OpenRouterClient struct {
	apiKey     string
	baseURL    string
	modelName  string
	httpClient *http.Client
	logger     *zap.Logger
	maxRetries int
	retryDelay time.Duration
}

// NewOpenRouterClient creates a new OpenRouter client.
func NewOpenRouterClient(cfg Config, logger *zap.Logger) (*OpenRouterClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	cfg.applyDefaults("meta-llama/llama-3.3-70b-instruct:free")

	logger.Info("OpenRouter client initialized",
		zap.String("model", cfg.ModelName),
		zap.Int("max_retries", cfg.MaxRetries))

	return &OpenRouterClient{
		apiKey:     cfg.APIKey,
		baseURL:    "https://openrouter.ai/api/v1",
		modelName:  cfg.ModelName,
		httpClient: &http.Client{Timeout: 45 * time.Second},
		logger:     logger,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
	}, nil
}

func (c *OpenRouterClient) Name() string { return "openrouter" }

func (c *OpenRouterClient) Close() error { return nil }

// Complete sends a chat completion request, retrying on failure.
func (c *OpenRouterClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	headers := map[string]string{"X-Title": "PersonaPath"}
	return completeChat(ctx, c.httpClient, c.baseURL, c.apiKey, c.modelName, headers,
		systemPrompt, userPrompt, c.maxRetries, c.retryDelay, c.logger, "openrouter")
}
