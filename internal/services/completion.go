package services

import (
	"context"
	"fmt"
	"log/slog"

	"alfredoptarigan/smart-ats/internal/config"
)

// CompletionClient sends one prompt and returns the model's text unmodified.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Provider() string
	Model() string
}

// CompletionError is a non-2xx answer from a completion API.
type CompletionError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("%s API returned status %d: %s", e.Provider, e.StatusCode, truncate(e.Body, 200))
}

// NewCompletionClient builds the client for the configured provider. It is
// called once at startup.
func NewCompletionClient(ctx context.Context, cfg config.LLMConfig, log *slog.Logger) (CompletionClient, error) {
	switch cfg.Provider {
	case config.ProviderGroq:
		return NewGroqClient(cfg, log), nil
	case config.ProviderGemini:
		return NewGeminiClient(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
