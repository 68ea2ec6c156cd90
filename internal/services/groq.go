package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"alfredoptarigan/smart-ats/internal/config"
)

type groqClient struct {
	http  *resty.Client
	model string
	log   *slog.Logger
}

// NewGroqClient talks to an OpenAI-compatible chat completions endpoint.
func NewGroqClient(cfg config.LLMConfig, log *slog.Logger) CompletionClient {
	if log == nil {
		log = slog.Default()
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	return &groqClient{
		http:  client,
		model: cfg.Model,
		log:   log.With("provider", config.ProviderGroq, "model", cfg.Model),
	}
}

func (g *groqClient) Provider() string { return config.ProviderGroq }

func (g *groqClient) Model() string { return g.model }

func (g *groqClient) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	resp, err := g.http.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model": g.model,
			"messages": []map[string]string{
				{"role": "user", "content": prompt},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("groq request failed: %w", err)
	}

	g.log.Debug("groq request finished", "status", resp.StatusCode(), "took", time.Since(start))

	if !resp.IsSuccess() {
		return "", &CompletionError{
			Provider:   config.ProviderGroq,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	content := gjson.Get(resp.String(), "choices.0.message.content")
	if !content.Exists() {
		return "", fmt.Errorf("no choices in groq response")
	}

	return content.String(), nil
}
