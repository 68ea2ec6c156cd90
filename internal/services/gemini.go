package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/genai"

	"alfredoptarigan/smart-ats/internal/config"
)

type geminiClient struct {
	client *genai.Client
	model  string
	log    *slog.Logger
}

func NewGeminiClient(ctx context.Context, cfg config.LLMConfig, log *slog.Logger) (CompletionClient, error) {
	if log == nil {
		log = slog.Default()
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		client: client,
		model:  cfg.Model,
		log:    log.With("provider", config.ProviderGemini, "model", cfg.Model),
	}, nil
}

func (g *geminiClient) Provider() string { return config.ProviderGemini }

func (g *geminiClient) Model() string { return g.model }

// Complete uses the model's default generation parameters.
func (g *geminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	g.log.Debug("gemini request finished", "candidates", len(resp.Candidates), "took", time.Since(start))

	text := resp.Text()
	if text == "" && len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in gemini response")
	}

	return text, nil
}
