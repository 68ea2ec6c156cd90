package services

import (
	"context"
	"fmt"

	"alfredoptarigan/smart-ats/internal/models"
)

// AnalysisClient turns an AnalysisRequest into one completion call.
type AnalysisClient struct {
	prompts    *PromptBuilder
	completion CompletionClient
}

func NewAnalysisClient(prompts *PromptBuilder, completion CompletionClient) *AnalysisClient {
	return &AnalysisClient{prompts: prompts, completion: completion}
}

// Analyze returns the model's raw text. Failures are not retried.
func (c *AnalysisClient) Analyze(ctx context.Context, req models.AnalysisRequest) (string, error) {
	prompt := c.prompts.BuildATSPrompt(req.JobDescription, req.ResumeText)

	raw, err := c.completion.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}

	return raw, nil
}

func (c *AnalysisClient) Provider() string { return c.completion.Provider() }

func (c *AnalysisClient) Model() string { return c.completion.Model() }
