// Package llm produces an optional narrative paragraph for snapshot
// exports. Snapshots work without it; any failure here degrades to an
// empty narrative.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"plotdash/internal/logger"
	"plotdash/internal/pipeline"
)

const systemPrompt = "You are a data analyst writing short dashboard commentary. " +
	"Given summary statistics and the headline insight for one dashboard, write " +
	"2-3 plain markdown sentences describing what the data shows. No headings, " +
	"no bullet lists, no invented numbers."

// OpenAIClient handles OpenAI API interactions
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// GenerateNarrative writes a short commentary for one dashboard's
// current result. dashboard is the dashboard name, summary the
// one-line insight shown on the page.
func (c *OpenAIClient) GenerateNarrative(ctx context.Context, dashboard, summary string, stats pipeline.Stats) (string, error) {
	if c.client == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	prompt, err := buildPrompt(dashboard, summary, stats)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   500,
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	narrative := resp.Choices[0].Message.Content
	logger.Debugf("Generated narrative with %d characters for %s", len(narrative), dashboard)
	return narrative, nil
}

func buildPrompt(dashboard, summary string, stats pipeline.Stats) (string, error) {
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return "", fmt.Errorf("failed to marshal stats: %w", err)
	}
	return fmt.Sprintf("Dashboard: %s\nHeadline: %s\nStatistics: %s\n", dashboard, summary, statsJSON), nil
}
