package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/felixbraun/storeradar/internal/core/domain"
)

// Classifier maps free-text queries onto the closed StoreType set via a
// chat completion in JSON mode.
type Classifier struct {
	client *openai.Client
	model  string
}

func NewClassifier(apiKey, baseURL, model string) *Classifier {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Classifier{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *Classifier) Classify(ctx context.Context, text string) (domain.StoreType, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildClassificationPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: strings.ToLower(text)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("classify chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("classify: empty completion")
	}

	var result struct {
		Store string `json:"store"`
	}
	raw := extractJSONObject(resp.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return "", fmt.Errorf("parse classification json: %w", err)
	}

	storeType, ok := domain.ParseStoreType(result.Store)
	if !ok {
		return "", fmt.Errorf("classify: unknown store type %q", result.Store)
	}
	return storeType, nil
}

func extractJSONObject(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return raw
}
