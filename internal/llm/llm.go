package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pavelanni/diagnostic/internal/llm/prompts"
	"github.com/pavelanni/diagnostic/internal/model"
	"github.com/pavelanni/diagnostic/internal/results"
)

// adviceResult is the JSON object the model is asked to return.
type adviceResult struct {
	Note string `json:"note"`
}

// Client wraps an OpenAI-compatible API client.
type Client struct {
	api     *openai.Client
	model   string
	variant prompts.PromptVariant
}

// New creates a new LLM client. An unknown variant falls back to the standard prompt.
func New(baseURL, apiKey, modelName, variant string) (*Client, error) {
	if err := prompts.Load(prompts.FS); err != nil {
		return nil, fmt.Errorf("load prompts: %w", err)
	}
	v := prompts.PromptStandard
	if prompts.IsValidVariant(variant) {
		v = prompts.PromptVariant(variant)
	} else if variant != "" {
		slog.Warn("unknown prompt variant, using standard", "variant", variant)
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Client{
		api:     openai.NewClientWithConfig(config),
		model:   modelName,
		variant: v,
	}, nil
}

// StudyAdvice asks the model for a short coaching note on the student's results,
// written in the given language.
func (c *Client) StudyAdvice(ctx context.Context, name string, r model.TestResults, language string) (string, error) {
	data := prompts.NewAdviceData(name, r, results.RatingFor(r.Overall.Percentage), language)
	systemPrompt, err := prompts.BuildAdvicePrompt(c.variant, data)
	if err != nil {
		return "", fmt.Errorf("build advice prompt: %w", err)
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Write my coaching note."},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.5,
	})
	if err != nil {
		return "", fmt.Errorf("LLM API call: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("LLM returned no choices")
	}

	raw := resp.Choices[0].Message.Content
	slog.Debug("LLM response", "raw", raw)

	var result adviceResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return "", fmt.Errorf("parse LLM response: %w (raw: %s)", err, raw)
	}
	note := strings.TrimSpace(result.Note)
	if note == "" {
		return "", errors.New("LLM returned an empty note")
	}
	return note, nil
}

// Ping checks that the endpoint is reachable by listing its models.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.api.ListModels(ctx); err != nil {
		return fmt.Errorf("list models: %w", err)
	}
	return nil
}
