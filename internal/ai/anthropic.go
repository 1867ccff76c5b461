package ai

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const (
	anthropicBaseURL      = "https://api.anthropic.com"
	anthropicDefaultModel = "claude-3-5-sonnet-20241022"
	anthropicVersion      = "2023-06-01"
)

type anthropicProvider struct {
	client    *resty.Client
	model     string
	maxTokens int
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func newAnthropic(cfg Config) *anthropicProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = anthropicBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = anthropicDefaultModel
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(cfg.Timeout)
	client.SetHeader("x-api-key", cfg.APIKey)
	client.SetHeader("anthropic-version", anthropicVersion)

	return &anthropicProvider{client: client, model: model, maxTokens: cfg.MaxTokens}
}

func (p *anthropicProvider) Name() string { return "anthropic" }

func (p *anthropicProvider) Complete(ctx context.Context, prompt string) (string, error) {
	var result anthropicResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(anthropicRequest{
			Model:     p.model,
			MaxTokens: p.maxTokens,
			Messages:  []anthropicMessage{{Role: "user", Content: prompt}},
		}).
		SetResult(&result).
		SetError(&result).
		Post("/v1/messages")
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}

	if resp.IsError() {
		msg := resp.Status()
		if result.Error != nil && result.Error.Message != "" {
			msg = result.Error.Message
		}
		return "", fmt.Errorf("anthropic API error: %s", msg)
	}

	for _, block := range result.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("anthropic returned no text content")
}
