package ai

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const (
	openAIBaseURL      = "https://api.openai.com"
	openAIDefaultModel = "gpt-4o-mini"
)

type openAIProvider struct {
	client    *resty.Client
	model     string
	maxTokens int
}

type openAIRequest struct {
	Model     string          `json:"model"`
	Messages  []openAIMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func newOpenAI(cfg Config) *openAIProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = openAIBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openAIDefaultModel
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(cfg.Timeout)
	client.SetAuthToken(cfg.APIKey)

	return &openAIProvider{client: client, model: model, maxTokens: cfg.MaxTokens}
}

func (p *openAIProvider) Name() string { return "openai" }

func (p *openAIProvider) Complete(ctx context.Context, prompt string) (string, error) {
	var result openAIResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(openAIRequest{
			Model:     p.model,
			Messages:  []openAIMessage{{Role: "user", Content: prompt}},
			MaxTokens: p.maxTokens,
		}).
		SetResult(&result).
		SetError(&result).
		Post("/v1/chat/completions")
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}

	if resp.IsError() {
		msg := resp.Status()
		if result.Error != nil && result.Error.Message != "" {
			msg = result.Error.Message
		}
		return "", fmt.Errorf("openai API error: %s", msg)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return result.Choices[0].Message.Content, nil
}
