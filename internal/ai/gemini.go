package ai

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com"
	geminiDefaultModel = "gemini-1.5-flash"
)

type geminiProvider struct {
	client    *resty.Client
	model     string
	maxTokens int
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func newGemini(cfg Config) *geminiProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = geminiBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = geminiDefaultModel
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(cfg.Timeout)
	client.SetQueryParam("key", cfg.APIKey)

	return &geminiProvider{client: client, model: model, maxTokens: cfg.MaxTokens}
}

func (p *geminiProvider) Name() string { return "gemini" }

func (p *geminiProvider) Complete(ctx context.Context, prompt string) (string, error) {
	var result geminiResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(geminiRequest{
			Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
			GenerationConfig: geminiGenConfig{MaxOutputTokens: p.maxTokens},
		}).
		SetResult(&result).
		SetError(&result).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", p.model))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	if resp.IsError() {
		msg := resp.Status()
		if result.Error != nil && result.Error.Message != "" {
			msg = result.Error.Message
		}
		return "", fmt.Errorf("gemini API error: %s", msg)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}
