// Package ai provides optional bring-your-own-key completion
// providers. The knowledge base is always the fallback; a provider
// error never surfaces to the student as a failure.
package ai

import (
	"context"
	"fmt"
	"os"
	"time"
)

// defaultTimeout bounds a single completion request.
const defaultTimeout = 30 * time.Second

// defaultMaxTokens bounds response length; answers are study notes,
// not essays.
const defaultMaxTokens = 500

// Provider returns a completion for a prompt.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config selects and configures a provider.
type Config struct {
	Provider  string // "openai", "anthropic", or "gemini"
	APIKey    string
	Model     string // provider default when empty
	BaseURL   string // provider default when empty
	MaxTokens int
	Timeout   time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxTokens <= 0 {
		c.MaxTokens = defaultMaxTokens
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c
}

// New creates the provider named by cfg.Provider.
func New(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing API key for provider %q", cfg.Provider)
	}

	cfg = cfg.withDefaults()

	switch cfg.Provider {
	case "openai":
		return newOpenAI(cfg), nil
	case "anthropic", "claude":
		return newAnthropic(cfg), nil
	case "gemini":
		return newGemini(cfg), nil
	default:
		return nil, fmt.Errorf("unknown AI provider %q (supported: openai, anthropic, gemini)", cfg.Provider)
	}
}

// FromEnv builds a provider from CYBUDDY_AI_PROVIDER and the matching
// *_API_KEY variable. Returns an error when no provider is configured.
func FromEnv() (Provider, error) {
	name := os.Getenv("CYBUDDY_AI_PROVIDER")
	if name == "" {
		return nil, fmt.Errorf("CYBUDDY_AI_PROVIDER is not set")
	}

	keyVars := map[string]string{
		"openai":    "OPENAI_API_KEY",
		"anthropic": "ANTHROPIC_API_KEY",
		"claude":    "ANTHROPIC_API_KEY",
		"gemini":    "GEMINI_API_KEY",
	}

	keyVar, ok := keyVars[name]
	if !ok {
		return nil, fmt.Errorf("unknown AI provider %q (supported: openai, anthropic, gemini)", name)
	}

	return New(Config{
		Provider: name,
		APIKey:   os.Getenv(keyVar),
		Model:    os.Getenv("CYBUDDY_AI_MODEL"),
	})
}

// StudyPrompt frames a classified query for a completion provider.
func StudyPrompt(command, topic string) string {
	return fmt.Sprintf(
		"You are CyBuddy, a helpful cybersecurity study companion. "+
			"You explain steps simply, provide safe defaults, and always suggest next actions. "+
			"You avoid destructive commands and emphasize documenting findings.\n\n"+
			"The student ran the %q command for: %s\n"+
			"Answer concisely for a beginner.", command, topic)
}
