package config

import (
	"context"

	"github.com/rs/zerolog"

	llmgemini "github.com/svkul/docguru-back/llm/gemini"
)

// NewGeminiClient creates a new Gemini provider from the configuration.
func NewGeminiClient(ctx context.Context, cfg *ServerConfig, logger zerolog.Logger) (*llmgemini.Client, error) {
	return llmgemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model, logger)
}
