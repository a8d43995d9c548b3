package config

import (
	"github.com/rs/zerolog"

	llmopenai "github.com/svkul/docguru-back/llm/openai"
)

// NewOpenAIClient creates a new OpenAI provider from the configuration.
func NewOpenAIClient(cfg *ServerConfig, logger zerolog.Logger) (*llmopenai.Client, error) {
	return llmopenai.NewClient(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.BaseURL,
		cfg.OpenAI.Model,
		cfg.OpenAI.Organization,
		logger,
	)
}
