package config

import (
	"github.com/rs/zerolog"

	llmanthropic "github.com/svkul/docguru-back/llm/anthropic"
)

// NewAnthropicClient creates a new Claude provider from the configuration.
func NewAnthropicClient(cfg *ServerConfig, logger zerolog.Logger) (*llmanthropic.Client, error) {
	return llmanthropic.NewClient(cfg.Anthropic.APIKey, cfg.Anthropic.Model, logger)
}
