package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// OpenAIConfig represents configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey       string `yaml:"api_key,omitempty"`      // OpenAI API key
	BaseURL      string `yaml:"base_url,omitempty"`     // Custom base URL (default: official API)
	Model        string `yaml:"model,omitempty"`        // Default model name
	Organization string `yaml:"organization,omitempty"` // Organization ID
}

// AnthropicConfig represents configuration for the Claude provider.
type AnthropicConfig struct {
	APIKey string `yaml:"api_key,omitempty"` // Anthropic API key
	Model  string `yaml:"model,omitempty"`   // Default model name
}

// GeminiConfig represents configuration for the Gemini provider.
type GeminiConfig struct {
	APIKey  string `yaml:"api_key,omitempty"`  // Gemini API key
	BaseURL string `yaml:"base_url,omitempty"` // Custom base URL (default: official API)
	Model   string `yaml:"model,omitempty"`    // Default model name
}

// ServerConfig represents configuration for the docguru backend.
type ServerConfig struct {
	Server struct {
		Addr           string   `yaml:"addr,omitempty"`            // Listen address (default: :3000)
		AllowedOrigins []string `yaml:"allowed_origins,omitempty"` // CORS origins
	} `yaml:"server,omitempty"`

	// LLM provider configurations
	OpenAI    OpenAIConfig    `yaml:"openai,omitempty"`
	Anthropic AnthropicConfig `yaml:"anthropic,omitempty"`
	Gemini    GeminiConfig    `yaml:"gemini,omitempty"`
}

// GetConfigPath returns the default config file path.
// Can be overridden via DOCGURU_CONFIG_PATH environment variable.
func GetConfigPath() string {
	if envPath := os.Getenv("DOCGURU_CONFIG_PATH"); envPath != "" {
		return expandPath(envPath)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./.docguru/config.yaml"
	}
	return filepath.Join(homeDir, ".docguru", "config.yaml")
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// LoadServerConfig loads configuration from the given YAML file path (if it
// exists), merged over the built-in defaults, with environment variables
// taking final precedence.
func LoadServerConfig(path string) (*ServerConfig, error) {
	// Step 1: Set defaults
	cfg := ServerConfig{
		OpenAI: OpenAIConfig{
			BaseURL: "https://api.openai.com/v1",
		},
	}
	cfg.Server.Addr = ":3000"
	cfg.Server.AllowedOrigins = []string{"http://localhost:5173"}

	// Step 2: Merge config file onto defaults (if it exists)
	expandedPath := expandPath(path)
	if _, err := os.Stat(expandedPath); err == nil {
		fileYAML, err := os.ReadFile(expandedPath) //#nosec 304 -- intentional file read for config
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", expandedPath, err)
		}

		var fileConfig ServerConfig
		if err := yaml.Unmarshal(fileYAML, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}

		if err := mergo.Merge(&cfg, fileConfig, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge config file: %w", err)
		}
	}

	// Step 3: Environment variable overrides
	applyEnvOverrides(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *ServerConfig) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Addr = ":" + v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.OpenAI.BaseURL = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAI.Model = v
	}
	if v := os.Getenv("OPENAI_ORG_ID"); v != "" {
		cfg.OpenAI.Organization = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.Anthropic.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_BASE_URL"); v != "" {
		cfg.Gemini.BaseURL = v
	}
}

// Validate checks that every required credential is present. A missing
// credential for any of the three providers is a fatal startup condition:
// the provider set is closed and each one must be callable.
func (c *ServerConfig) Validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is not set")
	}
	if c.Anthropic.APIKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY is not set")
	}
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}
	return nil
}
