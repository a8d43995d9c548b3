// Package openai implements the llm.Provider interface on top of OpenAI's
// chat completion API.
package openai

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/svkul/docguru-back/llm"
)

const defaultModel = "gpt-5-mini"

// Client implements llm.Provider for OpenAI.
type Client struct {
	client *openai.Client
	model  string
	logger zerolog.Logger
}

// NewClient creates a new OpenAI-backed provider.
// If apiKey is empty, it will return an error.
// If baseURL is empty, it will use the default OpenAI API endpoint.
// If model is empty, it will use the package default.
func NewClient(apiKey, baseURL, model, organization string, logger zerolog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if organization != "" {
		config.OrgID = organization
	}
	if model == "" {
		model = defaultModel
	}

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
		logger: logger.With().Str("provider", llm.ProviderOpenAI).Logger(),
	}, nil
}

// Name implements llm.Provider.
func (c *Client) Name() string {
	return llm.ProviderOpenAI
}

// RecommendJournals implements llm.Provider.
func (c *Client) RecommendJournals(ctx context.Context, documentText string) ([]llm.Journal, error) {
	prompt := fmt.Sprintf(`Given the article text, recommend 3 journals.
Return STRICT JSON:
{
  "journals": [
    { "id": "1", "name": "Journal name", "reason": "why", "description": "A leading journal for scientific research", "templateId": "template-1" }
  ]
}

TEXT:
%s`, llm.Truncate(documentText, llm.RecommendCharBudget))

	raw, err := c.complete(ctx, "You are an academic publishing assistant.", prompt)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	journals, ok := llm.DecodeJournals(raw)
	if !ok {
		c.logger.Warn().Msg("OpenAI returned empty or invalid journals JSON")
		return []llm.Journal{}, nil
	}
	return journals, nil
}

// FormatArticleForTemplate implements llm.Provider. OpenAI produces the
// structured title+sections variant.
func (c *Client) FormatArticleForTemplate(ctx context.Context, templateID, articleText string) (*llm.FormattedArticle, error) {
	guidelines := llm.GetGuidelines(templateID)

	prompt := fmt.Sprintf(`Format the article for the journal below.

Return STRICT JSON:
{
  "title": "...",
  "sections": [
    { "heading": "Introduction", "content": "..." }
  ]
}

Journal: %s
Guidelines: %s

ARTICLE:
%s`, templateID, guidelines, llm.Truncate(articleText, llm.FormatCharBudget))

	raw, err := c.complete(ctx, "You are a scientific editor.", prompt)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	structured, ok := llm.DecodeStructuredArticle(raw)
	if !ok {
		c.logger.Warn().Msg("OpenAI returned empty or invalid article JSON")
		structured = &llm.StructuredArticle{Title: "", Sections: []llm.ArticleSection{}}
	}
	return llm.NewStructuredArticle(structured), nil
}

// complete issues a single chat completion in JSON mode and returns the raw
// text of the first choice. No retry.
func (c *Client) complete(ctx context.Context, system, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
