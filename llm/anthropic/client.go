// Package anthropic implements the llm.Provider interface on top of the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog"

	"github.com/svkul/docguru-back/llm"
)

const (
	defaultModel = "claude-sonnet-4-20250514"

	recommendMaxTokens = 2000
	formatMaxTokens    = 4000
)

// Client implements llm.Provider for Claude.
type Client struct {
	client *anthropic.Client
	model  string
	logger zerolog.Logger
}

// NewClient creates a new Claude-backed provider with the given API key.
func NewClient(apiKey, model string, logger zerolog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &Client{
		client: &client,
		model:  model,
		logger: logger.With().Str("provider", llm.ProviderClaude).Logger(),
	}, nil
}

// Name implements llm.Provider.
func (c *Client) Name() string {
	return llm.ProviderClaude
}

// RecommendJournals implements llm.Provider.
func (c *Client) RecommendJournals(ctx context.Context, documentText string) ([]llm.Journal, error) {
	prompt := fmt.Sprintf(`Based on this research article, recommend 3 suitable academic journals for publication. Consider the article's topic, methodology, and scope.

Article text:
%s

Return STRICT JSON only:
{
  "journals": [
    { "id": "1", "name": "Journal Name", "reason": "why it's suitable", "description": "short description", "templateId": "template-1" }
  ]
}`, llm.Truncate(documentText, llm.RecommendCharBudget))

	raw, err := c.complete(ctx, prompt, recommendMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("Claude API error: %w", err)
	}

	if raw == "" {
		c.logger.Warn().Msg("Claude returned empty response")
		return []llm.Journal{}, nil
	}

	journals, ok := llm.DecodeJournals(raw)
	if !ok {
		c.logger.Warn().Msg("Claude returned invalid journals JSON")
		return []llm.Journal{}, nil
	}
	return journals, nil
}

// FormatArticleForTemplate implements llm.Provider. Claude produces the
// structured title+sections variant.
func (c *Client) FormatArticleForTemplate(ctx context.Context, templateID, articleText string) (*llm.FormattedArticle, error) {
	guidelines := llm.GetGuidelines(templateID)

	prompt := fmt.Sprintf(`You are a scientific editor.

Restructure this article according to the journal's formatting guidelines and return ONLY a JSON object (no markdown, no explanation).

Article:
%s

Journal Guidelines:
%s

Return a JSON object with this structure:
{
  "title": "...",
  "sections": [
    { "heading": "Introduction", "content": "..." }
  ]
}`, llm.Truncate(articleText, llm.FormatCharBudget), guidelines)

	raw, err := c.complete(ctx, prompt, formatMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("Claude API error: %w", err)
	}

	structured, ok := llm.DecodeStructuredArticle(raw)
	if !ok {
		c.logger.Warn().Msg("Claude returned empty or invalid article JSON")
		structured = &llm.StructuredArticle{Title: "", Sections: []llm.ArticleSection{}}
	}
	return llm.NewStructuredArticle(structured), nil
}

// complete issues a single Messages API call and returns the concatenated
// text blocks of the response. No retry.
func (c *Client) complete(ctx context.Context, prompt string, maxTokens int64) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(0),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", err
	}

	var text strings.Builder
	for _, blockUnion := range message.Content {
		if block, ok := blockUnion.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(block.Text)
		}
	}
	return strings.TrimSpace(text.String()), nil
}
