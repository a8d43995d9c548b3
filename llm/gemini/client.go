// Package gemini implements the llm.Provider interface on top of the Google
// GenAI API.
package gemini

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/svkul/docguru-back/llm"
)

const defaultModel = "gemini-3-flash-preview"

// Client implements llm.Provider for Gemini.
type Client struct {
	client *genai.Client
	model  string
	logger zerolog.Logger
}

// NewClient creates a new Gemini-backed provider.
// If apiKey is empty, it will return an error.
// If baseURL is empty, it will use the default Gemini API endpoint.
// If model is empty, it will use the package default.
func NewClient(ctx context.Context, apiKey, baseURL, model string, logger zerolog.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	if model == "" {
		model = defaultModel
	}

	config := &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	}
	if baseURL != "" {
		config.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
		logger: logger.With().Str("provider", llm.ProviderGemini).Logger(),
	}, nil
}

// Name implements llm.Provider.
func (c *Client) Name() string {
	return llm.ProviderGemini
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

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("Gemini API error: %w", err)
	}

	if raw == "" {
		c.logger.Warn().Msg("Gemini returned empty response")
		return []llm.Journal{}, nil
	}

	journals, ok := llm.DecodeJournals(raw)
	if !ok {
		c.logger.Warn().Msg("Gemini returned invalid journals JSON")
		return []llm.Journal{}, nil
	}
	return journals, nil
}

// FormatArticleForTemplate implements llm.Provider. Gemini produces the
// whole-text rewrite variant. On empty or invalid model output the result
// carries the original article text unchanged: silently returning nothing
// would destroy the caller's document, whereas the input text is a safe
// no-op.
func (c *Client) FormatArticleForTemplate(ctx context.Context, templateID, articleText string) (*llm.FormattedArticle, error) {
	guidelines := llm.GetGuidelines(templateID)

	prompt := fmt.Sprintf(`You are a journal formatting assistant. Rewrite the article to comply with the journal guidelines.
- Apply formatting, structure, and citation style rules from the guidelines.
- Do NOT invent sources, data, or claims. If information is missing, leave it as-is.
- Length: keep approximately the same; do not force word-count changes.
- Return STRICT JSON only, matching this schema (no markdown or extra text):
{
  "updatedArticleText": "full rewritten article text",
  "changeSummary": "short bullet-style summary of main changes (optional)",
  "warnings": ["issues or missing info you could not resolve (optional)"]
}

Article:
%s

Journal Guidelines:
%s
`, llm.Truncate(articleText, llm.FormatCharBudget), guidelines)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("Gemini API error: %w", err)
	}

	rewrite, ok := llm.DecodeRewrittenArticle(raw)
	if !ok {
		c.logger.Warn().Msg("Gemini returned empty or invalid rewrite JSON")
		rewrite = &llm.RewrittenArticle{
			UpdatedArticleText: articleText,
			ChangeSummary:      "No changes parsed from model response.",
			Warnings:           []string{"Model returned empty or invalid JSON."},
		}
	}
	return llm.NewRewrittenArticle(rewrite), nil
}

// generate issues a single GenerateContent call requesting a JSON response
// and returns the text of the first candidate part. No retry.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(prompt)}, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 {
		return "", nil
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", nil
	}
	return candidate.Content.Parts[0].Text, nil
}
