// Package document implements the orchestration layer: it selects a provider
// adapter for each request, dispatches to it, normalizes its failures into
// the uniform error envelope, and derives the caller-facing result shapes.
package document

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/svkul/docguru-back/llm"
)

// FileName is the suggested filename for every generated document.
const FileName = "formatted.docx"

// AnalyzeResult is the response shape of an analyze call.
type AnalyzeResult struct {
	Journals []llm.Journal `json:"journals"`
}

// FormatResult is the response shape of a generate-by-template call.
type FormatResult struct {
	FormattedDocument string `json:"formattedDocument"`
}

// DocumentResult carries the flat text ready for binary encoding plus the
// suggested filename.
type DocumentResult struct {
	Content  string
	FileName string
}

// Service routes each request to a provider adapter. It holds no per-request
// state; every call is independently parameterized by an optional provider
// hint.
type Service struct {
	registry *llm.Registry
	logger   zerolog.Logger
}

// NewService creates a Service dispatching over the given registry.
func NewService(registry *llm.Registry, logger zerolog.Logger) *Service {
	return &Service{
		registry: registry,
		logger:   logger.With().Str("component", "document-service").Logger(),
	}
}

// ResolveProvider maps an optional caller hint to one of the three provider
// identifiers, substituting the default for anything unrecognized.
func (s *Service) ResolveProvider(hint string) string {
	return llm.ResolveProviderName(hint)
}

// Analyze asks the resolved provider for journal recommendations and returns
// them unchanged. Adapter failures come back as an *llm.Error envelope.
func (s *Service) Analyze(ctx context.Context, documentContent, providerHint string) (*AnalyzeResult, error) {
	provider, err := s.resolve(providerHint)
	if err != nil {
		return nil, err
	}

	journals, err := provider.RecommendJournals(ctx, documentContent)
	if err != nil {
		return nil, s.classify(provider.Name(), "analyze", err)
	}
	if journals == nil {
		journals = []llm.Journal{}
	}
	return &AnalyzeResult{Journals: journals}, nil
}

// FormatByTemplate formats the document for the given template and
// serializes the result to a single caller-facing string: the rewritten text
// for the rewrite variant, an indented JSON rendering for the structured
// variant.
func (s *Service) FormatByTemplate(ctx context.Context, documentContent, templateID, providerHint string) (*FormatResult, error) {
	article, name, err := s.format(ctx, documentContent, templateID, providerHint)
	if err != nil {
		return nil, err
	}

	formatted := article.FlatText()
	if formatted == "" {
		s.logger.Warn().Str("provider", name).Msg("formatted article carried no payload, returning original text")
		formatted = documentContent
	}
	return &FormatResult{FormattedDocument: formatted}, nil
}

// FormatByTemplateDocument is FormatByTemplate resolved all the way down to
// the flat text the document encoder needs, with the original text as the
// ultimate fallback, plus a fixed suggested filename.
func (s *Service) FormatByTemplateDocument(ctx context.Context, documentContent, templateID, providerHint string) (*DocumentResult, error) {
	article, _, err := s.format(ctx, documentContent, templateID, providerHint)
	if err != nil {
		return nil, err
	}

	content := article.FlatText()
	if content == "" {
		content = documentContent
	}
	return &DocumentResult{Content: content, FileName: FileName}, nil
}

func (s *Service) format(ctx context.Context, documentContent, templateID, providerHint string) (*llm.FormattedArticle, string, error) {
	provider, err := s.resolve(providerHint)
	if err != nil {
		return nil, "", err
	}

	article, err := provider.FormatArticleForTemplate(ctx, templateID, documentContent)
	if err != nil {
		return nil, "", s.classify(provider.Name(), "format", err)
	}
	return article, provider.Name(), nil
}

func (s *Service) resolve(hint string) (llm.Provider, error) {
	provider, err := s.registry.Resolve(hint)
	if err != nil {
		return nil, s.classify(llm.ResolveProviderName(hint), "resolve", err)
	}
	return provider, nil
}

func (s *Service) classify(provider, operation string, err error) *llm.Error {
	envelope := llm.Classify(provider, err)
	s.logger.Error().
		Err(err).
		Str("provider", provider).
		Str("operation", operation).
		Int("status", envelope.StatusCode).
		Msg("provider request failed")
	return envelope
}
