package llm

import (
	"context"
)

// Provider is the provider-neutral interface every AI backend adapter must
// satisfy. Implementations build provider-specific prompts, make exactly one
// network call per operation, and parse the response into the shared result
// types.
//
// Two disjoint failure classes apply to both operations:
//
//   - Model-quality failure (empty, unparseable, or schema-invalid model
//     output) is recovered inside the adapter and surfaces as the documented
//     safe default, never as an error.
//   - Infrastructure failure (network error, non-2xx, SDK-level error) is
//     returned as an error that wraps the SDK error, so that Classify can
//     probe it for a status code and message.
type Provider interface {
	// Name returns the provider identifier, e.g. "openai" or "gemini".
	// Used for registry lookup, logging, and the error envelope.
	Name() string

	// RecommendJournals asks the backend for exactly 3 publication venues
	// suited to the document text. The text is truncated to
	// RecommendCharBudget before prompt construction. Returns an empty slice
	// when the model output cannot be parsed.
	RecommendJournals(ctx context.Context, documentText string) ([]Journal, error)

	// FormatArticleForTemplate asks the backend to reformat the article to
	// the guidelines registered for templateID. The text is truncated to
	// FormatCharBudget. Which union variant comes back depends on the
	// backend; the safe default on unparseable output is variant-specific
	// (empty structure, or the original text unchanged).
	FormatArticleForTemplate(ctx context.Context, templateID, articleText string) (*FormattedArticle, error)
}
