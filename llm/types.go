package llm

import (
	"encoding/json"
	"unicode/utf8"
)

// Character budgets applied to document text before it is embedded in a
// prompt. Truncation is a hard character cut, not token-aware: content past
// the budget is invisible to the model. Formatting gets a larger budget than
// recommendation because it needs the article body, not just its topic.
const (
	RecommendCharBudget = 6000
	FormatCharBudget    = 12000
)

// Journal represents a single recommended publication venue, produced fresh
// from a parsed provider response for each analyze call.
type Journal struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Reason      string `json:"reason"`
	Description string `json:"description"`
	TemplateID  string `json:"templateId"`
}

// FormattedArticleType represents which result shape a provider produced.
type FormattedArticleType string

const (
	FormattedArticleTypeStructured FormattedArticleType = "structured"
	FormattedArticleTypeRewrite    FormattedArticleType = "rewrite"
)

// ArticleSection is one heading+content pair of a structured result.
type ArticleSection struct {
	Heading string `json:"heading"`
	Content string `json:"content"`
}

// StructuredArticle is the structured-sections result variant.
type StructuredArticle struct {
	Title    string           `json:"title"`
	Sections []ArticleSection `json:"sections"`
}

// RewrittenArticle is the whole-text rewrite result variant.
type RewrittenArticle struct {
	UpdatedArticleText string   `json:"updatedArticleText"`
	ChangeSummary      string   `json:"changeSummary,omitempty"`
	Warnings           []string `json:"warnings,omitempty"`
}

// FormattedArticle represents a single formatting result. It is a tagged
// union: exactly one of Structured or Rewrite is set, according to Type.
type FormattedArticle struct {
	Type       FormattedArticleType
	Structured *StructuredArticle
	Rewrite    *RewrittenArticle
}

// NewStructuredArticle wraps a structured result in the union.
func NewStructuredArticle(s *StructuredArticle) *FormattedArticle {
	return &FormattedArticle{
		Type:       FormattedArticleTypeStructured,
		Structured: s,
	}
}

// NewRewrittenArticle wraps a rewrite result in the union.
func NewRewrittenArticle(r *RewrittenArticle) *FormattedArticle {
	return &FormattedArticle{
		Type:    FormattedArticleTypeRewrite,
		Rewrite: r,
	}
}

// FlatText derives the single flat string suitable for document encoding.
// For the rewrite variant that is the rewritten article text; for the
// structured variant it is an indented JSON serialization of the structure.
// The empty string means the variant carried no usable payload and the
// caller must fall back to its own original text.
func (a *FormattedArticle) FlatText() string {
	if a == nil {
		return ""
	}
	switch a.Type {
	case FormattedArticleTypeRewrite:
		if a.Rewrite != nil {
			return a.Rewrite.UpdatedArticleText
		}
	case FormattedArticleTypeStructured:
		if a.Structured != nil {
			if b, err := json.MarshalIndent(a.Structured, "", "  "); err == nil {
				return string(b)
			}
		}
	}
	return ""
}

// Truncate cuts s to at most n bytes. The cut is deliberately blunt: it is a
// cost/latency bound, not a summarization step, and may split a word. It
// never splits a rune, backing up to the previous boundary so the result
// stays valid UTF-8.
func Truncate(s string, n int) string {
	if n < 0 || len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
