package llm

import (
	"encoding/json"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Model output is free text that claims to be JSON. Each Decode helper
// parses it, validates it against a strict schema, and on any failure
// (empty text, invalid JSON, schema violation) reports ok=false instead of
// an error: malformed model output is a model-quality problem that callers
// recover from with a safe default, not an infrastructure failure.

var journalsSchema = jsonschema.MustCompileString("journals.json", `{
	"type": "object",
	"required": ["journals"],
	"properties": {
		"journals": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "name", "reason", "description", "templateId"],
				"properties": {
					"id": {"type": "string"},
					"name": {"type": "string"},
					"reason": {"type": "string"},
					"description": {"type": "string"},
					"templateId": {"type": "string"}
				}
			}
		}
	}
}`)

var structuredArticleSchema = jsonschema.MustCompileString("structured_article.json", `{
	"type": "object",
	"required": ["title", "sections"],
	"properties": {
		"title": {"type": "string"},
		"sections": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["heading", "content"],
				"properties": {
					"heading": {"type": "string"},
					"content": {"type": "string"}
				}
			}
		}
	}
}`)

var rewrittenArticleSchema = jsonschema.MustCompileString("rewritten_article.json", `{
	"type": "object",
	"required": ["updatedArticleText"],
	"properties": {
		"updatedArticleText": {"type": "string"},
		"changeSummary": {"type": "string"},
		"warnings": {
			"type": "array",
			"items": {"type": "string"}
		}
	}
}`)

// DecodeJournals parses raw model text as a {"journals": [...]} payload.
func DecodeJournals(raw string) ([]Journal, bool) {
	var payload struct {
		Journals []Journal `json:"journals"`
	}
	if !decodeValidated(raw, journalsSchema, &payload) {
		return nil, false
	}
	return payload.Journals, true
}

// DecodeStructuredArticle parses raw model text as a title+sections payload.
func DecodeStructuredArticle(raw string) (*StructuredArticle, bool) {
	var payload StructuredArticle
	if !decodeValidated(raw, structuredArticleSchema, &payload) {
		return nil, false
	}
	return &payload, true
}

// DecodeRewrittenArticle parses raw model text as a whole-text rewrite
// payload.
func DecodeRewrittenArticle(raw string) (*RewrittenArticle, bool) {
	var payload RewrittenArticle
	if !decodeValidated(raw, rewrittenArticleSchema, &payload) {
		return nil, false
	}
	return &payload, true
}

func decodeValidated(raw string, schema *jsonschema.Schema, out any) bool {
	text := trimCodeFences(raw)
	if text == "" {
		return false
	}

	var generic any
	if err := json.Unmarshal([]byte(text), &generic); err != nil {
		return false
	}
	if err := schema.Validate(generic); err != nil {
		return false
	}

	return json.Unmarshal([]byte(text), out) == nil
}

// trimCodeFences strips a surrounding markdown code fence. Models are told
// to return bare JSON but still wrap it in ```json fences often enough that
// refusing to parse the fenced form would discard valid output.
func trimCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
