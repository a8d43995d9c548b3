package llm

import (
	"testing"
)

const twoJournalsJSON = `{
  "journals": [
    { "id": "1", "name": "Nature Methods", "reason": "methodology focus", "description": "Methods journal", "templateId": "template-1" },
    { "id": "2", "name": "PLOS ONE", "reason": "broad scope", "description": "Open access megajournal", "templateId": "template-2" }
  ]
}`

func TestDecodeJournals_Valid(t *testing.T) {
	journals, ok := DecodeJournals(twoJournalsJSON)
	if !ok {
		t.Fatal("expected valid payload to decode")
	}
	if len(journals) != 2 {
		t.Fatalf("expected 2 journals, got %d", len(journals))
	}
	if journals[0].Name != "Nature Methods" || journals[1].Name != "PLOS ONE" {
		t.Errorf("journals out of order: %+v", journals)
	}
	if journals[0].TemplateID != "template-1" {
		t.Errorf("templateId not mapped: %+v", journals[0])
	}
}

func TestDecodeJournals_EmptyText(t *testing.T) {
	if _, ok := DecodeJournals(""); ok {
		t.Error("empty text should not decode")
	}
}

func TestDecodeJournals_InvalidJSON(t *testing.T) {
	if _, ok := DecodeJournals("{not json"); ok {
		t.Error("invalid JSON should not decode")
	}
}

func TestDecodeJournals_MissingRequiredField(t *testing.T) {
	payload := `{"journals": [{"id": "1", "name": "Nature"}]}`
	if _, ok := DecodeJournals(payload); ok {
		t.Error("journal without required fields should fail schema validation")
	}
}

func TestDecodeJournals_WrongShape(t *testing.T) {
	if _, ok := DecodeJournals(`["not", "an", "object"]`); ok {
		t.Error("non-object payload should fail schema validation")
	}
}

func TestDecodeJournals_CodeFenced(t *testing.T) {
	fenced := "```json\n" + twoJournalsJSON + "\n```"
	journals, ok := DecodeJournals(fenced)
	if !ok {
		t.Fatal("fenced JSON should decode")
	}
	if len(journals) != 2 {
		t.Errorf("expected 2 journals, got %d", len(journals))
	}
}

func TestDecodeStructuredArticle(t *testing.T) {
	payload := `{"title": "A Study", "sections": [{"heading": "Introduction", "content": "text"}]}`
	article, ok := DecodeStructuredArticle(payload)
	if !ok {
		t.Fatal("expected valid payload to decode")
	}
	if article.Title != "A Study" || len(article.Sections) != 1 {
		t.Errorf("unexpected article: %+v", article)
	}

	if _, ok := DecodeStructuredArticle(`{"title": "no sections"}`); ok {
		t.Error("payload without sections should fail")
	}
}

func TestDecodeRewrittenArticle(t *testing.T) {
	payload := `{"updatedArticleText": "rewritten", "changeSummary": "minor edits", "warnings": ["one"]}`
	article, ok := DecodeRewrittenArticle(payload)
	if !ok {
		t.Fatal("expected valid payload to decode")
	}
	if article.UpdatedArticleText != "rewritten" {
		t.Errorf("unexpected text: %q", article.UpdatedArticleText)
	}
	if article.ChangeSummary != "minor edits" || len(article.Warnings) != 1 {
		t.Errorf("optional fields not mapped: %+v", article)
	}

	// Optional fields may be absent.
	article, ok = DecodeRewrittenArticle(`{"updatedArticleText": "just text"}`)
	if !ok || article.UpdatedArticleText != "just text" {
		t.Errorf("minimal payload should decode, got %+v ok=%v", article, ok)
	}

	if _, ok := DecodeRewrittenArticle(`{"changeSummary": "no text"}`); ok {
		t.Error("payload without updatedArticleText should fail")
	}
}
