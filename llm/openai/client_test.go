package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"github.com/svkul/docguru-back/llm"
)

// completionServer fakes the chat completion endpoint. It captures the user
// message of each request and always answers with content.
func completionServer(t *testing.T, content string, lastPrompt *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("invalid completion request: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		for _, msg := range req.Messages {
			if msg.Role == openai.ChatMessageRoleUser {
				*lastPrompt = msg.Content
			}
		}
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient("test-key", baseURL, "", "", zerolog.Nop())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client
}

func TestRecommendJournals_TruncatesDocument(t *testing.T) {
	var prompt string
	srv := completionServer(t, `{"journals": []}`, &prompt)
	defer srv.Close()

	doc := strings.Repeat("x", llm.RecommendCharBudget) + "BEYOND-BUDGET"
	client := newTestClient(t, srv.URL)

	if _, err := client.RecommendJournals(context.Background(), doc); err != nil {
		t.Fatalf("RecommendJournals failed: %v", err)
	}
	if strings.Contains(prompt, "BEYOND-BUDGET") {
		t.Error("prompt contains text past the character budget")
	}
	if !strings.Contains(prompt, strings.Repeat("x", llm.RecommendCharBudget)) {
		t.Error("prompt is missing the in-budget document text")
	}
}

func TestRecommendJournals_ValidResponse(t *testing.T) {
	var prompt string
	srv := completionServer(t, `{"journals": [
		{"id": "1", "name": "Nature", "reason": "scope", "description": "d", "templateId": "template-1"},
		{"id": "2", "name": "Cell", "reason": "topic", "description": "d", "templateId": "template-2"}
	]}`, &prompt)
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	journals, err := client.RecommendJournals(context.Background(), "a paper about cells")
	if err != nil {
		t.Fatalf("RecommendJournals failed: %v", err)
	}
	if len(journals) != 2 || journals[0].Name != "Nature" || journals[1].Name != "Cell" {
		t.Errorf("unexpected journals: %+v", journals)
	}
}

func TestFormatArticleForTemplate_TruncatesArticle(t *testing.T) {
	var prompt string
	srv := completionServer(t, `{"title": "T", "sections": []}`, &prompt)
	defer srv.Close()

	article := strings.Repeat("y", llm.FormatCharBudget) + "BEYOND-BUDGET"
	client := newTestClient(t, srv.URL)

	if _, err := client.FormatArticleForTemplate(context.Background(), "template-1", article); err != nil {
		t.Fatalf("FormatArticleForTemplate failed: %v", err)
	}
	if strings.Contains(prompt, "BEYOND-BUDGET") {
		t.Error("prompt contains text past the character budget")
	}
}

func TestFormatArticleForTemplate_InvalidModelOutput(t *testing.T) {
	var prompt string
	srv := completionServer(t, `{not json`, &prompt)
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result, err := client.FormatArticleForTemplate(context.Background(), "template-1", "original text")
	if err != nil {
		t.Fatalf("invalid model output must not surface an error, got %v", err)
	}
	if result.Type != llm.FormattedArticleTypeStructured {
		t.Fatalf("expected structured variant, got %q", result.Type)
	}
	if result.Structured.Title != "" || len(result.Structured.Sections) != 0 {
		t.Errorf("expected empty structured fallback, got %+v", result.Structured)
	}
}
