package llm

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	openai "github.com/sashabaranov/go-openai"
)

func TestClassify_EnvelopePassthrough(t *testing.T) {
	original := &Error{StatusCode: 503, Message: "service overloaded"}
	got := Classify(ProviderClaude, fmt.Errorf("Claude API error: %w", original))
	if got.StatusCode != 503 {
		t.Errorf("expected status 503, got %d", got.StatusCode)
	}
	if got.Provider != ProviderClaude {
		t.Errorf("expected provider filled in, got %q", got.Provider)
	}
	if got.Message != "service overloaded" {
		t.Errorf("unexpected message %q", got.Message)
	}
}

func TestClassify_TypedStatus(t *testing.T) {
	apiErr := &openai.APIError{HTTPStatusCode: 429, Message: "quota exhausted"}
	got := Classify(ProviderOpenAI, fmt.Errorf("OpenAI API error: %w", apiErr))
	if got.StatusCode != 429 {
		t.Errorf("expected typed status 429, got %d", got.StatusCode)
	}
	if got.Message != "quota exhausted" {
		t.Errorf("expected typed message, got %q", got.Message)
	}
}

func TestClassify_AnthropicNestedMessage(t *testing.T) {
	// The Anthropic SDK's Error() string is a request dump (method, full
	// URL, raw body). The envelope must carry only the nested error.message
	// from the response body.
	var apiErr anthropic.Error
	body := `{"type":"error","error":{"type":"authentication_error","message":"invalid x-api-key"}}`
	if err := apiErr.UnmarshalJSON([]byte(body)); err != nil {
		t.Fatalf("UnmarshalJSON failed: %v", err)
	}
	apiErr.StatusCode = 401

	got := Classify(ProviderClaude, fmt.Errorf("Claude API error: %w", &apiErr))
	if got.StatusCode != 401 {
		t.Errorf("expected status 401, got %d", got.StatusCode)
	}
	if got.Message != "invalid x-api-key" {
		t.Errorf("expected nested message, got %q", got.Message)
	}
	if strings.Contains(got.Message, "POST") || strings.Contains(got.Message, "anthropic.com") {
		t.Errorf("message leaks request details: %q", got.Message)
	}
}

func TestClassify_TypedStatusOutOfRange(t *testing.T) {
	// A zero or non-HTTP status from the SDK falls through to inference.
	apiErr := &openai.APIError{HTTPStatusCode: 0, Message: "rate limit exceeded"}
	got := Classify(ProviderOpenAI, apiErr)
	if got.StatusCode != 429 {
		t.Errorf("expected inferred 429, got %d", got.StatusCode)
	}
}

func TestClassify_MessageInference(t *testing.T) {
	cases := []struct {
		message string
		status  int
	}{
		{"rate limit exceeded", 429},
		{"got 429 from upstream", 429},
		{"model is overloaded", 503},
		{"503 Service Unavailable", 503},
		{"code UNAVAILABLE", 503},
		{"401 invalid x-api-key", 401},
		{"Unauthorized", 401},
		{"request was 400 bad request", 400},
		{"something exploded", 500},
	}
	for _, tc := range cases {
		got := Classify(ProviderGemini, errors.New(tc.message))
		if got.StatusCode != tc.status {
			t.Errorf("Classify(%q) status = %d, want %d", tc.message, got.StatusCode, tc.status)
		}
		if got.Message != tc.message {
			t.Errorf("Classify(%q) message = %q", tc.message, got.Message)
		}
	}
}

func TestClassify_EmptyError(t *testing.T) {
	got := Classify(ProviderGemini, errors.New(""))
	if got.StatusCode != 500 {
		t.Errorf("expected 500, got %d", got.StatusCode)
	}
	if got.Message != "Provider request failed: gemini" {
		t.Errorf("expected generic message, got %q", got.Message)
	}
}

func TestClassify_NilError(t *testing.T) {
	got := Classify(ProviderOpenAI, nil)
	if got.StatusCode != 500 {
		t.Errorf("expected 500, got %d", got.StatusCode)
	}
	if got.Message != "Provider request failed: openai" {
		t.Errorf("expected generic message, got %q", got.Message)
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	envelope := Classify(ProviderOpenAI, inner)
	if !errors.Is(envelope, inner) {
		t.Error("envelope should wrap the original error")
	}
}
