package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// Error is the uniform envelope every surfaced provider failure is coerced
// into: an HTTP-style status code, a message, and the provider it came from.
type Error struct {
	StatusCode  int
	Message     string
	Provider    string
	ProviderErr error // Original provider-specific error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("%s: %s", e.Provider, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying provider error.
func (e *Error) Unwrap() error {
	return e.ProviderErr
}

// probe is the result of one typed error-shape extraction attempt.
type probe struct {
	status  int
	message string
}

// probers attempt the known SDK error shapes in priority order. Three
// backends expose errors in incompatible shapes, so each gets a typed
// extractor; the generic err.Error() fallback comes after all of them.
var probers = []func(error) (probe, bool){
	probeOpenAI,
	probeAnthropic,
	probeGemini,
}

func probeOpenAI(err error) (probe, bool) {
	var apiErr *openai.APIError
	if !errors.As(err, &apiErr) {
		return probe{}, false
	}
	return probe{status: apiErr.HTTPStatusCode, message: apiErr.Message}, true
}

func probeAnthropic(err error) (probe, bool) {
	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return probe{}, false
	}
	return probe{status: apiErr.StatusCode, message: anthropicMessage(apiErr)}, true
}

// anthropicMessage extracts the nested error.message from the API response
// body ({"type":"error","error":{"type":...,"message":...}}). The SDK's
// Error() string dumps the request method, full URL, and raw body, none of
// which belongs in a caller-facing message; it remains the fallback only
// when the body does not carry a message.
func anthropicMessage(apiErr *anthropic.Error) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal([]byte(apiErr.RawJSON()), &body) == nil && body.Error.Message != "" {
		return body.Error.Message
	}
	return apiErr.Error()
}

func probeGemini(err error) (probe, bool) {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return probe{}, false
	}
	return probe{status: apiErr.Code, message: apiErr.Message}, true
}

// Classify coerces an error of unknown shape into an *Error for the given
// provider. The cascade, first match wins:
//
//  1. an *Error passes through unchanged (provider filled in if empty);
//  2. a typed SDK error shape supplies status and message; the status is
//     used verbatim when it lies in [400,599];
//  3. the message falls back to err.Error(), then to a generic string;
//  4. with no usable status, one is inferred from substrings of the message.
func Classify(provider string, err error) *Error {
	var envelope *Error
	if errors.As(err, &envelope) {
		if envelope.Provider == "" {
			envelope.Provider = provider
		}
		return envelope
	}

	status := 0
	message := ""
	for _, p := range probers {
		if result, ok := p(err); ok {
			status = result.status
			message = result.message
			break
		}
	}

	if message == "" && err != nil {
		message = err.Error()
	}
	if message == "" {
		message = fmt.Sprintf("Provider request failed: %s", provider)
	}

	if status < 400 || status > 599 {
		status = inferStatus(message)
	}

	return &Error{
		StatusCode:  status,
		Message:     message,
		Provider:    provider,
		ProviderErr: err,
	}
}

// inferStatus guesses an HTTP status from substrings of a provider error
// message. The checks are ordered: availability first, then auth, then rate
// limiting, then bad request. Everything unrecognized is a 500.
func inferStatus(message string) int {
	switch {
	case strings.Contains(message, "overloaded"),
		strings.Contains(message, "503"),
		strings.Contains(message, "UNAVAILABLE"):
		return http.StatusServiceUnavailable
	case strings.Contains(message, "401"),
		strings.Contains(strings.ToLower(message), "unauthorized"):
		return http.StatusUnauthorized
	case strings.Contains(message, "429"),
		strings.Contains(message, "rate limit"):
		return http.StatusTooManyRequests
	case strings.Contains(message, "400"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
