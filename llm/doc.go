// Package llm provides a provider-neutral abstraction layer for the AI
// backends that power document analysis and formatting.
//
// This package defines common types, interfaces, and utilities that allow the
// codebase to work with multiple LLM providers (OpenAI, Claude, Gemini)
// without being tightly coupled to any specific provider's SDK.
//
// # Core Concepts
//
//  1. Provider Interface: the Provider interface exposes RecommendJournals()
//     and FormatArticleForTemplate(). Implementations handle provider-specific
//     prompt construction, response extraction, and SDK details.
//
//  2. Results: Journal represents one recommended publication venue.
//     FormattedArticle is a tagged union of the two result shapes a backend
//     can produce: a structured title+sections outline, or a whole-text
//     rewrite.
//
//  3. Registry: the Registry holds the closed set of three providers and
//     resolves a caller-supplied hint to one of them, substituting the
//     default for anything unrecognized.
//
//  4. Validation: model output is free text that claims to be JSON. The
//     Decode* helpers parse and validate it against strict schemas and report
//     failure with a boolean instead of an error, because malformed model
//     output is recovered locally with a safe default rather than surfaced.
//
//  5. Errors: the Error type is the uniform envelope for infrastructure
//     failures (network, auth, rate limit, server error). Classify coerces
//     any error shape the three SDKs produce into it.
//
// # Extension Points
//
// To add a new provider:
//  1. Implement the Provider interface in a subpackage
//  2. Translate between the SDK's types and llm package types
//  3. Wrap SDK errors so Classify can probe them with errors.As
//  4. Register the implementation with the Registry
package llm
