// Package llm abstracts the hosted language models used for clinical
// knowledge lookups. Providers answer short single-turn prompts and can be
// asked for JSON conforming to a schema. The question being solved is never
// sent to a provider; only isolated clinical terms are.
package llm

import (
	"context"
	"encoding/json"
)

// Provider answers a single prompt. Implementations wrap one hosted model.
type Provider interface {
	// Generate sends the prompt and returns the model's output. When the
	// request carries a Schema the returned Content is JSON validated
	// against it; otherwise Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured for.
	ModelID() string
}

// Request is a single-turn prompt. Knowledge lookups never carry
// conversation history.
type Request struct {
	// System sets the model's role, e.g. "You are a nursing educator."
	System string

	// Prompt is the user prompt, typically one clinical term or a short
	// question about it.
	Prompt string

	// Schema, when set, requests JSON conforming to this schema via the
	// provider's native structured output mechanism.
	Schema *Schema

	// MaxTokens caps the response length. Lookups need only a sentence.
	MaxTokens int

	// Temperature controls randomness, 0.0 to 1.0. Zero when unset, so
	// repeated lookups for the same term stay stable.
	Temperature float64
}

// Schema is a JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "intervention-purpose".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response is the model's output for one request.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
