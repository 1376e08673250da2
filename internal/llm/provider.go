// Package llm abstracts the model providers used for content
// recommendation. Callers describe what they need as a Request with an
// optional JSON schema; providers return validated structured JSON.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the model-facing abstraction. Recommendation prompts are
// single-turn: one user message, one schema-constrained reply.
type Provider interface {
	// Generate sends a prompt and returns the structured response. When
	// req.Schema is set the returned Content is JSON validated against
	// that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Usually a single user message.
	Messages []Message

	// Schema, when set, constrains the output to conforming JSON via
	// the provider's native structured-output mechanism.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected back.
type Schema struct {
	// Name identifies the schema, kebab-case ("unit-recommendation").
	Name string

	// Description guides the model's generation.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request carried a schema,
	// otherwise raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
