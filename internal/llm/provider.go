// Package llm talks to hosted language models for quiz generation.
//
// Every vendor is reached through the same Provider interface. NewProvider
// stacks retry and request logging on top of the configured vendor.
package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one prompt and returns the model's JSON answer.
type Provider interface {
	// Generate runs req. When req.Schema is set the returned Content has
	// already been checked against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model the provider was configured with.
	ModelID() string
}

// Request is a single-turn prompt.
type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema
	MaxTokens   int
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response is what a vendor returned for a Request.
type Response struct {
	// Content is a JSON document. Without a schema it is the raw model text.
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the request, which may be a
	// dated variant of ModelID.
	Model string

	// Truncated is set when generation stopped at MaxTokens.
	Truncated bool
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

func (u Usage) Total() int { return u.InputTokens + u.OutputTokens }
