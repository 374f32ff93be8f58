// Package feedback submits answered interview questions to a language-model
// provider and returns short coaching feedback. The capability is strictly
// best-effort: it is absent unless a provider credential is configured, and
// every failure degrades to a placeholder upstream.
package feedback

import "context"

// Provider is the abstraction over a feedback-capable LLM backend.
type Provider interface {
	// Generate sends a single prompt and returns the text response.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user-turn content.
	Prompt string

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Default 0 when unset.
	Temperature float64
}

// Response holds the model's output.
type Response struct {
	// Text is the generated feedback text.
	Text string

	// Model is the actual model that served the request.
	Model string

	// Usage reports token consumption for this request.
	Usage Usage
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
