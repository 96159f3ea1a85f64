package models

import "context"

// CompletionProvider is the core interface that all completion backends must
// implement. Never call a specific backend directly - always inject this
// interface.
type CompletionProvider interface {
	// Complete sends one prompt pair to the backend and returns the raw
	// completion text. The backend is instructed to emit a single JSON object.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Name returns the provider identifier (e.g., "groq", "openai").
	Name() string
	// Model returns the fixed model identifier used for requests.
	Model() string
}

// CompletionRequest is the input to a single completion call.
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int
}
