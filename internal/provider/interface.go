package provider

import "context"

// Client is the external summarization provider the pipeline talks to.
// The concrete implementation lives in internal/gemini; the analyzer and
// merger only see this surface so their behavior is testable with fakes.
type Client interface {
	// Upload submits a local file and returns its remote handle.
	Upload(ctx context.Context, path string) (Handle, error)
	// Poll refreshes the remote state of a previously uploaded file.
	Poll(ctx context.Context, id string) (Handle, error)
	// GenerateFromFile runs a generation call with the prompt and the
	// uploaded file as input.
	GenerateFromFile(ctx context.Context, prompt string, h Handle, cfg GenerateConfig) (Result, error)
	// GenerateText runs a text-only generation call.
	GenerateText(ctx context.Context, prompt, content string, cfg GenerateConfig) (Result, error)
	// Delete removes an uploaded file. Callers treat failures as non-fatal.
	Delete(ctx context.Context, id string) error
	// Model returns the model identifier selected at construction.
	Model() string
}
