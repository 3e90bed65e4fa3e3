package port

import "context"

// StructuredClient abstracts an LLM backend that answers a text prompt
// with a JSON object. Implementations retry internally; a returned
// error means attempts are exhausted.
type StructuredClient interface {
	Call(ctx context.Context, prompt string) (map[string]any, error)
}
