package llm

import "context"

// Client is the reasoning capability role workers depend on. Implementations
// must be safe for concurrent use by the analysis-stage workers.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
