// Package llm wraps calls to remote text/vision completion services and
// implements the retry/fallback policy applied across a chain of
// candidate models.
package llm

import (
	"context"

	"product-agent/internal/imaging"
)

// Request is one completion call: the rendered prompt plus any product
// photos. Text-only engines ignore Images.
type Request struct {
	Prompt string
	Images []imaging.Image
}

// Invoker is a single (provider, model) pair that can execute a request.
type Invoker interface {
	// Name identifies the provider ("gemini", "groq").
	Name() string
	// Model is the concrete model identifier tried by the fallback chain.
	Model() string
	// Generate executes one completion call and returns the raw text.
	Generate(ctx context.Context, req Request) (string, error)
}
