package summarizer

import (
	"context"

	"github.com/luminameet/meetingflow/internal/resolver"
)

// Request is the assembled summarization input: one combined text block
// followed by the resolved content parts, in resolution order. Built once
// per run and never mutated.
type Request struct {
	CombinedText string
	Parts        []*resolver.Part
}

// Invoker calls the generative provider with retry and model fallback
type Invoker interface {
	// Invoke generates the summary text for the request. Transient
	// provider failures are retried with the model toggled between the
	// primary and fallback identifiers; fatal failures surface
	// immediately. The model used for the final attempt is not reported.
	Invoke(ctx context.Context, req Request) (string, error)
}

// generator is the minimal provider surface the retry loop needs.
// The production implementation wraps the genai client; tests substitute
// a scripted fake.
type generator interface {
	generate(ctx context.Context, model string, req Request) (string, error)
}
