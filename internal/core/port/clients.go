package port

import "context"

// Embedder produces a fixed-length vector for a text. Failures are
// non-fatal to the generation flow; callers degrade to an empty exemplar
// set.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// TextGenerator is the LLM behind creative generation. The textual output
// contract lives in the prompt package; the generator itself is a black
// box.
type TextGenerator interface {
	Complete(ctx context.Context, system, user string, temperature float32) (string, error)
}

// ImageGenerator renders a prompt and returns a public URL for the stored
// result. Per-image failures are isolated by callers and never abort
// sibling generations.
type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// Model names the backing model, recorded on generated imagery.
	Model() string
}

// ObjectStore persists raw bytes and returns a publicly reachable URL.
type ObjectStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}
