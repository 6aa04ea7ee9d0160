package genaiclient

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultEmbedModel produces 768-dimensional vectors, plenty for
// cosine ranking over a small campaign set.
const DefaultEmbedModel = "gemini-embedding-001"

// Embedder implements port.Embedder on the GenAI embedding models.
type Embedder struct {
	client *genai.Client
	model  string
}

// NewEmbedder returns an embedder for the given model, defaulting to
// DefaultEmbedModel.
func NewEmbedder(client *genai.Client, model string) *Embedder {
	if model == "" {
		model = DefaultEmbedModel
	}
	return &Embedder{client: client, model: model}
}

// Embed generates the embedding vector for one text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(text, genai.RoleUser),
	}
	result, err := e.client.Models.EmbedContent(ctx, e.model, contents, &genai.EmbedContentConfig{
		TaskType: "SEMANTIC_SIMILARITY",
	})
	if err != nil {
		return nil, fmt.Errorf("genai embed: %w", err)
	}
	if len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("genai embed: no embedding returned")
	}
	return result.Embeddings[0].Values, nil
}
