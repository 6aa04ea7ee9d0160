package genaiclient

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultTextModel is the generation model used when none is configured.
const DefaultTextModel = "gemini-2.0-flash"

// TextGenerator implements port.TextGenerator on the Gemini models.
type TextGenerator struct {
	client *genai.Client
	model  string
}

// NewTextGenerator returns a generator for the given model, defaulting to
// DefaultTextModel.
func NewTextGenerator(client *genai.Client, model string) *TextGenerator {
	if model == "" {
		model = DefaultTextModel
	}
	return &TextGenerator{client: client, model: model}
}

// Complete sends one system/user message pair and returns the response
// text. No retries: a non-success response is the caller's problem.
func (g *TextGenerator) Complete(ctx context.Context, system, user string, temperature float32) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(temperature),
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(user), cfg)
	if err != nil {
		return "", fmt.Errorf("genai generate: %w", err)
	}
	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("genai generate: empty response")
	}
	return text, nil
}
