// Package genaiclient implements the embedding, text-generation and
// image-generation ports on Google's GenAI API. One client is shared by
// all three adapters.
package genaiclient

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// NewClient constructs the shared GenAI client for the Gemini API backend.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, errors.New("genai api key is required")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}
