package genaiclient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"adcraft/internal/core/port"
)

// DefaultImageModel is the image model used when none is configured.
const DefaultImageModel = "imagen-3.0-generate-002"

// ImageGenerator implements port.ImageGenerator on the Imagen models. The
// rendered bytes are pushed through the object store and the resulting
// public URL is returned; callers never see raw image data.
type ImageGenerator struct {
	client *genai.Client
	model  string
	store  port.ObjectStore
}

// NewImageGenerator returns an image generator for the given model,
// defaulting to DefaultImageModel.
func NewImageGenerator(client *genai.Client, model string, store port.ObjectStore) *ImageGenerator {
	if model == "" {
		model = DefaultImageModel
	}
	return &ImageGenerator{client: client, model: model, store: store}
}

// Generate renders the prompt and returns the stored image's public URL.
// When the model returns several images, the first is taken.
func (g *ImageGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateImages(ctx, g.model, prompt, nil)
	if err != nil {
		return "", fmt.Errorf("genai image: %w", err)
	}
	if len(result.GeneratedImages) == 0 || result.GeneratedImages[0].Image == nil {
		return "", fmt.Errorf("genai image: no image returned")
	}
	img := result.GeneratedImages[0].Image

	ext := ".png"
	if img.MIMEType == "image/jpeg" {
		ext = ".jpg"
	}
	path := "creatives/" + uuid.NewString() + ext
	url, err := g.store.Upload(ctx, path, img.ImageBytes, img.MIMEType)
	if err != nil {
		return "", fmt.Errorf("storing generated image: %w", err)
	}
	return url, nil
}

// Model names the backing model for imagery metadata.
func (g *ImageGenerator) Model() string { return g.model }
