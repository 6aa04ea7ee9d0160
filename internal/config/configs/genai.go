package configs

// GenAI configures the Google GenAI client shared by the embedding, text
// generation and image generation adapters. When APIKey is empty the
// service refuses to start; when ImageModel is empty image generation is
// disabled and the pipeline skips the imagery stage.
type GenAI struct {
	// APIKey authenticates against the Gemini API.
	APIKey string `env:"API_KEY"`
	// TextModel is the generation model. Defaults to gemini-2.0-flash.
	TextModel string `env:"TEXT_MODEL" envDefault:"gemini-2.0-flash"`
	// EmbedModel is the embedding model. Defaults to gemini-embedding-001.
	EmbedModel string `env:"EMBED_MODEL" envDefault:"gemini-embedding-001"`
	// ImageModel is the image model. Set empty to disable imagery.
	ImageModel string `env:"IMAGE_MODEL" envDefault:"imagen-3.0-generate-002"`
	// Temperature is forwarded to the text generator.
	Temperature float32 `env:"TEMPERATURE" envDefault:"0.7"`
}
