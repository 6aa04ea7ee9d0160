package configs

import "time"

// Images tunes exemplar retrieval and batch image generation.
type Images struct {
	// TopK exemplars injected into generation prompts. Sensible values
	// are 3 to 5.
	TopK int `env:"TOP_K" envDefault:"3"`
	// BatchSize bounds concurrent image-generation calls.
	BatchSize int `env:"BATCH_SIZE" envDefault:"3"`
	// BatchPause is the fixed pause between image batches, a crude guard
	// against upstream rate limits.
	BatchPause time.Duration `env:"BATCH_PAUSE" envDefault:"2s"`
}
