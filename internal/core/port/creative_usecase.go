package port

import (
	"context"
	"errors"
	"fmt"

	"adcraft/internal/core/domain"
)

// ErrGenerationFailed indicates the text generator returned no usable
// content. It is fatal to the assembly and surfaced to the caller wrapped
// in a StageError.
var ErrGenerationFailed = errors.New("text generator returned no usable content")

// Stage names one step of the creative assembly state machine. A failed
// assembly reports the stage it died in so batch callers and API clients
// can tell a prompt-drift problem from a storage outage.
type Stage string

const (
	StageRetrievingExemplars  Stage = "retrieving_exemplars"
	StageComposing            Stage = "composing"
	StageGenerating           Stage = "generating"
	StageParsing              Stage = "parsing"
	StagePersisting           Stage = "persisting"
	StageDerivingImagePrompts Stage = "deriving_image_prompts"
	StageRequestingImages     Stage = "requesting_images"
	StageMergingImagery       Stage = "merging_imagery"
)

// StageError tags a failure with the assembly stage it occurred in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// PersistenceError reports a storage failure after a successful generation
// and parse. RawText carries the generated content so the expensive LLM
// call is not lost to a transient storage fault.
type PersistenceError struct {
	RawText string
	Err     error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persisting creative: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Draft is the reviewable output of a generation or modification request:
// the raw generator text before it is parsed and persisted.
type Draft struct {
	RawText   string `json:"raw_text"`
	Exemplars int    `json:"exemplars"`
}

// ImageItemReport is the per-creative slice of a batch image run.
type ImageItemReport struct {
	CreativeID string         `json:"creative_id"`
	Images     []domain.Image `json:"images"`
	Errors     []string       `json:"errors,omitempty"`
}

// BatchImageReport summarises a batch image-generation run. A creative
// counts as failed when any of its renders failed, even if the other
// render succeeded and was merged.
type BatchImageReport struct {
	Total     int               `json:"total"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Items     []ImageItemReport `json:"items"`
}

// CreativeUseCase is the primary port into the generation pipeline.
type CreativeUseCase interface {
	// GenerateDraft runs retrieval and generation for a campaign prompt and
	// returns the raw text for human review. Retrieval failures degrade to
	// an empty exemplar set; generation failures are fatal.
	GenerateDraft(ctx context.Context, promptText string) (*Draft, error)

	// ModifyDraft asks the generator to revise previously generated raw
	// text according to an instruction, preserving the output format.
	ModifyDraft(ctx context.Context, rawText, instruction string) (*Draft, error)

	// SaveCreative parses finalized raw text, persists the campaign prompt
	// and creative, and (when an image generator is configured) attaches
	// generated imagery. Image failures never roll back the stored
	// creative.
	SaveCreative(ctx context.Context, promptText, rawText string) (*domain.Creative, error)

	// GenerateImages (re)renders imagery for every creative of a campaign
	// with bounded concurrency, reporting per-item outcomes.
	GenerateImages(ctx context.Context, campaignID string) (*BatchImageReport, error)

	// ListCreatives returns stored creatives, newest first.
	ListCreatives(ctx context.Context, limit int) ([]domain.Creative, error)
}
