// Package usecase orchestrates the creative generation pipeline:
// retrieval of exemplars, prompt composition, generation, parsing,
// persistence and imagery. It implements port.CreativeUseCase over the
// outbound ports so every external collaborator can be substituted in
// tests.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
	"adcraft/internal/parse"
	"adcraft/internal/prompt"
	"adcraft/internal/rank"
)

// Options tunes the pipeline. Zero values fall back to the defaults noted
// per field.
type Options struct {
	// TopK exemplars retrieved per generation (default 3, sensible 3-5).
	TopK int
	// Temperature forwarded to the text generator (default 0.7).
	Temperature float32
	// ImageBatchSize bounds concurrent image-generation calls (default 3).
	ImageBatchSize int
	// ImageBatchPause is the fixed pause between image batches, a crude
	// guard against upstream rate limits (default 2s).
	ImageBatchPause time.Duration
}

func (o Options) withDefaults() Options {
	if o.TopK <= 0 {
		o.TopK = rank.DefaultTopK
	}
	if o.Temperature == 0 {
		o.Temperature = 0.7
	}
	if o.ImageBatchSize <= 0 {
		o.ImageBatchSize = 3
	}
	if o.ImageBatchPause <= 0 {
		o.ImageBatchPause = 2 * time.Second
	}
	return o
}

// CreativeService implements port.CreativeUseCase.
type CreativeService struct {
	repo      port.CampaignRepository
	embedder  port.Embedder
	generator port.TextGenerator
	// imager is nil when image generation is unconfigured; the image
	// stage is then skipped entirely.
	imager port.ImageGenerator
	logger *slog.Logger
	opts   Options
}

// NewCreativeService wires the pipeline. imager may be nil.
func NewCreativeService(
	repo port.CampaignRepository,
	embedder port.Embedder,
	generator port.TextGenerator,
	imager port.ImageGenerator,
	logger *slog.Logger,
	opts Options,
) *CreativeService {
	return &CreativeService{
		repo:      repo,
		embedder:  embedder,
		generator: generator,
		imager:    imager,
		logger:    logger,
		opts:      opts.withDefaults(),
	}
}

// GenerateDraft runs retrieval and generation and returns the raw text for
// review. Retrieval failure is degraded, not fatal: generation proceeds
// with no inspiration.
func (s *CreativeService) GenerateDraft(ctx context.Context, promptText string) (*port.Draft, error) {
	exemplars := s.retrieveExemplars(ctx, promptText)
	system, user := prompt.Compose(promptText, exemplars)
	raw, err := s.complete(ctx, system, user)
	if err != nil {
		return nil, err
	}
	return &port.Draft{RawText: raw, Exemplars: len(exemplars)}, nil
}

// ModifyDraft revises previously generated raw text per the instruction.
func (s *CreativeService) ModifyDraft(ctx context.Context, rawText, instruction string) (*port.Draft, error) {
	system, user := prompt.ComposeModification(rawText, instruction)
	raw, err := s.complete(ctx, system, user)
	if err != nil {
		return nil, err
	}
	return &port.Draft{RawText: raw}, nil
}

// SaveCreative parses finalized raw text, persists campaign and creative,
// then attaches imagery when an image generator is configured. A
// persistence failure carries the raw text back to the caller so the
// generation is not lost; image failures never roll back the stored
// creative.
func (s *CreativeService) SaveCreative(ctx context.Context, promptText, rawText string) (*domain.Creative, error) {
	creative, err := parse.Parse(rawText)
	if err != nil {
		return nil, &port.StageError{Stage: port.StageParsing, Err: err}
	}

	now := time.Now().UTC()
	campaign := &domain.CampaignPrompt{
		ID:        uuid.NewString(),
		Text:      promptText,
		CreatedAt: now,
	}
	if vec, embedErr := s.embedder.Embed(ctx, promptText); embedErr != nil {
		// Stored without an embedding; the campaign just won't surface as
		// an exemplar until re-embedded.
		s.logger.Warn("embedding failed, storing campaign without vector",
			slog.String("campaign_id", campaign.ID), slog.Any("error", embedErr))
	} else {
		campaign.Embedding = vec
	}

	creative.ID = uuid.NewString()
	creative.CampaignID = campaign.ID
	creative.CreatedAt = now
	creative.UpdatedAt = now

	if err = s.repo.SaveCampaignPrompt(ctx, campaign); err != nil {
		return nil, &port.StageError{
			Stage: port.StagePersisting,
			Err:   &port.PersistenceError{RawText: rawText, Err: err},
		}
	}
	if err = s.repo.SaveCreative(ctx, creative); err != nil {
		return nil, &port.StageError{
			Stage: port.StagePersisting,
			Err:   &port.PersistenceError{RawText: rawText, Err: err},
		}
	}

	if s.imager != nil {
		images, imgErrs := s.renderImagery(ctx, creative)
		for _, ierr := range imgErrs {
			s.logger.Warn("image generation failed",
				slog.String("creative_id", creative.ID), slog.Any("error", ierr))
		}
		if len(images) > 0 {
			creative.Imagery = images
			creative.UpdatedAt = time.Now().UTC()
			if err = s.repo.SaveCreative(ctx, creative); err != nil {
				// The creative is already persisted; imagery merge is an
				// enrichment and its loss is reported, not fatal.
				s.logger.Error("imagery merge failed",
					slog.String("creative_id", creative.ID), slog.Any("error", err))
			}
		}
	}
	return creative, nil
}

// ListCreatives returns stored creatives, newest first.
func (s *CreativeService) ListCreatives(ctx context.Context, limit int) ([]domain.Creative, error) {
	return s.repo.ListCreatives(ctx, limit)
}

// complete calls the text generator and maps failures and empty output to
// a fatal generating-stage error.
func (s *CreativeService) complete(ctx context.Context, system, user string) (string, error) {
	raw, err := s.generator.Complete(ctx, system, user, s.opts.Temperature)
	if err != nil {
		return "", &port.StageError{
			Stage: port.StageGenerating,
			Err:   fmt.Errorf("%w: %v", port.ErrGenerationFailed, err),
		}
	}
	if strings.TrimSpace(raw) == "" {
		return "", &port.StageError{Stage: port.StageGenerating, Err: port.ErrGenerationFailed}
	}
	return raw, nil
}

// retrieveExemplars embeds the campaign prompt and ranks stored campaigns
// by cosine similarity. Any failure degrades to an empty exemplar set.
func (s *CreativeService) retrieveExemplars(ctx context.Context, promptText string) []domain.Creative {
	query, err := s.embedder.Embed(ctx, promptText)
	if err != nil {
		s.logger.Warn("exemplar retrieval degraded: embedding failed", slog.Any("error", err))
		return nil
	}
	stored, err := s.repo.ListExemplarCandidates(ctx)
	if err != nil {
		s.logger.Warn("exemplar retrieval degraded: candidate listing failed", slog.Any("error", err))
		return nil
	}
	candidates, dropped := rank.Decode(stored)
	if dropped > 0 {
		s.logger.Warn("undecodable embeddings excluded from ranking", slog.Int("dropped", dropped))
	}
	matches := rank.Rank(query, candidates, s.opts.TopK)
	s.logger.Debug("exemplars retrieved",
		slog.Int("candidates", len(candidates)), slog.Int("matches", len(matches)))

	exemplars := make([]domain.Creative, 0, len(matches))
	for _, m := range matches {
		if m.Creative != nil {
			exemplars = append(exemplars, *m.Creative)
		}
	}
	return exemplars
}
