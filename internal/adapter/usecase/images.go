package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
	"adcraft/internal/prompt"
)

// ErrImagesUnconfigured is returned by GenerateImages when no image
// generator was wired at construction.
var ErrImagesUnconfigured = errors.New("image generator not configured")

// GenerateImages (re)renders imagery for every creative of a campaign.
// Creatives are processed in waves of ImageBatchSize with a fixed pause
// between waves to stay under upstream rate limits. Per-image failures
// are recorded in the report and never roll back stored creatives.
func (s *CreativeService) GenerateImages(ctx context.Context, campaignID string) (*port.BatchImageReport, error) {
	if s.imager == nil {
		return nil, &port.StageError{Stage: port.StageRequestingImages, Err: ErrImagesUnconfigured}
	}
	creatives, err := s.repo.ListCreativesByCampaign(ctx, campaignID)
	if err != nil {
		return nil, &port.StageError{Stage: port.StageRequestingImages, Err: err}
	}

	report := &port.BatchImageReport{Total: len(creatives)}
	var mu sync.Mutex

	for start := 0; start < len(creatives); start += s.opts.ImageBatchSize {
		if start > 0 {
			select {
			case <-ctx.Done():
				return report, ctx.Err()
			case <-time.After(s.opts.ImageBatchPause):
			}
		}
		end := start + s.opts.ImageBatchSize
		if end > len(creatives) {
			end = len(creatives)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.opts.ImageBatchSize)
		for i := start; i < end; i++ {
			creative := creatives[i]
			g.Go(func() error {
				item := s.renderAndMerge(gctx, &creative)
				mu.Lock()
				report.Items = append(report.Items, item)
				if len(item.Errors) == 0 {
					report.Succeeded++
				} else {
					report.Failed++
				}
				mu.Unlock()
				return nil
			})
		}
		// workers never return errors; failures live in the report
		_ = g.Wait()
	}
	return report, nil
}

// renderAndMerge renders both images for one creative and upserts whatever
// succeeded.
func (s *CreativeService) renderAndMerge(ctx context.Context, creative *domain.Creative) port.ImageItemReport {
	item := port.ImageItemReport{CreativeID: creative.ID}

	images, errs := s.renderImagery(ctx, creative)
	for _, err := range errs {
		item.Errors = append(item.Errors, err.Error())
	}
	if len(images) > 0 {
		creative.Imagery = images
		creative.UpdatedAt = time.Now().UTC()
		if err := s.repo.SaveCreative(ctx, creative); err != nil {
			s.logger.Error("imagery merge failed",
				slog.String("creative_id", creative.ID), slog.Any("error", err))
			item.Errors = append(item.Errors, fmt.Sprintf("merging imagery: %v", err))
		}
	}
	item.Images = creative.Imagery
	return item
}

// renderImagery derives the background and poster prompts and requests
// both renders concurrently; the two prompts are independent. It returns
// whatever succeeded, background first, and one error per failed render.
func (s *CreativeService) renderImagery(ctx context.Context, creative *domain.Creative) ([]domain.Image, []error) {
	type render struct {
		kind   domain.ImageType
		prompt string
	}
	renders := []render{
		{kind: domain.ImageBackground, prompt: prompt.BackgroundPrompt(creative)},
		{kind: domain.ImagePoster, prompt: prompt.PosterPrompt(creative)},
	}

	results := make([]*domain.Image, len(renders))
	failures := make([]error, len(renders))

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range renders {
		g.Go(func() error {
			url, err := s.imager.Generate(gctx, r.prompt)
			if err != nil {
				failures[i] = fmt.Errorf("%s render: %w", r.kind, err)
				return nil
			}
			alt := creative.Background.Description
			if h := creative.Headline(); r.kind == domain.ImagePoster && h != nil && h.Text != "" {
				alt = h.Text
			}
			results[i] = &domain.Image{
				Type:         r.kind,
				URL:          url,
				AltText:      alt,
				GeneratedAt:  time.Now().UTC(),
				Model:        s.imager.Model(),
				SourcePrompt: r.prompt,
			}
			return nil
		})
	}
	_ = g.Wait()

	var images []domain.Image
	var errs []error
	for i := range renders {
		if results[i] != nil {
			images = append(images, *results[i])
		}
		if failures[i] != nil {
			errs = append(errs, failures[i])
		}
	}
	return images, errs
}
