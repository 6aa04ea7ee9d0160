package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaigns with pre-computed embeddings and one
// creative each, so exemplar retrieval has something to rank against on a
// fresh database. The embeddings are tiny synthetic vectors, fine for
// local development where the real embedding model is not configured.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	demos := []struct {
		prompt     string
		embedding  []float32
		headline   string
		subhead    string
		background string
		bgType     string
		cta        string
	}{
		{
			prompt:     "Summer swimwear launch, bright beach colors",
			embedding:  []float32{0.8, 0.2, 0.1, 0.05},
			headline:   "Dive Into Summer",
			subhead:    "New swimwear collection",
			background: "Sunlit sandy beach with turquoise water and two striped umbrellas",
			bgType:     "photo",
			cta:        "Shop Swim",
		},
		{
			prompt:     "Back to school laptop deals for students",
			embedding:  []float32{0.1, 0.9, 0.3, 0.02},
			headline:   "Smarter Semester",
			subhead:    "Laptops from $499",
			background: "Wooden desk with an open silver laptop, notebooks and a green desk lamp",
			bgType:     "photo",
			cta:        "See Deals",
		},
		{
			prompt:     "Minimalist skincare brand, soft gradients",
			embedding:  []float32{0.3, 0.1, 0.85, 0.4},
			headline:   "Bare Essentials",
			subhead:    "Three steps, nothing else",
			background: "Smooth vertical gradient from pale pink to cream",
			bgType:     "gradient",
			cta:        "Start Routine",
		},
	}

	for _, d := range demos {
		campaignID := uuid.NewString()
		embedding, err := json.Marshal(d.embedding)
		if err != nil {
			return err
		}
		if _, err = pool.Exec(ctx,
			`INSERT INTO campaigns (id, prompt, embedding, created_at) VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`,
			campaignID, d.prompt, embedding, time.Now().UTC()); err != nil {
			return fmt.Errorf("seeding campaign: %w", err)
		}

		background, err := json.Marshal(map[string]string{
			"type":        d.bgType,
			"color":       "#ffffff",
			"description": d.background,
		})
		if err != nil {
			return err
		}
		textBlocks, err := json.Marshal([]map[string]any{
			{"type": "headline", "text": d.headline, "font": "sans-serif", "weight": 700, "color": "#111111", "alignment": "center", "case_style": "normal"},
			{"type": "subhead", "text": d.subhead, "font": "sans-serif", "weight": 400, "color": "#333333", "alignment": "center", "case_style": "normal"},
		})
		if err != nil {
			return err
		}
		ctaButtons, err := json.Marshal([]map[string]string{
			{"text": d.cta, "url": "https://example.com", "style": "solid", "bg_color": "#007bff", "text_color": "#ffffff"},
		})
		if err != nil {
			return err
		}
		if _, err = pool.Exec(ctx, `
            INSERT INTO creatives (id, campaign_id, background, text_blocks, cta_buttons, created_at, updated_at)
            VALUES ($1,$2,$3,$4,$5,now(),now()) ON CONFLICT DO NOTHING`,
			uuid.NewString(), campaignID, background, textBlocks, ctaButtons); err != nil {
			return fmt.Errorf("seeding creative: %w", err)
		}
	}
	return nil
}
