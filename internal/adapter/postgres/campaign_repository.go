package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
// Creative sub-structures are stored as JSONB columns; campaign embeddings
// as JSONB float arrays, decoded lazily by the ranker.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// SaveCampaignPrompt inserts a campaign prompt row. Campaigns are
// append-only; there is no update path.
func (r *CampaignRepository) SaveCampaignPrompt(ctx context.Context, p *domain.CampaignPrompt) error {
	var embedding []byte
	if len(p.Embedding) > 0 {
		var err error
		if embedding, err = json.Marshal(p.Embedding); err != nil {
			return fmt.Errorf("encoding embedding: %w", err)
		}
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO campaigns (id, prompt, embedding, created_at) VALUES ($1,$2,$3,$4)`,
		p.ID, p.Text, embedding, p.CreatedAt)
	return err
}

// ListExemplarCandidates returns every embedded campaign paired with its
// most recent creative. Embeddings stay in their serialized form; the
// ranker decodes them and drops what it cannot read.
func (r *CampaignRepository) ListExemplarCandidates(ctx context.Context) ([]port.ExemplarCandidate, error) {
	query := `
        SELECT DISTINCT ON (cr.campaign_id)
            c.id,
            c.prompt,
            c.embedding,
            ` + creativeColumns("cr") + `
        FROM campaigns c
        JOIN creatives cr ON cr.campaign_id = c.id
        WHERE c.embedding IS NOT NULL
        ORDER BY cr.campaign_id, cr.created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.ExemplarCandidate, error) {
		var (
			cand port.ExemplarCandidate
			cr   creativeRow
		)
		dest := append([]any{&cand.CampaignID, &cand.PromptText, &cand.Embedding}, cr.scanDest()...)
		if err := row.Scan(dest...); err != nil {
			return cand, err
		}
		creative, err := cr.toDomain()
		if err != nil {
			return cand, err
		}
		cand.Creative = creative
		return cand, nil
	})
}

// SaveCreative inserts or updates a creative by id, so the imagery merge
// can re-save the record it just enriched.
func (r *CampaignRepository) SaveCreative(ctx context.Context, c *domain.Creative) error {
	enc := func(v any) ([]byte, error) { return json.Marshal(v) }
	dimensions, err := enc(c.Dimensions)
	if err != nil {
		return err
	}
	background, err := enc(c.Background)
	if err != nil {
		return err
	}
	textBlocks, err := enc(c.TextBlocks)
	if err != nil {
		return err
	}
	ctaButtons, err := enc(c.CTAButtons)
	if err != nil {
		return err
	}
	brandLogo, err := enc(c.BrandLogo)
	if err != nil {
		return err
	}
	brandColors, err := enc(c.BrandColors)
	if err != nil {
		return err
	}
	decorative, err := enc(c.DecorativeElements)
	if err != nil {
		return err
	}
	imagery, err := enc(c.Imagery)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, `
        INSERT INTO creatives
            (id, campaign_id, placement, dimensions, format, layout_grid, background,
             text_blocks, cta_buttons, brand_logo, brand_colors, slogan, legal_disclaimer,
             decorative_elements, imagery, raw_text, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
        ON CONFLICT (id) DO UPDATE SET
            placement = EXCLUDED.placement,
            dimensions = EXCLUDED.dimensions,
            format = EXCLUDED.format,
            layout_grid = EXCLUDED.layout_grid,
            background = EXCLUDED.background,
            text_blocks = EXCLUDED.text_blocks,
            cta_buttons = EXCLUDED.cta_buttons,
            brand_logo = EXCLUDED.brand_logo,
            brand_colors = EXCLUDED.brand_colors,
            slogan = EXCLUDED.slogan,
            legal_disclaimer = EXCLUDED.legal_disclaimer,
            decorative_elements = EXCLUDED.decorative_elements,
            imagery = EXCLUDED.imagery,
            raw_text = EXCLUDED.raw_text,
            updated_at = EXCLUDED.updated_at`,
		c.ID, c.CampaignID, string(c.Placement), dimensions, string(c.Format),
		string(c.LayoutGrid), background, textBlocks, ctaButtons, brandLogo,
		brandColors, c.Slogan, c.LegalDisclaimer, decorative, imagery, c.RawText,
		c.CreatedAt, c.UpdatedAt)
	return err
}

// GetCreative returns a creative by id, or nil when absent.
func (r *CampaignRepository) GetCreative(ctx context.Context, id string) (*domain.Creative, error) {
	var cr creativeRow
	err := r.pool.QueryRow(ctx,
		`SELECT `+creativeColumns("cr")+` FROM creatives cr WHERE cr.id = $1`, id).
		Scan(cr.scanDest()...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cr.toDomain()
}

// ListCreatives returns up to limit creatives, newest first.
func (r *CampaignRepository) ListCreatives(ctx context.Context, limit int) ([]domain.Creative, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+creativeColumns("cr")+` FROM creatives cr ORDER BY cr.created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return collectCreatives(rows)
}

// ListCreativesByCampaign returns all creatives of one campaign, oldest
// first.
func (r *CampaignRepository) ListCreativesByCampaign(ctx context.Context, campaignID string) ([]domain.Creative, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+creativeColumns("cr")+` FROM creatives cr WHERE cr.campaign_id = $1 ORDER BY cr.created_at`, campaignID)
	if err != nil {
		return nil, err
	}
	return collectCreatives(rows)
}

func collectCreatives(rows pgx.Rows) ([]domain.Creative, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Creative, error) {
		var cr creativeRow
		if err := row.Scan(cr.scanDest()...); err != nil {
			return domain.Creative{}, err
		}
		c, err := cr.toDomain()
		if err != nil {
			return domain.Creative{}, err
		}
		return *c, nil
	})
}

// creativeRow is the raw column image of a creative before JSONB decoding.
type creativeRow struct {
	ID              string
	CampaignID      string
	Placement       string
	Dimensions      []byte
	Format          string
	LayoutGrid      string
	Background      []byte
	TextBlocks      []byte
	CTAButtons      []byte
	BrandLogo       []byte
	BrandColors     []byte
	Slogan          string
	LegalDisclaimer string
	Decorative      []byte
	Imagery         []byte
	RawText         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func creativeColumns(alias string) string {
	return alias + `.id, ` + alias + `.campaign_id, ` + alias + `.placement, ` +
		alias + `.dimensions, ` + alias + `.format, ` + alias + `.layout_grid, ` +
		alias + `.background, ` + alias + `.text_blocks, ` + alias + `.cta_buttons, ` +
		alias + `.brand_logo, ` + alias + `.brand_colors, ` + alias + `.slogan, ` +
		alias + `.legal_disclaimer, ` + alias + `.decorative_elements, ` +
		alias + `.imagery, ` + alias + `.raw_text, ` + alias + `.created_at, ` + alias + `.updated_at`
}

func (cr *creativeRow) scanDest() []any {
	return []any{
		&cr.ID, &cr.CampaignID, &cr.Placement, &cr.Dimensions, &cr.Format,
		&cr.LayoutGrid, &cr.Background, &cr.TextBlocks, &cr.CTAButtons,
		&cr.BrandLogo, &cr.BrandColors, &cr.Slogan, &cr.LegalDisclaimer,
		&cr.Decorative, &cr.Imagery, &cr.RawText, &cr.CreatedAt, &cr.UpdatedAt,
	}
}

func (cr *creativeRow) toDomain() (*domain.Creative, error) {
	c := &domain.Creative{
		ID:              cr.ID,
		CampaignID:      cr.CampaignID,
		Placement:       domain.Placement(cr.Placement),
		Format:          domain.Format(cr.Format),
		LayoutGrid:      domain.LayoutGrid(cr.LayoutGrid),
		Slogan:          cr.Slogan,
		LegalDisclaimer: cr.LegalDisclaimer,
		RawText:         cr.RawText,
		CreatedAt:       cr.CreatedAt,
		UpdatedAt:       cr.UpdatedAt,
	}
	for _, field := range []struct {
		raw  []byte
		dest any
	}{
		{cr.Dimensions, &c.Dimensions},
		{cr.Background, &c.Background},
		{cr.TextBlocks, &c.TextBlocks},
		{cr.CTAButtons, &c.CTAButtons},
		{cr.BrandLogo, &c.BrandLogo},
		{cr.BrandColors, &c.BrandColors},
		{cr.Decorative, &c.DecorativeElements},
		{cr.Imagery, &c.Imagery},
	} {
		if len(field.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(field.raw, field.dest); err != nil {
			return nil, fmt.Errorf("decoding creative %s: %w", cr.ID, err)
		}
	}
	return c, nil
}
