package port

import (
	"context"

	"adcraft/internal/core/domain"
)

// ExemplarCandidate is one stored campaign offered to the similarity
// ranker. Embedding carries the serialized form straight from storage; the
// ranker decodes it and drops candidates it cannot decode.
type ExemplarCandidate struct {
	CampaignID string
	PromptText string
	Embedding  []byte
	Creative   *domain.Creative
}

// CampaignRepository is the outbound persistence port. Campaign prompts
// are append-only; creatives are saved with upsert-by-id semantics so the
// imagery merge can re-save the same record.
type CampaignRepository interface {
	// SaveCampaignPrompt stores a new campaign prompt row.
	SaveCampaignPrompt(ctx context.Context, p *domain.CampaignPrompt) error
	// ListExemplarCandidates returns stored campaigns paired with their most
	// recent creative, for exemplar retrieval.
	ListExemplarCandidates(ctx context.Context) ([]ExemplarCandidate, error)
	// SaveCreative inserts or updates a creative by id.
	SaveCreative(ctx context.Context, c *domain.Creative) error
	// GetCreative returns a creative by id, or nil when absent.
	GetCreative(ctx context.Context, id string) (*domain.Creative, error)
	// ListCreatives returns up to limit creatives, newest first.
	ListCreatives(ctx context.Context, limit int) ([]domain.Creative, error)
	// ListCreativesByCampaign returns all creatives of one campaign.
	ListCreativesByCampaign(ctx context.Context, campaignID string) ([]domain.Creative, error)
}
