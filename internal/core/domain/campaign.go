package domain

import "time"

// CampaignPrompt is the natural-language brief a campaign was generated
// from, together with its embedding vector. Rows are append-only: a prompt
// is written once per generation request and never updated in place.
type CampaignPrompt struct {
	ID        string
	Text      string
	Embedding []float32
	CreatedAt time.Time
}
