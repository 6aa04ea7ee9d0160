package domain

// RetrievalMatch is a transient ranking result. It is computed per
// generation request and discarded after the prompt is composed; nothing
// here is persisted.
type RetrievalMatch struct {
	CampaignID string
	Similarity float64
	Creative   *Creative
}
