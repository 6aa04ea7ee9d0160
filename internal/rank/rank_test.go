package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adcraft/internal/core/port"
)

func TestCosineSimilaritySymmetry(t *testing.T) {
	a := []float32{0.3, 0.7, 0.1}
	b := []float32{0.5, 0.2, 0.9}
	assert.Equal(t, CosineSimilarity(a, b), CosineSimilarity(b, a))
}

func TestCosineSimilaritySelf(t *testing.T) {
	a := []float32{0.3, 0.7, 0.1}
	assert.InDelta(t, 1.0, CosineSimilarity(a, a), 1e-9)
}

func TestCosineSimilarityZeroMagnitude(t *testing.T) {
	a := []float32{0, 0, 0}
	b := []float32{0.5, 0.2, 0.9}
	assert.Equal(t, 0.0, CosineSimilarity(a, b))
	assert.Equal(t, 0.0, CosineSimilarity(b, a))
}

func TestCosineSimilarityLengthMismatch(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity([]float32{1, 2}, []float32{1, 2, 3}))
}

func TestCosineSimilarityOpposite(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{-1, 0}
	assert.InDelta(t, -1.0, CosineSimilarity(a, b), 1e-9)
}

func TestRankFiltersBelowFloor(t *testing.T) {
	query := []float32{1, 0, 0, 0}
	candidates := []Candidate{
		{CampaignID: "strong", Embedding: []float32{0.85, 0.5, 0, 0}},
		{CampaignID: "weak", Embedding: []float32{0.1, 1, 0, 0}},
	}
	matches := Rank(query, candidates, 5)
	require.Len(t, matches, 1)
	assert.Equal(t, "strong", matches[0].CampaignID)
	for _, m := range matches {
		assert.Greater(t, m.Similarity, SimilarityFloor)
	}
}

func TestRankOrdersDescendingAndTruncates(t *testing.T) {
	query := []float32{1, 0}
	candidates := []Candidate{
		{CampaignID: "c", Embedding: []float32{0.5, 0.5}},
		{CampaignID: "a", Embedding: []float32{1, 0}},
		{CampaignID: "b", Embedding: []float32{0.9, 0.1}},
	}
	matches := Rank(query, candidates, 2)
	require.Len(t, matches, 2)
	assert.Equal(t, "a", matches[0].CampaignID)
	assert.Equal(t, "b", matches[1].CampaignID)
}

func TestRankTieBreaksByCampaignID(t *testing.T) {
	query := []float32{1, 0}
	// identical vectors, reverse id order in storage
	candidates := []Candidate{
		{CampaignID: "zeta", Embedding: []float32{1, 0}},
		{CampaignID: "alpha", Embedding: []float32{1, 0}},
	}
	matches := Rank(query, candidates, 5)
	require.Len(t, matches, 2)
	assert.Equal(t, "alpha", matches[0].CampaignID)
	assert.Equal(t, "zeta", matches[1].CampaignID)
}

func TestRankDefaultTopK(t *testing.T) {
	query := []float32{1, 0}
	var candidates []Candidate
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		candidates = append(candidates, Candidate{CampaignID: id, Embedding: []float32{1, 0}})
	}
	matches := Rank(query, candidates, 0)
	assert.Len(t, matches, DefaultTopK)
}

func TestDecodeDropsUndecodable(t *testing.T) {
	stored := []port.ExemplarCandidate{
		{CampaignID: "good", Embedding: []byte(`[0.1, 0.2, 0.3]`)},
		{CampaignID: "garbage", Embedding: []byte(`not json`)},
		{CampaignID: "empty", Embedding: []byte(`[]`)},
	}
	candidates, dropped := Decode(stored)
	require.Len(t, candidates, 1)
	assert.Equal(t, "good", candidates[0].CampaignID)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, candidates[0].Embedding)
	assert.Equal(t, 2, dropped)
}

func TestDecodeEmbedding(t *testing.T) {
	vec, err := DecodeEmbedding([]byte(`[1, 0.5]`))
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0.5}, vec)

	_, err = DecodeEmbedding([]byte(`{"not":"a vector"}`))
	assert.Error(t, err)
}

// Two stored campaigns, one at similarity 0.85 and one at 0.1: exactly the
// first is returned, in top position.
func TestRankStrongAndWeakPair(t *testing.T) {
	query := []float32{1, 0, 0}
	candidates := []Candidate{
		{CampaignID: "near", Embedding: []float32{0.85, 0.527, 0}},  // cos ~0.85
		{CampaignID: "far", Embedding: []float32{0.1, 0.995, 0}},    // cos ~0.1
	}
	matches := Rank(query, candidates, 3)
	require.Len(t, matches, 1)
	assert.Equal(t, "near", matches[0].CampaignID)
	assert.InDelta(t, 0.85, matches[0].Similarity, 0.01)
}
