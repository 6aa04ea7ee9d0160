// Package rank implements in-memory cosine-similarity ranking of stored
// campaigns against a query embedding. The candidate set is small, so a
// linear scan is used; there is no persistent index structure.
package rank

import (
	"encoding/json"
	"math"
	"sort"

	"adcraft/internal/core/domain"
	"adcraft/internal/core/port"
)

// SimilarityFloor is the exclusive lower bound for a candidate to be
// considered at all. Weak matches bias generation worse than no match.
const SimilarityFloor = 0.2

// DefaultTopK is used when the caller passes a non-positive k.
const DefaultTopK = 3

// Candidate is a decoded campaign ready for ranking.
type Candidate struct {
	CampaignID string
	Embedding  []float32
	Creative   *domain.Creative
}

// CosineSimilarity returns dot(a,b)/(|a||b|) clamped to [-1,1]. It returns
// 0 when the lengths differ or either vector has zero magnitude; callers
// treat that as a data-quality condition, not an error.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	return math.Max(-1, math.Min(1, sim))
}

// DecodeEmbedding decodes the serialized storage form of an embedding, a
// JSON array of floats. A decode failure excludes only that candidate.
func DecodeEmbedding(raw []byte) ([]float32, error) {
	var vec []float32
	if err := json.Unmarshal(raw, &vec); err != nil {
		return nil, err
	}
	return vec, nil
}

// Decode converts stored exemplar candidates into rankable ones, dropping
// any whose embedding cannot be decoded. It returns the survivors and the
// number dropped.
func Decode(stored []port.ExemplarCandidate) ([]Candidate, int) {
	out := make([]Candidate, 0, len(stored))
	dropped := 0
	for _, s := range stored {
		vec, err := DecodeEmbedding(s.Embedding)
		if err != nil || len(vec) == 0 {
			dropped++
			continue
		}
		out = append(out, Candidate{
			CampaignID: s.CampaignID,
			Embedding:  vec,
			Creative:   s.Creative,
		})
	}
	return out, dropped
}

// Rank scores candidates against the query, drops everything at or below
// SimilarityFloor, and returns the top k matches ordered by similarity
// descending. Ties break by ascending campaign id so results do not depend
// on storage order.
func Rank(query []float32, candidates []Candidate, k int) []domain.RetrievalMatch {
	if k <= 0 {
		k = DefaultTopK
	}
	matches := make([]domain.RetrievalMatch, 0, len(candidates))
	for _, c := range candidates {
		sim := CosineSimilarity(query, c.Embedding)
		if sim <= SimilarityFloor {
			continue
		}
		matches = append(matches, domain.RetrievalMatch{
			CampaignID: c.CampaignID,
			Similarity: sim,
			Creative:   c.Creative,
		})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].CampaignID < matches[j].CampaignID
	})
	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}
