// Package similarity computes pairwise similarity between bibliographic
// records over three independent signals and aggregates them into one score
// per candidate pair.
package similarity

import (
	"github.com/bibtools/bibmerge/internal/textnorm"
)

// Fixed aggregation weights. Title and author are trusted more than the
// holistic field blob.
const (
	TitleWeight  = 0.375
	AuthorWeight = 0.375
	FieldWeight  = 0.25

	// Threshold is the minimum aggregate score a candidate pair needs to
	// stay eligible for matching. Pairs strictly below it are discarded.
	Threshold = 0.70
)

// Signals holds the three per-pair similarity scores.
type Signals struct {
	Title  float64
	Author float64
	Field  float64
}

// Aggregate combines the three signals with the fixed weights.
func (s Signals) Aggregate() float64 {
	return TitleWeight*s.Title + AuthorWeight*s.Author + FieldWeight*s.Field
}

// TitleSimilarity normalizes both titles and computes the character-level
// edit ratio between them.
func TitleSimilarity(a, b string, stopwords map[string]struct{}) float64 {
	return Ratio(textnorm.Cleanup(a, stopwords), textnorm.Cleanup(b, stopwords))
}

// AuthorSimilarity computes the sequence edit ratio over two ordered
// last-name token sequences. Reordering authors lowers the score.
func AuthorSimilarity(a, b []string) float64 {
	return SeqRatio(a, b)
}

// FieldSimilarity builds a TF-IDF space over exactly the two field blobs and
// returns their cosine similarity.
func FieldSimilarity(a, b string, stopwords map[string]struct{}) float64 {
	va, vb := PairVectors(a, b, stopwords)
	return Cosine(va, vb)
}
