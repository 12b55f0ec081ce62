package similarity

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Term is a single term-weight pair in a sparse vector.
type Term struct {
	Word   string
	Weight float64
}

// Vector is a sparse TF-IDF vector sorted by Word so two vectors can be
// combined with a merge join.
type Vector []Term

// PairVectors builds L2-normalized TF-IDF vectors for exactly the two
// documents being compared. The vector space is scoped to the pair on
// purpose: inverse document frequency is computed over these two documents
// only, which keeps the discriminative terms local to the comparison.
//
// Terms are lowercased alphanumeric runs of at least two characters with
// stopwords removed. IDF uses the smoothed form ln((1+n)/(1+df)) + 1.
func PairVectors(docA, docB string, stopwords map[string]struct{}) (Vector, Vector) {
	tokensA := tokenize(docA, stopwords)
	tokensB := tokenize(docB, stopwords)

	df := make(map[string]int)
	for _, counts := range []map[string]int{tokensA, tokensB} {
		for word := range counts {
			df[word]++
		}
	}

	idf := func(word string) float64 {
		return math.Log(3.0/float64(1+df[word])) + 1.0
	}

	return weightVector(tokensA, idf), weightVector(tokensB, idf)
}

// Cosine computes the cosine similarity of two sorted sparse vectors with a
// merge join. Returns 0 if either vector is empty.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot, normA, normB float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Word == b[j].Word:
			dot += a[i].Weight * b[j].Weight
			normA += a[i].Weight * a[i].Weight
			normB += b[j].Weight * b[j].Weight
			i++
			j++
		case a[i].Word < b[j].Word:
			normA += a[i].Weight * a[i].Weight
			i++
		default:
			normB += b[j].Weight * b[j].Weight
			j++
		}
	}
	for ; i < len(a); i++ {
		normA += a[i].Weight * a[i].Weight
	}
	for ; j < len(b); j++ {
		normB += b[j].Weight * b[j].Weight
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}

func weightVector(counts map[string]int, idf func(string) float64) Vector {
	if len(counts) == 0 {
		return nil
	}

	v := make(Vector, 0, len(counts))
	var norm float64
	for word, tf := range counts {
		w := float64(tf) * idf(word)
		norm += w * w
		v = append(v, Term{Word: word, Weight: w})
	}

	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range v {
			v[i].Weight /= norm
		}
	}

	sort.Slice(v, func(i, j int) bool {
		return v[i].Word < v[j].Word
	})
	return v
}

// tokenize lowercases the document and counts alphanumeric runs of at least
// two characters, skipping stopwords.
func tokenize(doc string, stopwords map[string]struct{}) map[string]int {
	counts := make(map[string]int)
	lower := strings.ToLower(doc)

	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		word := lower[start:end]
		start = -1
		if len([]rune(word)) < 2 {
			return
		}
		if _, skip := stopwords[word]; skip {
			return
		}
		counts[word]++
	}

	for i, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(lower))

	return counts
}
