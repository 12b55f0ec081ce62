// Package textnorm normalizes free text for lexical comparison.
package textnorm

import (
	"strings"
)

// punctuation covers the ASCII punctuation characters stripped before
// tokenization. Apostrophes are removed first so contractions collapse
// into a single token ("don't" -> "dont") instead of splitting.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Cleanup normalizes text for similarity scoring. The steps run in a fixed
// order: line breaks become spaces, apostrophes are dropped, remaining
// punctuation is dropped, stopword tokens are removed, and the result is
// lowercased with single-space separation. Cleanup is idempotent.
func Cleanup(text string, stopwords map[string]struct{}) string {
	replaced := strings.NewReplacer("\n", " ", "\r", " ", "'", "").Replace(text)

	var b strings.Builder
	b.Grow(len(replaced))
	for _, r := range replaced {
		if !strings.ContainsRune(punctuation, r) {
			b.WriteRune(r)
		}
	}

	kept := make([]string, 0, 8)
	for _, word := range strings.Fields(b.String()) {
		if _, skip := stopwords[strings.ToLower(word)]; skip {
			continue
		}
		kept = append(kept, word)
	}

	return strings.ToLower(strings.Join(kept, " "))
}
