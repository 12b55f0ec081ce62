package match

import (
	"log/slog"

	"github.com/bibtools/bibmerge/internal/bib"
)

// ExactKeys matches entries whose cite keys are present verbatim in both
// collections. No similarity scoring happens on this path. Results follow
// first-collection file order.
func ExactKeys(first, second *bib.Collection) []bib.KeyPair {
	var matches []bib.KeyPair
	for _, key := range first.Keys() {
		if _, ok := second.Get(key); !ok {
			continue
		}
		slog.Info("Found identical key", "key", key)
		matches = append(matches, bib.KeyPair{First: key, Second: key})
	}
	return matches
}
