// Package match resolves scored candidate pairs into a conflict-free
// one-to-one assignment between two record collections.
package match

import (
	"log/slog"
	"sort"

	"github.com/bibtools/bibmerge/internal/bib"
	"github.com/bibtools/bibmerge/internal/similarity"
)

// Greedy resolves the surviving score set into a partial one-to-one
// assignment. For each first-collection key in file order it picks the
// highest-scoring surviving candidate, then removes every pair touching
// either selected key so no key is claimed twice. Ties are broken
// lexicographically on the second-collection key.
//
// The result is deterministic but not globally optimal: an early key can
// claim a candidate a later key would have scored higher with. That is a
// deliberate simplicity tradeoff.
func Greedy(set *similarity.ScoreSet, first, second *bib.Collection) []bib.KeyPair {
	type candidate struct {
		pair  bib.KeyPair
		score float64
	}

	keysB := second.Keys()
	var matches []bib.KeyPair

	for _, keyA := range first.Keys() {
		var candidates []candidate
		for _, keyB := range keysB {
			pair := bib.KeyPair{First: keyA, Second: keyB}
			if score, ok := set.Get(pair); ok {
				candidates = append(candidates, candidate{pair: pair, score: score})
			}
		}
		if len(candidates) == 0 {
			continue
		}

		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].score != candidates[j].score {
				return candidates[i].score > candidates[j].score
			}
			return candidates[i].pair.Second < candidates[j].pair.Second
		})

		best := candidates[0]
		slog.Info("Matched entries",
			"first", best.pair.First, "second", best.pair.Second, "score", best.score)
		matches = append(matches, best.pair)
		set.DeleteInvolving(best.pair.First, best.pair.Second)
	}

	return matches
}
