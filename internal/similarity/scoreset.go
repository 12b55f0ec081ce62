package similarity

import (
	"github.com/bibtools/bibmerge/internal/bib"
)

// ScoreSet is the owned collection of surviving pair scores. The aggregation
// step fills it, then hands it to the matcher, which consumes it by removal.
type ScoreSet struct {
	scores map[bib.KeyPair]float64
}

// NewScoreSet returns an empty score set.
func NewScoreSet() *ScoreSet {
	return &ScoreSet{scores: make(map[bib.KeyPair]float64)}
}

// Set records the aggregate score for a pair.
func (s *ScoreSet) Set(pair bib.KeyPair, score float64) {
	s.scores[pair] = score
}

// Get returns the score for a pair, if it is still in the set.
func (s *ScoreSet) Get(pair bib.KeyPair) (float64, bool) {
	score, ok := s.scores[pair]
	return score, ok
}

// Len returns the number of surviving pairs.
func (s *ScoreSet) Len() int {
	return len(s.scores)
}

// DeleteInvolving removes every pair whose first key is firstKey or whose
// second key is secondKey. This is what keeps the final assignment
// one-to-one: once a pair is selected, neither of its keys can be claimed
// again.
func (s *ScoreSet) DeleteInvolving(firstKey, secondKey string) {
	for pair := range s.scores {
		if pair.First == firstKey || pair.Second == secondKey {
			delete(s.scores, pair)
		}
	}
}
