package similarity

import (
	"log/slog"
	"sync"

	"github.com/bibtools/bibmerge/internal/bib"
)

// PairScore is one scored candidate pair from the cross product of the two
// collections.
type PairScore struct {
	Pair      bib.KeyPair
	Signals   Signals
	Aggregate float64
}

// Engine scores every candidate pair across two collections. Scoring is pure
// and per-pair independent, so pairs are fanned out over a bounded number of
// workers; results land in a pre-sized slice indexed by enumeration order so
// the output is deterministic regardless of scheduling.
type Engine struct {
	stopwords   map[string]struct{}
	concurrency int
}

// NewEngine creates an engine using the given stopword set. Concurrency
// below 1 is treated as 1.
func NewEngine(stopwords map[string]struct{}, concurrency int) *Engine {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Engine{stopwords: stopwords, concurrency: concurrency}
}

// ScoreAll scores the full |first| x |second| cross product, enumerated in
// first-collection file order then second-collection file order. Every record
// in both collections must carry the scorer-required fields; a missing title
// or author fails the whole run.
func (e *Engine) ScoreAll(first, second *bib.Collection) ([]PairScore, error) {
	if err := validateRequiredFields(first); err != nil {
		return nil, err
	}
	if err := validateRequiredFields(second); err != nil {
		return nil, err
	}

	keysA := first.Keys()
	keysB := second.Keys()
	scores := make([]PairScore, len(keysA)*len(keysB))

	slog.Info("Scoring candidate pairs",
		"first", len(keysA), "second", len(keysB),
		"pairs", len(scores), "concurrency", e.concurrency)

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, e.concurrency)

	for i, keyA := range keysA {
		recA, _ := first.Get(keyA)
		for j, keyB := range keysB {
			recB, _ := second.Get(keyB)
			idx := i*len(keysB) + j

			wg.Add(1)
			go func(idx int, a, b *bib.Record) {
				defer wg.Done()
				semaphore <- struct{}{}        // Acquire
				defer func() { <-semaphore }() // Release

				scores[idx] = e.scorePair(a, b)
			}(idx, recA, recB)
		}
	}
	wg.Wait()

	return scores, nil
}

func (e *Engine) scorePair(a, b *bib.Record) PairScore {
	signals := Signals{
		Title:  TitleSimilarity(a.Fields["title"], b.Fields["title"], e.stopwords),
		Author: AuthorSimilarity(a.LastNameTokens(), b.LastNameTokens()),
		Field:  FieldSimilarity(a.AllFieldsText(), b.AllFieldsText(), e.stopwords),
	}
	return PairScore{
		Pair:      bib.KeyPair{First: a.CiteKey, Second: b.CiteKey},
		Signals:   signals,
		Aggregate: signals.Aggregate(),
	}
}

// ApplyThreshold keeps the pairs whose aggregate score survives the cutoff
// and returns them as the owned score set handed to the matcher.
func ApplyThreshold(scores []PairScore) *ScoreSet {
	set := NewScoreSet()
	for _, s := range scores {
		if s.Aggregate < Threshold {
			continue
		}
		set.Set(s.Pair, s.Aggregate)
	}
	slog.Info("Applied aggregate threshold",
		"threshold", Threshold, "scored", len(scores), "surviving", set.Len())
	return set
}

func validateRequiredFields(c *bib.Collection) error {
	for _, key := range c.Keys() {
		r, _ := c.Get(key)
		if _, ok := r.Fields["title"]; !ok {
			return &bib.MissingFieldError{CiteKey: key, Field: "title"}
		}
		if len(r.Authors) == 0 {
			return &bib.MissingFieldError{CiteKey: key, Field: "author"}
		}
	}
	return nil
}
