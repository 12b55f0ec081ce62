// Package mergecmd implements the merge and inspect subcommands.
package mergecmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bibtools/bibmerge/internal/bib"
	"github.com/bibtools/bibmerge/internal/corpus"
	"github.com/bibtools/bibmerge/internal/match"
	"github.com/bibtools/bibmerge/internal/similarity"
)

// MergeOptions is the merge command's configuration surface.
type MergeOptions struct {
	Output        string
	Overwrite     bool
	PreferSecond  bool
	OnlyIdentical bool
	DryRun        bool
	Concurrency   int
}

// ExecuteMerge runs the full merge pipeline: validate paths, load both
// collections, resolve matches via the exact-key or similarity path, and
// write the merged output file.
func ExecuteMerge(firstFile, secondFile string, opts MergeOptions) error {
	if opts.DryRun {
		slog.Info("Starting dry run: no files will be written")
	}

	// Fail fast on bad paths before any parsing or scoring happens.
	for _, path := range []string{firstFile, secondFile} {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("%w: %s", bib.ErrInputNotFound, path)
		}
	}
	if err := bib.CheckOutput(opts.Output, opts.Overwrite); err != nil {
		return err
	}

	first, err := bib.Load(firstFile)
	if err != nil {
		return err
	}
	second, err := bib.Load(secondFile)
	if err != nil {
		return err
	}
	slog.Info("Loaded both bibtex files",
		"first", first.Len(), "second", second.Len())

	var matches []bib.KeyPair
	if opts.OnlyIdentical {
		slog.Info("Looking for entries with identical keys")
		matches = match.ExactKeys(first, second)
	} else {
		slog.Info("Looking for similar entries")
		matches, err = similarityMatches(first, second, opts.Concurrency)
		if err != nil {
			return err
		}
	}

	writeOpts := bib.WriteOptions{
		PreferSecond: opts.PreferSecond,
		Overwrite:    opts.Overwrite,
		DryRun:       opts.DryRun,
	}
	if err := bib.WriteMerged(opts.Output, matches, first, second, writeOpts); err != nil {
		return err
	}

	printMergeSummary(matches, opts)
	return nil
}

func similarityMatches(first, second *bib.Collection, concurrency int) ([]bib.KeyPair, error) {
	stopwords, err := corpus.Stopwords("english")
	if err != nil {
		return nil, fmt.Errorf("failed to load stopword corpus: %w", err)
	}

	engine := similarity.NewEngine(stopwords, concurrency)
	scores, err := engine.ScoreAll(first, second)
	if err != nil {
		return nil, err
	}

	set := similarity.ApplyThreshold(scores)
	return match.Greedy(set, first, second), nil
}

func printMergeSummary(matches []bib.KeyPair, opts MergeOptions) {
	fmt.Println("\n========================================")
	fmt.Println("Merge Summary")
	fmt.Println("========================================")
	fmt.Printf("Matched entries:  %d\n", len(matches))
	for _, m := range matches {
		fmt.Printf("  %s <-> %s\n", m.First, m.Second)
	}
	if opts.DryRun {
		fmt.Println("Dry run: nothing was written.")
	} else {
		fmt.Printf("Output written to: %s\n", opts.Output)
	}
	fmt.Println("========================================")
}
