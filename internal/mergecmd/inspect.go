package mergecmd

import (
	"fmt"
	"log/slog"

	"github.com/bibtools/bibmerge/internal/bib"
	"github.com/bibtools/bibmerge/internal/corpus"
	"github.com/bibtools/bibmerge/internal/report"
	"github.com/bibtools/bibmerge/internal/similarity"
)

// InspectOptions is the inspect command's configuration surface.
type InspectOptions struct {
	Format      string
	Output      string
	IncludeAll  bool
	Concurrency int
}

// ExecuteInspect scores every candidate pair across the two collections and
// renders the scores for threshold tuning, without touching the merge path.
func ExecuteInspect(firstFile, secondFile string, opts InspectOptions) error {
	first, err := bib.Load(firstFile)
	if err != nil {
		return err
	}
	second, err := bib.Load(secondFile)
	if err != nil {
		return err
	}

	stopwords, err := corpus.Stopwords("english")
	if err != nil {
		return fmt.Errorf("failed to load stopword corpus: %w", err)
	}

	engine := similarity.NewEngine(stopwords, opts.Concurrency)
	scores, err := engine.ScoreAll(first, second)
	if err != nil {
		return err
	}

	rep := report.Build(firstFile, secondFile, scores, opts.IncludeAll)

	switch opts.Format {
	case "text":
		rep.PrintText()
		return nil
	case "yaml":
		if opts.Output == "" {
			return fmt.Errorf("yaml format requires --output")
		}
		if err := rep.WriteYAML(opts.Output); err != nil {
			return err
		}
	case "parquet":
		if opts.Output == "" {
			return fmt.Errorf("parquet format requires --output")
		}
		if err := rep.WriteParquet(opts.Output); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, yaml, parquet)", opts.Format)
	}

	slog.Info("Score report written", "format", opts.Format, "path", opts.Output)
	return nil
}
