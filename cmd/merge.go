package cmd

import (
	"github.com/bibtools/bibmerge/internal/mergecmd"
	"github.com/spf13/cobra"
)

func newMergeCmd() *cobra.Command {
	opts := mergecmd.MergeOptions{}

	cmd := &cobra.Command{
		Use:   "merge FILE1 FILE2",
		Short: "Merge two bibtex files into one",
		Long: `Merges two bibtex files into a single output file.

By default entries are matched by similarity: titles are compared with an
edit-distance ratio, author last names with a sequence ratio, and all fields
with a per-pair TF-IDF cosine. Matched entries are written as groups holding
the preferred entry plus the other entry commented out.`,
		Example: `  # Merge by similarity into merged.bib
  bibmerge merge refs_a.bib refs_b.bib

  # Merge only entries whose cite keys are identical
  bibmerge merge refs_a.bib refs_b.bib --only-identical

  # Prefer the second file's entries and overwrite an existing output
  bibmerge merge refs_a.bib refs_b.bib --prefer-second --overwrite

  # Show what would be merged without writing anything
  bibmerge merge refs_a.bib refs_b.bib --dry-run`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mergecmd.ExecuteMerge(args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "merged.bib", "Name of the merged output file")
	cmd.Flags().BoolVar(&opts.Overwrite, "overwrite", false, "Overwrite an existing output file")
	cmd.Flags().BoolVar(&opts.PreferSecond, "prefer-second", false, "Prefer the second file's entry for matched pairs")
	cmd.Flags().BoolVar(&opts.OnlyIdentical, "only-identical", false, "Merge only entries with identical cite keys")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Print planned actions without writing any file")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 4, "Number of concurrent scoring workers")

	return cmd
}
