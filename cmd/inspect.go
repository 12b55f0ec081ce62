package cmd

import (
	"github.com/bibtools/bibmerge/internal/mergecmd"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	opts := mergecmd.InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect FILE1 FILE2",
		Short: "Score every candidate pair without merging",
		Long: `Scores the full cross product of entries from both files and reports the
per-signal and aggregate similarity scores. Useful for understanding why a
pair was or was not merged, and for tuning expectations around the 0.70
threshold.`,
		Example: `  # Print kept pairs to the terminal
  bibmerge inspect refs_a.bib refs_b.bib

  # Include below-threshold pairs and save everything as YAML
  bibmerge inspect refs_a.bib refs_b.bib --all --format yaml --output scores.yaml

  # Save scores as Parquet for analysis
  bibmerge inspect refs_a.bib refs_b.bib --format parquet --output scores.parquet`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mergecmd.ExecuteInspect(args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Report format: text, yaml, or parquet")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Report file path (required for yaml and parquet)")
	cmd.Flags().BoolVar(&opts.IncludeAll, "all", false, "Include pairs below the similarity threshold")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 4, "Number of concurrent scoring workers")

	return cmd
}
