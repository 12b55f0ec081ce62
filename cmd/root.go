package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bibmerge",
		Short: "Merge two bibtex files, resolving duplicate and near-duplicate entries",
		Long: `Bibmerge merges two existing bibtex files (.bib) into a single file.

Not only entries with identical keys are merged but also similar ones: entries are
compared on title, author sequence, and full field text, and pairs scoring above a
similarity threshold are resolved into one-to-one matches.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newMergeCmd())
	cmd.AddCommand(newInspectCmd())

	return cmd
}
