package cmd

import (
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var (
	configPath string
	outputPath string
	sourceName string
	dryRun     bool
	verbose    bool
)

//nolint:gochecknoglobals // required by cobra CLI pattern
var rootCmd = &cobra.Command{
	Use:   "retrolog <author_name> <days>",
	Short: "Generate a categorized changelog from local git checkouts",
	Long: `A CLI tool that scans a configured set of local repository checkouts for
commits by a given author within a recent time window and generates a
per-project Markdown changelog.

Commits are grouped by conventional-commit prefix:
- "feat:" entries land in the Features section
- "fix:" entries land in the Bugfixes section
- anything else is left out of the document

Each entry links the abbreviated commit hash to the commit on the
project's remote.`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

//nolint:gochecknoinits // required by cobra CLI pattern
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "changelog.md",
		"Path the changelog is written to")
	rootCmd.Flags().StringVar(&sourceName, "source", "gitcli",
		"Commit source implementation (gitcli, gogit)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"Print the changelog to stdout instead of writing it")
}
