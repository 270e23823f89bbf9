package main

import (
	"os"

	"github.com/codeprint-dev/codeprint/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codeprint",
	Short: "A structural code similarity detector",
	Long: `codeprint detects suspiciously similar source code by comparing
structural fingerprints instead of raw text.

Submissions are parsed with tree-sitter, flattened into type:depth token
streams and compared with depth-weighted cosine similarity, so renaming
variables, reordering declarations or reformatting does not hide a copy.

Features:
  • Pairwise comparison of two submissions
  • Corpus lookup for the closest known sample
  • Bulk all-pairs scans over whole assignment directories
  • Python and JavaScript grammars`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	// Remaining subcommands register themselves in their own files
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewInitCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printCommandError(os.Stderr, err)
		os.Exit(1)
	}
}
