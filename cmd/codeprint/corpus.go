package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codeprint-dev/codeprint/app"
	"github.com/codeprint-dev/codeprint/domain"
	"github.com/codeprint-dev/codeprint/service"
)

var (
	corpusAddCorpusPath string
	corpusAddID         string
	corpusAddLanguage   string
	corpusAddConfigPath string

	corpusListCorpusPath string
	corpusListJSON       bool
	corpusListCSV        bool
	corpusListYAML       bool
	corpusListOutputPath string
)

// corpusCmd groups the corpus management subcommands
var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the fingerprint corpus",
	Long: `Manage the fingerprint corpus used by the match command.

A corpus is a JSON Lines file where each line holds one entry: an id and
the structural token string of a known sample. Entries are appended, so
a corpus can be grown one submission at a time.`,
}

// corpusAddCmd represents the corpus add command
var corpusAddCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Fingerprint a file and append it to the corpus",
	Long: `Fingerprint a source file and append it to the corpus.

The entry id defaults to the file path when --id is not given. Adding
the same id twice keeps both entries; the corpus is append-only.

Examples:
  codeprint corpus add reference.py
  codeprint corpus add --id assignment1/reference reference.py
  codeprint corpus add --corpus refs.jsonl reference.py`,
	Args: cobra.ExactArgs(1),
	RunE: runCorpusAddCommand,
}

// corpusListCmd represents the corpus list command
var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the entries stored in the corpus",
	Long: `List the entries stored in a corpus with their token counts.

Examples:
  codeprint corpus list
  codeprint corpus list --corpus refs.jsonl
  codeprint corpus list --json`,
	Args: cobra.NoArgs,
	RunE: runCorpusListCommand,
}

func init() {
	rootCmd.AddCommand(corpusCmd)
	corpusCmd.AddCommand(corpusAddCmd)
	corpusCmd.AddCommand(corpusListCmd)

	corpusAddCmd.Flags().StringVar(&corpusAddCorpusPath, "corpus", domain.DefaultCorpusFileName, "Path to the corpus file")
	corpusAddCmd.Flags().StringVar(&corpusAddID, "id", "", "Entry id (defaults to the file path)")
	corpusAddCmd.Flags().StringVarP(&corpusAddLanguage, "language", "l", "python", "Source language (python|javascript)")
	corpusAddCmd.Flags().StringVarP(&corpusAddConfigPath, "config", "c", "", "Configuration file path")

	corpusListCmd.Flags().StringVar(&corpusListCorpusPath, "corpus", domain.DefaultCorpusFileName, "Path to the corpus file")
	corpusListCmd.Flags().BoolVar(&corpusListJSON, "json", false, "Output as JSON")
	corpusListCmd.Flags().BoolVar(&corpusListCSV, "csv", false, "Output as CSV")
	corpusListCmd.Flags().BoolVar(&corpusListYAML, "yaml", false, "Output as YAML")
	corpusListCmd.Flags().StringVarP(&corpusListOutputPath, "out", "o", "", "Write the report to a file instead of stdout")
}

func newCorpusUseCase() *app.CorpusUseCase {
	corpusService := service.NewCorpusService(service.NewCorpusStore(), service.NewFileReader())
	return app.NewCorpusUseCase(corpusService, service.NewCorpusListFormatter())
}

func runCorpusAddCommand(cmd *cobra.Command, args []string) error {
	language, err := parseLanguage(corpusAddLanguage)
	if err != nil {
		return err
	}

	request := domain.CorpusAddRequest{
		FilePath:   args[0],
		ID:         corpusAddID,
		CorpusPath: corpusAddCorpusPath,
		Language:   language,
		ConfigPath: corpusAddConfigPath,
	}

	entry, err := newCorpusUseCase().AddFile(cmd.Context(), request)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s to %s (%d tokens)\n", entry.ID, corpusAddCorpusPath, entry.TokenCount())
	return nil
}

func runCorpusListCommand(cmd *cobra.Command, args []string) error {
	outputFormat, _, err := service.NewOutputFormatResolver().Determine(corpusListJSON, corpusListCSV, corpusListYAML)
	if err != nil {
		return err
	}

	request := domain.CorpusListRequest{
		CorpusPath:   corpusListCorpusPath,
		OutputFormat: outputFormat,
		OutputWriter: os.Stdout,
		OutputPath:   corpusListOutputPath,
	}

	return newCorpusUseCase().List(cmd.Context(), request)
}
