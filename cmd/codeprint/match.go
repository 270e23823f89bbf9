package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codeprint-dev/codeprint/app"
	"github.com/codeprint-dev/codeprint/domain"
	"github.com/codeprint-dev/codeprint/internal/constants"
	"github.com/codeprint-dev/codeprint/service"
)

var (
	matchLanguage      string
	matchCorpusPath    string
	matchFlagThreshold float64

	// Output format flags (only one should be true)
	matchJSON bool
	matchCSV  bool
	matchYAML bool

	matchOutputPath  string
	matchShowDetails bool
	matchConfigPath  string
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <file>",
	Short: "Find the most similar corpus entry for a file",
	Long: `Match a source file against a fingerprint corpus and report the
closest entry.

The submission is fingerprinted and scored against every corpus entry;
the best strictly-greater score wins, with earlier entries winning ties.
An empty corpus reports no match rather than an error.

Examples:
  codeprint match submission.py                     # Match against ./corpus.jsonl
  codeprint match --corpus refs.jsonl submission.py
  codeprint match --json submission.py              # Machine-readable output
  codeprint match --flag-threshold 0.9 submission.py`,
	Args: cobra.ExactArgs(1),
	RunE: runMatchCommand,
}

func init() {
	rootCmd.AddCommand(matchCmd)

	// Analysis options
	matchCmd.Flags().StringVarP(&matchLanguage, "language", "l", "python", "Source language (python|javascript)")
	matchCmd.Flags().StringVar(&matchCorpusPath, "corpus", domain.DefaultCorpusFileName, "Path to the corpus file")
	matchCmd.Flags().Float64VarP(&matchFlagThreshold, "flag-threshold", "t", constants.DefaultFlagThreshold, "Similarity score that flags the match as suspicious (0.0-1.0)")

	// Output options
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Output as JSON")
	matchCmd.Flags().BoolVar(&matchCSV, "csv", false, "Output as CSV")
	matchCmd.Flags().BoolVar(&matchYAML, "yaml", false, "Output as YAML")
	matchCmd.Flags().StringVarP(&matchOutputPath, "out", "o", "", "Write the report to a file instead of stdout")
	matchCmd.Flags().BoolVarP(&matchShowDetails, "details", "d", false, "Show per-entry score details")

	// Configuration
	matchCmd.Flags().StringVarP(&matchConfigPath, "config", "c", "", "Configuration file path")
}

func runMatchCommand(cmd *cobra.Command, args []string) error {
	outputFormat, _, err := service.NewOutputFormatResolver().Determine(matchJSON, matchCSV, matchYAML)
	if err != nil {
		return err
	}

	language, err := parseLanguage(matchLanguage)
	if err != nil {
		return err
	}

	request := domain.MatchRequest{
		Language:      language,
		CorpusPath:    matchCorpusPath,
		FlagThreshold: matchFlagThreshold,
		OutputFormat:  outputFormat,
		OutputWriter:  os.Stdout,
		OutputPath:    matchOutputPath,
		ShowDetails:   matchShowDetails,
		ConfigPath:    matchConfigPath,
	}

	useCase, err := app.NewMatchUseCaseBuilder().
		WithService(service.NewSimilarityService(service.NewCorpusStore())).
		WithFileReader(service.NewFileReader()).
		WithFormatter(service.NewMatchFormatter()).
		WithConfigLoader(service.NewMatchConfigurationLoaderWithFlags(GetExplicitFlags(cmd))).
		Build()
	if err != nil {
		return fmt.Errorf("failed to create match use case: %w", err)
	}

	return useCase.MatchFile(cmd.Context(), args[0], request)
}
