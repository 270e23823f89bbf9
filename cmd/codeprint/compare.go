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
	compareLanguage      string
	compareFlagThreshold float64

	// Output format flags (only one should be true)
	compareJSON bool
	compareCSV  bool
	compareYAML bool

	compareOutputPath  string
	compareShowDetails bool
	compareConfigPath  string
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <fileA> <fileB>",
	Short: "Compare two source files for structural similarity",
	Long: `Compare two source files and report how structurally similar they are.

Both files are fingerprinted and scored with depth-weighted cosine
similarity. Scores at or above the flag threshold mark the pair as
suspicious; the confidence band tells you how seriously to take it.

Examples:
  codeprint compare alice.py bob.py             # Compare two submissions
  codeprint compare --json alice.py bob.py      # Machine-readable output
  codeprint compare --flag-threshold 0.9 a.py b.py
  codeprint compare --language javascript a.js b.js
  codeprint compare --details a.py b.py         # Include token statistics`,
	Args: cobra.ExactArgs(2),
	RunE: runCompareCommand,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	// Analysis options
	compareCmd.Flags().StringVarP(&compareLanguage, "language", "l", "python", "Source language (python|javascript)")
	compareCmd.Flags().Float64VarP(&compareFlagThreshold, "flag-threshold", "t", constants.DefaultFlagThreshold, "Similarity score that flags a pair as suspicious (0.0-1.0)")

	// Output options
	compareCmd.Flags().BoolVar(&compareJSON, "json", false, "Output as JSON")
	compareCmd.Flags().BoolVar(&compareCSV, "csv", false, "Output as CSV")
	compareCmd.Flags().BoolVar(&compareYAML, "yaml", false, "Output as YAML")
	compareCmd.Flags().StringVarP(&compareOutputPath, "out", "o", "", "Write the report to a file instead of stdout")
	compareCmd.Flags().BoolVarP(&compareShowDetails, "details", "d", false, "Show per-token weight details")

	// Configuration
	compareCmd.Flags().StringVarP(&compareConfigPath, "config", "c", "", "Configuration file path")
}

func runCompareCommand(cmd *cobra.Command, args []string) error {
	outputFormat, _, err := service.NewOutputFormatResolver().Determine(compareJSON, compareCSV, compareYAML)
	if err != nil {
		return err
	}

	language, err := parseLanguage(compareLanguage)
	if err != nil {
		return err
	}

	request := domain.CompareRequest{
		Language:      language,
		FlagThreshold: compareFlagThreshold,
		OutputFormat:  outputFormat,
		OutputWriter:  os.Stdout,
		OutputPath:    compareOutputPath,
		ShowDetails:   compareShowDetails,
		ConfigPath:    compareConfigPath,
	}

	useCase, err := app.NewCompareUseCaseBuilder().
		WithService(service.NewSimilarityService(nil)).
		WithFileReader(service.NewFileReader()).
		WithFormatter(service.NewCompareFormatter()).
		WithConfigLoader(service.NewCompareConfigurationLoaderWithFlags(GetExplicitFlags(cmd))).
		Build()
	if err != nil {
		return fmt.Errorf("failed to create compare use case: %w", err)
	}

	return useCase.CompareFiles(cmd.Context(), args[0], args[1], request)
}
