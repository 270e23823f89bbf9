package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/codeprint-dev/codeprint/app"
	"github.com/codeprint-dev/codeprint/domain"
	"github.com/codeprint-dev/codeprint/internal/parser"
	"github.com/codeprint-dev/codeprint/service"
)

var (
	fingerprintLanguage string

	// Output format flags (only one should be true)
	fingerprintJSON bool
	fingerprintCSV  bool
	fingerprintYAML bool

	fingerprintOutputPath  string
	fingerprintShowDetails bool
	fingerprintConfigPath  string
)

// fingerprintCmd represents the fingerprint command
var fingerprintCmd = &cobra.Command{
	Use:   "fingerprint <file>",
	Short: "Show the structural fingerprint of a source file",
	Long: `Fingerprint a source file and print its structural token string.

The file is parsed, normalized down to its structural node types and
serialized as "type:depth" tokens. This is the representation every
similarity score is computed from, so the command is mostly useful for
debugging unexpected scores.

The language is inferred from the file extension unless --language is set.

Examples:
  codeprint fingerprint submission.py
  codeprint fingerprint --details submission.py   # Include token weights
  codeprint fingerprint --json submission.py
  codeprint fingerprint app.js                    # Parsed as JavaScript`,
	Args: cobra.ExactArgs(1),
	RunE: runFingerprintCommand,
}

func init() {
	rootCmd.AddCommand(fingerprintCmd)

	// Analysis options
	fingerprintCmd.Flags().StringVarP(&fingerprintLanguage, "language", "l", "python", "Source language (python|javascript); inferred from the extension when not set")

	// Output options
	fingerprintCmd.Flags().BoolVar(&fingerprintJSON, "json", false, "Output as JSON")
	fingerprintCmd.Flags().BoolVar(&fingerprintCSV, "csv", false, "Output as CSV")
	fingerprintCmd.Flags().BoolVar(&fingerprintYAML, "yaml", false, "Output as YAML")
	fingerprintCmd.Flags().StringVarP(&fingerprintOutputPath, "out", "o", "", "Write the report to a file instead of stdout")
	fingerprintCmd.Flags().BoolVarP(&fingerprintShowDetails, "details", "d", false, "Show per-token weights")

	// Configuration
	fingerprintCmd.Flags().StringVarP(&fingerprintConfigPath, "config", "c", "", "Configuration file path")
}

func runFingerprintCommand(cmd *cobra.Command, args []string) error {
	outputFormat, _, err := service.NewOutputFormatResolver().Determine(fingerprintJSON, fingerprintCSV, fingerprintYAML)
	if err != nil {
		return err
	}

	language, err := parseLanguage(fingerprintLanguage)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("language") {
		if inferred, ok := parser.LanguageForFile(args[0]); ok {
			language = domain.Language(inferred.String())
		}
	}

	request := domain.FingerprintRequest{
		Language:     language,
		OutputFormat: outputFormat,
		OutputWriter: os.Stdout,
		OutputPath:   fingerprintOutputPath,
		ShowDetails:  fingerprintShowDetails,
		ConfigPath:   fingerprintConfigPath,
	}

	useCase := app.NewFingerprintUseCase(
		service.NewSimilarityService(nil),
		service.NewFileReader(),
		service.NewFingerprintFormatter(),
		service.NewFingerprintConfigurationLoader(),
	)

	return useCase.FingerprintFile(cmd.Context(), args[0], request)
}
