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

// ScanCommand represents the bulk scan command
type ScanCommand struct {
	// Input options
	recursive       bool
	includePatterns []string
	excludePatterns []string

	// Analysis options
	language      string
	flagThreshold float64
	maxPairs      int

	// Output options
	json        bool
	csv         bool
	yaml        bool
	outputPath  string
	showDetails bool

	// Configuration
	configFile string
	verbose    bool
}

// NewScanCommand creates a new scan command with default settings
func NewScanCommand() *ScanCommand {
	return &ScanCommand{
		recursive:       true,
		includePatterns: []string{},
		excludePatterns: []string{},
		language:        "python",
		flagThreshold:   constants.DefaultFlagThreshold,
		maxPairs:        constants.DefaultMaxBulkPairs,
		json:            false,
		csv:             false,
		yaml:            false,
		outputPath:      "",
		showDetails:     false,
		configFile:      "",
		verbose:         false,
	}
}

// CreateCobraCommand creates the cobra command for bulk scanning
func (c *ScanCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan directories for suspiciously similar files",
		Long: `Scan directories and compare every pair of source files.

Each file is fingerprinted once, then all pairs are scored with
depth-weighted cosine similarity. Pairs at or above the flag threshold
are reported as suspicious, sorted by score. The full similarity matrix
is available in the structured output formats.

The number of pair comparisons grows quadratically with the file count,
so large scans are rejected up front when they would exceed the pair
ceiling. Raise --max-pairs deliberately if you need a bigger scan.

Examples:
  codeprint scan submissions/                  # Scan one directory
  codeprint scan hw1/ hw2/                     # Scan multiple directories
  codeprint scan --json submissions/           # Machine-readable output
  codeprint scan --flag-threshold 0.9 .        # Only flag near-identical pairs
  codeprint scan --include "**/*.py" --exclude "**/test_*.py" .
  codeprint scan --max-pairs 20000 submissions/`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScan(cmd, args)
		},
	}

	// Input flags
	cmd.Flags().BoolVarP(&c.recursive, "recursive", "r", c.recursive,
		"Scan directories recursively")
	cmd.Flags().StringSliceVar(&c.includePatterns, "include", c.includePatterns,
		"Include file patterns (e.g. \"**/*.py\")")
	cmd.Flags().StringSliceVar(&c.excludePatterns, "exclude", c.excludePatterns,
		"Exclude file patterns (e.g. \"**/test_*.py\")")

	// Analysis flags
	cmd.Flags().StringVarP(&c.language, "language", "l", c.language,
		"Source language (python|javascript)")
	cmd.Flags().Float64VarP(&c.flagThreshold, "flag-threshold", "t", c.flagThreshold,
		"Similarity score that flags a pair as suspicious (0.0-1.0)")
	cmd.Flags().IntVar(&c.maxPairs, "max-pairs", c.maxPairs,
		"Maximum number of pair comparisons before the scan is rejected")

	// Output flags
	cmd.Flags().BoolVar(&c.json, "json", c.json, "Output as JSON")
	cmd.Flags().BoolVar(&c.csv, "csv", c.csv, "Output as CSV")
	cmd.Flags().BoolVar(&c.yaml, "yaml", c.yaml, "Output as YAML")
	cmd.Flags().StringVarP(&c.outputPath, "out", "o", c.outputPath,
		"Write the report to a file instead of stdout")
	cmd.Flags().BoolVarP(&c.showDetails, "details", "d", c.showDetails,
		"Show the full similarity matrix in text output")

	// Configuration flags
	cmd.Flags().StringVarP(&c.configFile, "config", "c", c.configFile,
		"Configuration file path")
	cmd.Flags().BoolVarP(&c.verbose, "verbose", "v", c.verbose,
		"Enable verbose output")

	return cmd
}

// runScan executes the scan command
func (c *ScanCommand) runScan(cmd *cobra.Command, args []string) error {
	// Default to the current directory when no paths are given
	if len(args) == 0 {
		args = []string{"."}
	}

	request, err := c.createScanRequest(args)
	if err != nil {
		return err
	}

	useCase, err := c.createScanUseCase(cmd)
	if err != nil {
		return fmt.Errorf("failed to create scan use case: %w", err)
	}

	return useCase.Execute(cmd.Context(), *request)
}

// determineOutputFormat determines the output format based on flags
func (c *ScanCommand) determineOutputFormat() (domain.OutputFormat, string, error) {
	resolver := service.NewOutputFormatResolver()
	return resolver.Determine(c.json, c.csv, c.yaml)
}

// createScanRequest creates a scan request from command line flags
func (c *ScanCommand) createScanRequest(paths []string) (*domain.ScanRequest, error) {
	outputFormat, _, err := c.determineOutputFormat()
	if err != nil {
		return nil, err
	}

	language, err := parseLanguage(c.language)
	if err != nil {
		return nil, err
	}

	return &domain.ScanRequest{
		Paths:           paths,
		Recursive:       c.recursive,
		IncludePatterns: c.includePatterns,
		ExcludePatterns: c.excludePatterns,
		Language:        language,
		FlagThreshold:   c.flagThreshold,
		MaxPairs:        c.maxPairs,
		OutputFormat:    outputFormat,
		OutputWriter:    os.Stdout,
		OutputPath:      c.outputPath,
		ShowDetails:     c.showDetails,
		ConfigPath:      c.configFile,
	}, nil
}

// createScanUseCase creates a scan use case with all dependencies
func (c *ScanCommand) createScanUseCase(cmd *cobra.Command) (*app.ScanUseCase, error) {
	// Track which flags were explicitly set by the user
	explicitFlags := GetExplicitFlags(cmd)

	fileReader := service.NewFileReader()
	progress := service.CreateProgressReporter(cmd.ErrOrStderr(), 0, c.verbose)
	scanService := service.NewScanService(fileReader, progress)
	formatter := service.NewScanFormatter()
	configLoader := service.NewScanConfigurationLoaderWithFlags(explicitFlags)

	return app.NewScanUseCaseBuilder().
		WithService(scanService).
		WithFileReader(fileReader).
		WithFormatter(formatter).
		WithConfigLoader(configLoader).
		WithOutputWriter(service.NewFileOutputWriter(cmd.ErrOrStderr())).
		Build()
}

func init() {
	rootCmd.AddCommand(NewScanCommand().CreateCobraCommand())
}
