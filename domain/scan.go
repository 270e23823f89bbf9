package domain

import (
	"context"
	"io"

	"github.com/codeprint-dev/codeprint/internal/constants"
)

// SuspiciousPair represents a pair of files whose similarity crossed the flag threshold
type SuspiciousPair struct {
	FileA        string         `json:"file_a" yaml:"file_a" csv:"file_a"`
	FileB        string         `json:"file_b" yaml:"file_b" csv:"file_b"`
	Score        float64        `json:"score" yaml:"score" csv:"score"`
	Confidence   ConfidenceBand `json:"confidence" yaml:"confidence" csv:"confidence"`
	SharedTokens int            `json:"shared_tokens" yaml:"shared_tokens" csv:"shared_tokens"`
}

// ScanSummary provides aggregate statistics for a bulk scan
type ScanSummary struct {
	TotalFiles    int     `json:"total_files" yaml:"total_files" csv:"total_files"`
	SkippedFiles  int     `json:"skipped_files" yaml:"skipped_files" csv:"skipped_files"`
	ComparedPairs int     `json:"compared_pairs" yaml:"compared_pairs" csv:"compared_pairs"`
	FlaggedPairs  int     `json:"flagged_pairs" yaml:"flagged_pairs" csv:"flagged_pairs"`
	FlagThreshold float64 `json:"flag_threshold" yaml:"flag_threshold" csv:"flag_threshold"`
}

// ScanRequest represents a request for a bulk all-pairs scan
type ScanRequest struct {
	// Input parameters
	Paths           []string `json:"paths"`
	Recursive       bool     `json:"recursive"`
	IncludePatterns []string `json:"include_patterns"`
	ExcludePatterns []string `json:"exclude_patterns"`

	// Analysis configuration
	Language      Language `json:"language"`
	FlagThreshold float64  `json:"flag_threshold"`
	MaxPairs      int      `json:"max_pairs"`

	// Output configuration
	OutputFormat OutputFormat `json:"output_format"`
	OutputWriter io.Writer    `json:"-"`
	OutputPath   string       `json:"output_path"`
	ShowDetails  bool         `json:"show_details"`

	// Configuration file
	ConfigPath string `json:"config_path"`
}

// ScanResponse represents the result of a bulk all-pairs scan
type ScanResponse struct {
	// Results
	Labels          []string         `json:"labels" yaml:"labels" csv:"labels"`
	Matrix          [][]float64      `json:"matrix" yaml:"matrix" csv:"-"`
	SuspiciousPairs []SuspiciousPair `json:"suspicious_pairs" yaml:"suspicious_pairs" csv:"suspicious_pairs"`
	Summary         *ScanSummary     `json:"summary" yaml:"summary" csv:"summary"`

	// Files that could not be fingerprinted and were left out of the matrix
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty" csv:"-"`

	// Metadata
	Duration int64 `json:"duration_ms" yaml:"duration_ms" csv:"duration_ms"`
}

// ScanService defines the core business logic for bulk scanning
type ScanService interface {
	// Scan collects source files from the request paths and compares every pair
	Scan(ctx context.Context, req *ScanRequest) (*ScanResponse, error)

	// ScanFiles compares every pair among the given files
	ScanFiles(ctx context.Context, filePaths []string, req *ScanRequest) (*ScanResponse, error)
}

// ScanOutputFormatter defines the interface for formatting scan results
type ScanOutputFormatter interface {
	// Format formats the scan response according to the specified format
	Format(response *ScanResponse, format OutputFormat) (string, error)

	// Write writes the formatted output to the writer
	Write(response *ScanResponse, format OutputFormat, writer io.Writer) error
}

// ScanConfigurationLoader defines the interface for loading scan configuration
type ScanConfigurationLoader interface {
	// LoadConfig loads configuration from the specified path
	LoadConfig(path string) (*ScanRequest, error)

	// LoadDefaultConfig loads the default configuration
	LoadDefaultConfig() *ScanRequest

	// MergeConfig merges CLI flags with configuration file
	MergeConfig(base *ScanRequest, override *ScanRequest) *ScanRequest
}

// Validate validates a scan request
func (req *ScanRequest) Validate() error {
	if len(req.Paths) == 0 {
		return NewValidationError("paths cannot be empty")
	}

	if !req.Language.IsValid() {
		return NewValidationError("unsupported language: " + string(req.Language))
	}

	if req.FlagThreshold < 0.0 || req.FlagThreshold > 1.0 {
		return NewValidationError("flag_threshold must be between 0.0 and 1.0")
	}

	if req.MaxPairs < 1 {
		return NewValidationError("max_pairs must be >= 1")
	}

	return nil
}

// DefaultScanRequest returns a default scan request
func DefaultScanRequest() *ScanRequest {
	return &ScanRequest{
		Paths:           []string{"."},
		Recursive:       true,
		IncludePatterns: DefaultIncludePatterns(LanguagePython),
		ExcludePatterns: DefaultExcludePatterns(),
		Language:        LanguagePython,
		FlagThreshold:   constants.DefaultFlagThreshold,
		MaxPairs:        constants.DefaultMaxBulkPairs,
		OutputFormat:    OutputFormatText,
		ShowDetails:     false,
	}
}
