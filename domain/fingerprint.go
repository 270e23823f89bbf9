package domain

import (
	"context"
	"io"
)

// FingerprintRequest represents a request to fingerprint a single piece of code
type FingerprintRequest struct {
	// Input parameters
	Label string `json:"label"`
	Code  string `json:"-"`

	// Analysis configuration
	Language Language `json:"language"`

	// Output configuration
	OutputFormat OutputFormat `json:"output_format"`
	OutputWriter io.Writer    `json:"-"`
	OutputPath   string       `json:"output_path"`
	ShowDetails  bool         `json:"show_details"`

	// Configuration file
	ConfigPath string `json:"config_path"`
}

// FingerprintResponse represents the structural fingerprint of a single input
type FingerprintResponse struct {
	// Results
	Label       string             `json:"label" yaml:"label" csv:"label"`
	Language    Language           `json:"language" yaml:"language" csv:"language"`
	TokenString string             `json:"token_string" yaml:"token_string" csv:"token_string"`
	TokenCount  int                `json:"token_count" yaml:"token_count" csv:"token_count"`
	UniqueTypes int                `json:"unique_types" yaml:"unique_types" csv:"unique_types"`
	Weights     map[string]float64 `json:"weights" yaml:"weights" csv:"-"`

	// Metadata
	Duration int64 `json:"duration_ms" yaml:"duration_ms" csv:"duration_ms"`
}

// FingerprintService defines the core business logic for fingerprinting
type FingerprintService interface {
	// Fingerprint parses the input and produces its structural fingerprint
	Fingerprint(ctx context.Context, req *FingerprintRequest) (*FingerprintResponse, error)
}

// FingerprintOutputFormatter defines the interface for formatting fingerprints
type FingerprintOutputFormatter interface {
	// Format formats the fingerprint response according to the specified format
	Format(response *FingerprintResponse, format OutputFormat) (string, error)

	// Write writes the formatted output to the writer
	Write(response *FingerprintResponse, format OutputFormat, writer io.Writer) error
}

// FingerprintConfigurationLoader defines the interface for loading fingerprint configuration
type FingerprintConfigurationLoader interface {
	// LoadConfig loads configuration from the specified path
	LoadConfig(path string) (*FingerprintRequest, error)

	// LoadDefaultConfig loads the default configuration
	LoadDefaultConfig() *FingerprintRequest

	// MergeConfig merges CLI flags with configuration file
	MergeConfig(base *FingerprintRequest, override *FingerprintRequest) *FingerprintRequest
}

// Validate validates a fingerprint request
func (req *FingerprintRequest) Validate() error {
	if !req.Language.IsValid() {
		return NewValidationError("unsupported language: " + string(req.Language))
	}

	return nil
}

// DefaultFingerprintRequest returns a default fingerprint request
func DefaultFingerprintRequest() *FingerprintRequest {
	return &FingerprintRequest{
		Language:     LanguagePython,
		OutputFormat: OutputFormatText,
		ShowDetails:  false,
	}
}
