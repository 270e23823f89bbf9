package domain

import (
	"context"
	"io"

	"github.com/codeprint-dev/codeprint/internal/constants"
)

// Language identifies the grammar used to parse submitted source code.
type Language string

const (
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
)

// String returns string representation of Language
func (l Language) String() string {
	return string(l)
}

// IsValid checks if the language is supported
func (l Language) IsValid() bool {
	switch l {
	case LanguagePython, LanguageJavaScript:
		return true
	default:
		return false
	}
}

// SupportedLanguages returns all languages that can be analyzed
func SupportedLanguages() []Language {
	return []Language{LanguagePython, LanguageJavaScript}
}

// ConfidenceBand classifies a similarity score into a reviewer-facing band.
type ConfidenceBand string

const (
	ConfidenceBandHigh   ConfidenceBand = "high"
	ConfidenceBandMedium ConfidenceBand = "medium"
	ConfidenceBandLow    ConfidenceBand = "low"
	ConfidenceBandNone   ConfidenceBand = "none"
)

// String returns string representation of ConfidenceBand
func (cb ConfidenceBand) String() string {
	return string(cb)
}

// Description returns a human-readable explanation of the band
func (cb ConfidenceBand) Description() string {
	return constants.ConfidenceDescriptions[string(cb)]
}

// CompareRequest represents a request for a pairwise similarity comparison
type CompareRequest struct {
	// Input parameters
	LabelA string `json:"label_a"`
	LabelB string `json:"label_b"`
	CodeA  string `json:"-"`
	CodeB  string `json:"-"`

	// Analysis configuration
	Language      Language `json:"language"`
	FlagThreshold float64  `json:"flag_threshold"`

	// Output configuration
	OutputFormat OutputFormat `json:"output_format"`
	OutputWriter io.Writer    `json:"-"`
	OutputPath   string       `json:"output_path"`
	ShowDetails  bool         `json:"show_details"`

	// Configuration file
	ConfigPath string `json:"config_path"`
}

// CompareResponse represents the result of a pairwise similarity comparison
type CompareResponse struct {
	// Results
	LabelA        string         `json:"label_a" yaml:"label_a" csv:"label_a"`
	LabelB        string         `json:"label_b" yaml:"label_b" csv:"label_b"`
	Score         float64        `json:"score" yaml:"score" csv:"score"`
	Confidence    ConfidenceBand `json:"confidence" yaml:"confidence" csv:"confidence"`
	Flagged       bool           `json:"flagged" yaml:"flagged" csv:"flagged"`
	FlagThreshold float64        `json:"flag_threshold" yaml:"flag_threshold" csv:"flag_threshold"`
	SharedTokens  int            `json:"shared_tokens" yaml:"shared_tokens" csv:"shared_tokens"`
	TotalNodesA   int            `json:"total_nodes_a" yaml:"total_nodes_a" csv:"total_nodes_a"`
	TotalNodesB   int            `json:"total_nodes_b" yaml:"total_nodes_b" csv:"total_nodes_b"`

	// Metadata
	Duration int64 `json:"duration_ms" yaml:"duration_ms" csv:"duration_ms"`
}

// MatchRequest represents a request to find the closest corpus entry
type MatchRequest struct {
	// Input parameters
	Label string `json:"label"`
	Code  string `json:"-"`

	// Corpus
	CorpusPath string `json:"corpus_path"`

	// Analysis configuration
	Language      Language `json:"language"`
	FlagThreshold float64  `json:"flag_threshold"`

	// Output configuration
	OutputFormat OutputFormat `json:"output_format"`
	OutputWriter io.Writer    `json:"-"`
	OutputPath   string       `json:"output_path"`
	ShowDetails  bool         `json:"show_details"`

	// Configuration file
	ConfigPath string `json:"config_path"`
}

// MatchResponse represents the result of a corpus lookup.
//
// MatchedID and TotalNodesMatch are pointers so that a lookup with no
// positive-similarity candidate serializes them as null rather than
// as a misleading zero value.
type MatchResponse struct {
	// Results
	Label            string         `json:"label" yaml:"label" csv:"label"`
	Found            bool           `json:"found" yaml:"found" csv:"found"`
	Score            float64        `json:"score" yaml:"score" csv:"score"`
	Confidence       ConfidenceBand `json:"confidence" yaml:"confidence" csv:"confidence"`
	Flagged          bool           `json:"flagged" yaml:"flagged" csv:"flagged"`
	MatchedID        *string        `json:"matched_id" yaml:"matched_id" csv:"matched_id"`
	SharedTokens     int            `json:"shared_tokens" yaml:"shared_tokens" csv:"shared_tokens"`
	TotalNodesTarget int            `json:"total_nodes_target" yaml:"total_nodes_target" csv:"total_nodes_target"`
	TotalNodesMatch  *int           `json:"total_nodes_match" yaml:"total_nodes_match" csv:"total_nodes_match"`

	// Corpus metadata
	CorpusSize    int `json:"corpus_size" yaml:"corpus_size" csv:"corpus_size"`
	SkippedTokens int `json:"skipped_tokens" yaml:"skipped_tokens" csv:"skipped_tokens"`

	// Metadata
	Duration int64 `json:"duration_ms" yaml:"duration_ms" csv:"duration_ms"`
}

// CompareService defines the core business logic for pairwise comparison
type CompareService interface {
	// Compare fingerprints both inputs and computes their similarity
	Compare(ctx context.Context, req *CompareRequest) (*CompareResponse, error)
}

// MatchService defines the core business logic for corpus lookup
type MatchService interface {
	// Match fingerprints the target and finds the most similar corpus entry
	Match(ctx context.Context, req *MatchRequest) (*MatchResponse, error)
}

// CompareOutputFormatter defines the interface for formatting comparison results
type CompareOutputFormatter interface {
	// Format formats the comparison response according to the specified format
	Format(response *CompareResponse, format OutputFormat) (string, error)

	// Write writes the formatted output to the writer
	Write(response *CompareResponse, format OutputFormat, writer io.Writer) error
}

// MatchOutputFormatter defines the interface for formatting match results
type MatchOutputFormatter interface {
	// Format formats the match response according to the specified format
	Format(response *MatchResponse, format OutputFormat) (string, error)

	// Write writes the formatted output to the writer
	Write(response *MatchResponse, format OutputFormat, writer io.Writer) error
}

// CompareConfigurationLoader defines the interface for loading comparison configuration
type CompareConfigurationLoader interface {
	// LoadConfig loads configuration from the specified path
	LoadConfig(path string) (*CompareRequest, error)

	// LoadDefaultConfig loads the default configuration
	LoadDefaultConfig() *CompareRequest

	// MergeConfig merges CLI flags with configuration file
	MergeConfig(base *CompareRequest, override *CompareRequest) *CompareRequest
}

// MatchConfigurationLoader defines the interface for loading match configuration
type MatchConfigurationLoader interface {
	// LoadConfig loads configuration from the specified path
	LoadConfig(path string) (*MatchRequest, error)

	// LoadDefaultConfig loads the default configuration
	LoadDefaultConfig() *MatchRequest

	// MergeConfig merges CLI flags with configuration file
	MergeConfig(base *MatchRequest, override *MatchRequest) *MatchRequest
}

// FileReader defines the interface for reading and collecting source files
type FileReader interface {
	// CollectSourceFiles recursively finds files for the language in the given paths
	CollectSourceFiles(paths []string, language Language, recursive bool, includePatterns, excludePatterns []string) ([]string, error)

	// ReadFile reads the content of a file
	ReadFile(path string) ([]byte, error)

	// IsValidSourceFile checks if a file carries an extension the language can parse
	IsValidSourceFile(path string, language Language) bool

	// FileExists checks if a file exists and returns an error if not
	FileExists(path string) (bool, error)
}

// Validation methods

// Validate validates a compare request
func (req *CompareRequest) Validate() error {
	if !req.Language.IsValid() {
		return NewValidationError("unsupported language: " + string(req.Language))
	}

	if req.FlagThreshold < 0.0 || req.FlagThreshold > 1.0 {
		return NewValidationError("flag_threshold must be between 0.0 and 1.0")
	}

	return nil
}

// Validate validates a match request
func (req *MatchRequest) Validate() error {
	if req.CorpusPath == "" {
		return NewValidationError("corpus_path cannot be empty")
	}

	if !req.Language.IsValid() {
		return NewValidationError("unsupported language: " + string(req.Language))
	}

	if req.FlagThreshold < 0.0 || req.FlagThreshold > 1.0 {
		return NewValidationError("flag_threshold must be between 0.0 and 1.0")
	}

	return nil
}

// DefaultCompareRequest returns a default compare request
func DefaultCompareRequest() *CompareRequest {
	return &CompareRequest{
		Language:      LanguagePython,
		FlagThreshold: constants.DefaultFlagThreshold,
		OutputFormat:  OutputFormatText,
		ShowDetails:   false,
	}
}

// DefaultMatchRequest returns a default match request
func DefaultMatchRequest() *MatchRequest {
	return &MatchRequest{
		CorpusPath:    DefaultCorpusFileName,
		Language:      LanguagePython,
		FlagThreshold: constants.DefaultFlagThreshold,
		OutputFormat:  OutputFormatText,
		ShowDetails:   false,
	}
}
