package domain

import (
	"context"
	"io"
	"strings"
)

// CorpusEntry is one labeled sample in a reference corpus.
// Tokens holds the sample's canonical token string.
type CorpusEntry struct {
	ID     string `json:"id" yaml:"id"`
	Tokens string `json:"tokens" yaml:"tokens"`
}

// TokenCount returns the number of tokens in the entry
func (e *CorpusEntry) TokenCount() int {
	return len(strings.Fields(e.Tokens))
}

// Validate validates a corpus entry
func (e *CorpusEntry) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return NewValidationError("corpus entry id cannot be empty")
	}

	return nil
}

// CorpusRepository defines the interface for loading and extending reference corpora
type CorpusRepository interface {
	// Load reads all entries from the corpus at the given path
	Load(path string) ([]CorpusEntry, error)

	// Append adds an entry to the corpus, creating the file if needed
	Append(path string, entry CorpusEntry) error
}

// CorpusAddRequest represents a request to add a file to a corpus
type CorpusAddRequest struct {
	// Input parameters
	FilePath string `json:"file_path"`
	ID       string `json:"id"`

	// Corpus
	CorpusPath string `json:"corpus_path"`

	// Analysis configuration
	Language Language `json:"language"`

	// Configuration file
	ConfigPath string `json:"config_path"`
}

// CorpusListRequest represents a request to list corpus entries
type CorpusListRequest struct {
	// Corpus
	CorpusPath string `json:"corpus_path"`

	// Output configuration
	OutputFormat OutputFormat `json:"output_format"`
	OutputWriter io.Writer    `json:"-"`
	OutputPath   string       `json:"output_path"`
}

// CorpusEntrySummary describes one corpus entry without its token payload
type CorpusEntrySummary struct {
	ID         string `json:"id" yaml:"id" csv:"id"`
	TokenCount int    `json:"token_count" yaml:"token_count" csv:"token_count"`
}

// CorpusListResponse represents the entries of a corpus
type CorpusListResponse struct {
	// Results
	CorpusPath string               `json:"corpus_path" yaml:"corpus_path" csv:"corpus_path"`
	Entries    []CorpusEntrySummary `json:"entries" yaml:"entries" csv:"entries"`

	// Metadata
	Duration int64 `json:"duration_ms" yaml:"duration_ms" csv:"duration_ms"`
}

// CorpusService defines the core business logic for corpus maintenance
type CorpusService interface {
	// Add fingerprints a source file and appends it to the corpus
	Add(ctx context.Context, req *CorpusAddRequest) (*CorpusEntry, error)

	// List summarizes the entries stored in a corpus
	List(ctx context.Context, req *CorpusListRequest) (*CorpusListResponse, error)
}

// CorpusListOutputFormatter defines the interface for formatting corpus listings
type CorpusListOutputFormatter interface {
	// Format formats the corpus listing according to the specified format
	Format(response *CorpusListResponse, format OutputFormat) (string, error)

	// Write writes the formatted output to the writer
	Write(response *CorpusListResponse, format OutputFormat, writer io.Writer) error
}

// Validate validates a corpus add request
func (req *CorpusAddRequest) Validate() error {
	if req.FilePath == "" {
		return NewValidationError("file_path cannot be empty")
	}

	if req.CorpusPath == "" {
		return NewValidationError("corpus_path cannot be empty")
	}

	if !req.Language.IsValid() {
		return NewValidationError("unsupported language: " + string(req.Language))
	}

	return nil
}

// Validate validates a corpus list request
func (req *CorpusListRequest) Validate() error {
	if req.CorpusPath == "" {
		return NewValidationError("corpus_path cannot be empty")
	}

	return nil
}

// DefaultCorpusAddRequest returns a default corpus add request
func DefaultCorpusAddRequest() *CorpusAddRequest {
	return &CorpusAddRequest{
		CorpusPath: DefaultCorpusFileName,
		Language:   LanguagePython,
	}
}

// DefaultCorpusListRequest returns a default corpus list request
func DefaultCorpusListRequest() *CorpusListRequest {
	return &CorpusListRequest{
		CorpusPath:   DefaultCorpusFileName,
		OutputFormat: OutputFormatText,
	}
}
