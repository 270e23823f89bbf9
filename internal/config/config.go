package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/codeprint-dev/codeprint/domain"
	"github.com/codeprint-dev/codeprint/internal/constants"
)

// Config represents the main configuration structure
type Config struct {
	// Analysis holds parsing and language configuration
	Analysis AnalysisConfig `mapstructure:"analysis" yaml:"analysis"`

	// Similarity holds similarity scoring configuration
	Similarity SimilarityConfig `mapstructure:"similarity" yaml:"similarity"`

	// Files holds file collection configuration
	Files FilesConfig `mapstructure:"files" yaml:"files"`

	// Output holds output formatting configuration
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Corpus holds reference corpus configuration
	Corpus CorpusConfig `mapstructure:"corpus" yaml:"corpus"`
}

// AnalysisConfig holds parsing and language configuration
type AnalysisConfig struct {
	// Language selects the grammar used for parsing: python, javascript
	Language string `mapstructure:"language" yaml:"language"`

	// Recursive controls whether directories are scanned recursively
	Recursive bool `mapstructure:"recursive" yaml:"recursive"`
}

// SimilarityConfig holds similarity scoring configuration
type SimilarityConfig struct {
	// FlagThreshold is the minimum score at which a pair is flagged for review
	FlagThreshold float64 `mapstructure:"flag_threshold" yaml:"flag_threshold"`

	// MaxBulkPairs caps the number of pair comparisons a single scan may perform
	MaxBulkPairs int `mapstructure:"max_bulk_pairs" yaml:"max_bulk_pairs"`
}

// FilesConfig holds file collection configuration
type FilesConfig struct {
	// IncludePatterns specifies glob patterns for files to collect
	IncludePatterns []string `mapstructure:"include_patterns" yaml:"include_patterns"`

	// ExcludePatterns specifies glob patterns for paths to skip
	ExcludePatterns []string `mapstructure:"exclude_patterns" yaml:"exclude_patterns"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml, csv
	Format string `mapstructure:"format" yaml:"format"`

	// ShowDetails controls whether detailed breakdowns are shown
	ShowDetails bool `mapstructure:"show_details" yaml:"show_details"`
}

// CorpusConfig holds reference corpus configuration
type CorpusConfig struct {
	// Path is the corpus file consulted by match and corpus commands
	Path string `mapstructure:"path" yaml:"path"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Language:  string(domain.LanguagePython),
			Recursive: true,
		},
		Similarity: SimilarityConfig{
			FlagThreshold: constants.DefaultFlagThreshold,
			MaxBulkPairs:  constants.DefaultMaxBulkPairs,
		},
		Files: FilesConfig{
			IncludePatterns: domain.DefaultIncludePatterns(domain.LanguagePython),
			ExcludePatterns: domain.DefaultExcludePatterns(),
		},
		Output: OutputConfig{
			Format:      string(domain.OutputFormatText),
			ShowDetails: false,
		},
		Corpus: CorpusConfig{
			Path: domain.DefaultCorpusFileName,
		},
	}
}

// LoadConfig loads configuration from file or returns default config
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	// If no config path specified, try to find default config files
	if configPath == "" {
		configPath = findDefaultConfig()
	}

	// If still no config found, return default
	if configPath == "" {
		return config, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	// Unmarshal into config struct
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// findDefaultConfig looks for default configuration files in common locations
func findDefaultConfig() string {
	candidates := []string{
		".codeprint.toml",
		"codeprint.toml",
		".codeprint.yaml",
		".codeprint.yml",
	}

	// Check current directory first
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	// Check home directory
	if home, err := os.UserHomeDir(); err == nil {
		for _, candidate := range candidates {
			path := filepath.Join(home, candidate)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if !domain.Language(c.Analysis.Language).IsValid() {
		return fmt.Errorf("invalid analysis.language '%s', must be one of: python, javascript", c.Analysis.Language)
	}

	if c.Similarity.FlagThreshold < 0.0 || c.Similarity.FlagThreshold > 1.0 {
		return fmt.Errorf("similarity.flag_threshold must be between 0.0 and 1.0, got %f", c.Similarity.FlagThreshold)
	}

	if c.Similarity.MaxBulkPairs < 1 {
		return fmt.Errorf("similarity.max_bulk_pairs must be >= 1, got %d", c.Similarity.MaxBulkPairs)
	}

	if !domain.OutputFormat(c.Output.Format).IsValid() {
		return fmt.Errorf("invalid output.format '%s', must be one of: text, json, yaml, csv", c.Output.Format)
	}

	if len(c.Files.IncludePatterns) == 0 {
		return fmt.Errorf("files.include_patterns cannot be empty")
	}

	if c.Corpus.Path == "" {
		return fmt.Errorf("corpus.path cannot be empty")
	}

	return nil
}

// SaveConfig saves configuration to a file
func SaveConfig(config *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)

	v.Set("analysis", config.Analysis)
	v.Set("similarity", config.Similarity)
	v.Set("files", config.Files)
	v.Set("output", config.Output)
	v.Set("corpus", config.Corpus)

	return v.WriteConfig()
}

// LanguageOrDefault returns the configured language, falling back to python
// when the configured value is unknown.
func (c *Config) LanguageOrDefault() domain.Language {
	lang := domain.Language(c.Analysis.Language)
	if !lang.IsValid() {
		return domain.LanguagePython
	}
	return lang
}
