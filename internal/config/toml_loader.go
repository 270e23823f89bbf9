package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// CodeprintTomlConfig represents the structure of .codeprint.toml
type CodeprintTomlConfig struct {
	Analysis   TomlAnalysisConfig   `toml:"analysis"`
	Similarity TomlSimilarityConfig `toml:"similarity"`
	Files      TomlFilesConfig      `toml:"files"`
	Output     TomlOutputConfig     `toml:"output"`
	Corpus     TomlCorpusConfig     `toml:"corpus"`
}

type TomlAnalysisConfig struct {
	Language  string `toml:"language"`
	Recursive *bool  `toml:"recursive"` // pointer to detect unset
}

type TomlSimilarityConfig struct {
	FlagThreshold float64 `toml:"flag_threshold"`
	MaxBulkPairs  int     `toml:"max_bulk_pairs"`
}

type TomlFilesConfig struct {
	IncludePatterns []string `toml:"include_patterns"`
	ExcludePatterns []string `toml:"exclude_patterns"`
}

type TomlOutputConfig struct {
	Format      string `toml:"format"`
	ShowDetails *bool  `toml:"show_details"` // pointer to detect unset
}

type TomlCorpusConfig struct {
	Path string `toml:"path"`
}

// TomlConfigLoader handles TOML-only configuration loading
type TomlConfigLoader struct{}

// NewTomlConfigLoader creates a new TOML configuration loader
func NewTomlConfigLoader() *TomlConfigLoader {
	return &TomlConfigLoader{}
}

// LoadConfig loads configuration starting from the given directory:
// 1. .codeprint.toml found by walking up the directory tree
// 2. defaults
func (l *TomlConfigLoader) LoadConfig(startDir string) (*Config, error) {
	if config, err := l.loadFromCodeprintToml(startDir); err == nil {
		return config, nil
	}

	// Return defaults if no config found
	return DefaultConfig(), nil
}

// LoadConfigFile loads configuration from an explicit TOML file path
func (l *TomlConfigLoader) LoadConfigFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var fileConfig CodeprintTomlConfig
	if err := toml.Unmarshal(data, &fileConfig); err != nil {
		return nil, err
	}

	defaults := DefaultConfig()
	l.mergeTomlConfig(defaults, &fileConfig)

	if err := defaults.Validate(); err != nil {
		return nil, err
	}

	return defaults, nil
}

// loadFromCodeprintToml loads config from the nearest supported config file
func (l *TomlConfigLoader) loadFromCodeprintToml(startDir string) (*Config, error) {
	configPath, err := l.FindConfigFile(startDir)
	if err != nil {
		return nil, err
	}

	return l.LoadConfigFile(configPath)
}

// FindConfigFile walks up the directory tree from startDir and returns the
// first supported config file found. Within a directory the supported names
// are tried in precedence order.
func (l *TomlConfigLoader) FindConfigFile(startDir string) (string, error) {
	dir := startDir
	for {
		for _, name := range l.GetSupportedConfigFiles() {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return "", os.ErrNotExist
}

// mergeTomlConfig merges .codeprint.toml config into defaults
// using pointer booleans to detect unset values
func (l *TomlConfigLoader) mergeTomlConfig(defaults *Config, fileConfig *CodeprintTomlConfig) {
	// Analysis config
	if fileConfig.Analysis.Language != "" {
		defaults.Analysis.Language = fileConfig.Analysis.Language
	}
	// Boolean field: only override if explicitly set
	if fileConfig.Analysis.Recursive != nil {
		defaults.Analysis.Recursive = *fileConfig.Analysis.Recursive
	}

	// Similarity config
	if fileConfig.Similarity.FlagThreshold > 0 {
		defaults.Similarity.FlagThreshold = fileConfig.Similarity.FlagThreshold
	}
	if fileConfig.Similarity.MaxBulkPairs > 0 {
		defaults.Similarity.MaxBulkPairs = fileConfig.Similarity.MaxBulkPairs
	}

	// Files config
	if len(fileConfig.Files.IncludePatterns) > 0 {
		defaults.Files.IncludePatterns = fileConfig.Files.IncludePatterns
	}
	if len(fileConfig.Files.ExcludePatterns) > 0 {
		defaults.Files.ExcludePatterns = fileConfig.Files.ExcludePatterns
	}

	// Output config
	if fileConfig.Output.Format != "" {
		defaults.Output.Format = fileConfig.Output.Format
	}
	if fileConfig.Output.ShowDetails != nil {
		defaults.Output.ShowDetails = *fileConfig.Output.ShowDetails
	}

	// Corpus config
	if fileConfig.Corpus.Path != "" {
		defaults.Corpus.Path = fileConfig.Corpus.Path
	}
}

// GetSupportedConfigFiles returns the list of supported TOML config files
// in order of precedence
func (l *TomlConfigLoader) GetSupportedConfigFiles() []string {
	return []string{
		".codeprint.toml",
		"codeprint.toml",
	}
}
