package service

import (
	"os"

	"github.com/codeprint-dev/codeprint/domain"
	"github.com/codeprint-dev/codeprint/internal/config"
)

// MatchConfigurationLoaderImpl implements the domain.MatchConfigurationLoader interface
type MatchConfigurationLoaderImpl struct{}

// NewMatchConfigurationLoader creates a new match configuration loader
func NewMatchConfigurationLoader() *MatchConfigurationLoaderImpl {
	return &MatchConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (m *MatchConfigurationLoaderImpl) LoadConfig(path string) (*domain.MatchRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}

	return m.convertToMatchRequest(cfg), nil
}

// LoadDefaultConfig loads the default configuration, preferring a config file
// found in the current directory
func (m *MatchConfigurationLoaderImpl) LoadDefaultConfig() *domain.MatchRequest {
	configFile := m.FindDefaultConfigFile()
	if configFile != "" {
		if configReq, err := m.LoadConfig(configFile); err == nil {
			return configReq
		}
	}

	return m.convertToMatchRequest(config.DefaultConfig())
}

// MergeConfig merges CLI flags with configuration file
func (m *MatchConfigurationLoaderImpl) MergeConfig(base *domain.MatchRequest, override *domain.MatchRequest) *domain.MatchRequest {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	merged := *base

	// Label and code always come from command arguments
	if override.Label != "" {
		merged.Label = override.Label
	}
	if override.Code != "" {
		merged.Code = override.Code
	}

	if override.CorpusPath != "" {
		merged.CorpusPath = override.CorpusPath
	}

	if override.Language != "" {
		merged.Language = override.Language
	}
	if override.FlagThreshold > 0 {
		merged.FlagThreshold = override.FlagThreshold
	}

	if override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}
	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}
	if override.OutputPath != "" {
		merged.OutputPath = override.OutputPath
	}
	if override.ShowDetails {
		merged.ShowDetails = true
	}

	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}

	return &merged
}

// convertToMatchRequest converts internal config to a domain request
func (m *MatchConfigurationLoaderImpl) convertToMatchRequest(cfg *config.Config) *domain.MatchRequest {
	return &domain.MatchRequest{
		CorpusPath:    cfg.Corpus.Path,
		Language:      cfg.LanguageOrDefault(),
		FlagThreshold: cfg.Similarity.FlagThreshold,
		OutputFormat:  outputFormatFromConfig(cfg.Output.Format),
		OutputWriter:  os.Stdout,
		ShowDetails:   cfg.Output.ShowDetails,
	}
}

// FindDefaultConfigFile looks for TOML config files, walking up from the
// working directory
func (m *MatchConfigurationLoaderImpl) FindDefaultConfigFile() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}

	path, err := config.NewTomlConfigLoader().FindConfigFile(wd)
	if err != nil {
		return ""
	}
	return path
}
