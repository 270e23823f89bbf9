package service

import (
	"os"

	"github.com/codeprint-dev/codeprint/domain"
	"github.com/codeprint-dev/codeprint/internal/config"
)

// ScanConfigurationLoaderImpl implements the domain.ScanConfigurationLoader interface
type ScanConfigurationLoaderImpl struct{}

// NewScanConfigurationLoader creates a new scan configuration loader
func NewScanConfigurationLoader() *ScanConfigurationLoaderImpl {
	return &ScanConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (s *ScanConfigurationLoaderImpl) LoadConfig(path string) (*domain.ScanRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}

	return s.convertToScanRequest(cfg), nil
}

// LoadDefaultConfig loads the default configuration, preferring a config file
// found in the current directory
func (s *ScanConfigurationLoaderImpl) LoadDefaultConfig() *domain.ScanRequest {
	configFile := s.FindDefaultConfigFile()
	if configFile != "" {
		if configReq, err := s.LoadConfig(configFile); err == nil {
			return configReq
		}
	}

	return s.convertToScanRequest(config.DefaultConfig())
}

// MergeConfig merges CLI flags with configuration file
func (s *ScanConfigurationLoaderImpl) MergeConfig(base *domain.ScanRequest, override *domain.ScanRequest) *domain.ScanRequest {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	merged := *base

	// Paths always come from command arguments
	if len(override.Paths) > 0 {
		merged.Paths = override.Paths
	}

	if len(override.IncludePatterns) > 0 {
		merged.IncludePatterns = override.IncludePatterns
	}
	if len(override.ExcludePatterns) > 0 {
		merged.ExcludePatterns = override.ExcludePatterns
	}

	if override.Language != "" {
		merged.Language = override.Language
	}
	if override.FlagThreshold > 0 {
		merged.FlagThreshold = override.FlagThreshold
	}
	if override.MaxPairs > 0 {
		merged.MaxPairs = override.MaxPairs
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

// convertToScanRequest converts internal config to a domain request
func (s *ScanConfigurationLoaderImpl) convertToScanRequest(cfg *config.Config) *domain.ScanRequest {
	return &domain.ScanRequest{
		Recursive:       cfg.Analysis.Recursive,
		IncludePatterns: cfg.Files.IncludePatterns,
		ExcludePatterns: cfg.Files.ExcludePatterns,
		Language:        cfg.LanguageOrDefault(),
		FlagThreshold:   cfg.Similarity.FlagThreshold,
		MaxPairs:        cfg.Similarity.MaxBulkPairs,
		OutputFormat:    outputFormatFromConfig(cfg.Output.Format),
		OutputWriter:    os.Stdout,
		ShowDetails:     cfg.Output.ShowDetails,
	}
}

// FindDefaultConfigFile looks for TOML config files, walking up from the
// working directory so a scan run from a subdirectory still picks up the
// project's config
func (s *ScanConfigurationLoaderImpl) FindDefaultConfigFile() string {
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
