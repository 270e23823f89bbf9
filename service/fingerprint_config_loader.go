package service

import (
	"os"

	"github.com/codeprint-dev/codeprint/domain"
	"github.com/codeprint-dev/codeprint/internal/config"
)

// FingerprintConfigurationLoaderImpl implements the domain.FingerprintConfigurationLoader interface
type FingerprintConfigurationLoaderImpl struct{}

// NewFingerprintConfigurationLoader creates a new fingerprint configuration loader
func NewFingerprintConfigurationLoader() *FingerprintConfigurationLoaderImpl {
	return &FingerprintConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (f *FingerprintConfigurationLoaderImpl) LoadConfig(path string) (*domain.FingerprintRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}

	return f.convertToFingerprintRequest(cfg), nil
}

// LoadDefaultConfig loads the default configuration, preferring a config file
// found in the current directory
func (f *FingerprintConfigurationLoaderImpl) LoadDefaultConfig() *domain.FingerprintRequest {
	configFile := f.FindDefaultConfigFile()
	if configFile != "" {
		if configReq, err := f.LoadConfig(configFile); err == nil {
			return configReq
		}
	}

	return f.convertToFingerprintRequest(config.DefaultConfig())
}

// MergeConfig merges CLI flags with configuration file
func (f *FingerprintConfigurationLoaderImpl) MergeConfig(base *domain.FingerprintRequest, override *domain.FingerprintRequest) *domain.FingerprintRequest {
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

	if override.Language != "" {
		merged.Language = override.Language
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

// convertToFingerprintRequest converts internal config to a domain request
func (f *FingerprintConfigurationLoaderImpl) convertToFingerprintRequest(cfg *config.Config) *domain.FingerprintRequest {
	return &domain.FingerprintRequest{
		Language:     cfg.LanguageOrDefault(),
		OutputFormat: outputFormatFromConfig(cfg.Output.Format),
		OutputWriter: os.Stdout,
		ShowDetails:  cfg.Output.ShowDetails,
	}
}

// FindDefaultConfigFile looks for TOML config files, walking up from the
// working directory
func (f *FingerprintConfigurationLoaderImpl) FindDefaultConfigFile() string {
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
