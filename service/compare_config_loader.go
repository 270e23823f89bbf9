package service

import (
	"os"

	"github.com/codeprint-dev/codeprint/domain"
	"github.com/codeprint-dev/codeprint/internal/config"
)

// CompareConfigurationLoaderImpl implements the domain.CompareConfigurationLoader interface
type CompareConfigurationLoaderImpl struct{}

// NewCompareConfigurationLoader creates a new compare configuration loader
func NewCompareConfigurationLoader() *CompareConfigurationLoaderImpl {
	return &CompareConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (c *CompareConfigurationLoaderImpl) LoadConfig(path string) (*domain.CompareRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}

	return c.convertToCompareRequest(cfg), nil
}

// LoadDefaultConfig loads the default configuration, preferring a config file
// found in the current directory
func (c *CompareConfigurationLoaderImpl) LoadDefaultConfig() *domain.CompareRequest {
	configFile := c.FindDefaultConfigFile()
	if configFile != "" {
		if configReq, err := c.LoadConfig(configFile); err == nil {
			return configReq
		}
		// If loading failed, fall back to hardcoded defaults
	}

	return c.convertToCompareRequest(config.DefaultConfig())
}

// MergeConfig merges CLI flags with configuration file
func (c *CompareConfigurationLoaderImpl) MergeConfig(base *domain.CompareRequest, override *domain.CompareRequest) *domain.CompareRequest {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	merged := *base

	// Labels and code always come from command arguments
	if override.LabelA != "" {
		merged.LabelA = override.LabelA
	}
	if override.LabelB != "" {
		merged.LabelB = override.LabelB
	}
	if override.CodeA != "" {
		merged.CodeA = override.CodeA
	}
	if override.CodeB != "" {
		merged.CodeB = override.CodeB
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
	// ShowDetails defaults to false, so an override of true is always explicit
	if override.ShowDetails {
		merged.ShowDetails = true
	}

	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}

	return &merged
}

// convertToCompareRequest converts internal config to a domain request
func (c *CompareConfigurationLoaderImpl) convertToCompareRequest(cfg *config.Config) *domain.CompareRequest {
	return &domain.CompareRequest{
		Language:      cfg.LanguageOrDefault(),
		FlagThreshold: cfg.Similarity.FlagThreshold,
		OutputFormat:  outputFormatFromConfig(cfg.Output.Format),
		OutputWriter:  os.Stdout,
		ShowDetails:   cfg.Output.ShowDetails,
	}
}

// FindDefaultConfigFile looks for TOML config files, walking up from the
// working directory
func (c *CompareConfigurationLoaderImpl) FindDefaultConfigFile() string {
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

// outputFormatFromConfig converts a config format string to a domain output
// format, falling back to text for unknown values.
func outputFormatFromConfig(format string) domain.OutputFormat {
	switch format {
	case "json":
		return domain.OutputFormatJSON
	case "yaml":
		return domain.OutputFormatYAML
	case "csv":
		return domain.OutputFormatCSV
	default:
		return domain.OutputFormatText
	}
}
