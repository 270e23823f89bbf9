package service

import (
	"github.com/codeprint-dev/codeprint/domain"
	"github.com/codeprint-dev/codeprint/internal/config"
)

// CompareConfigurationLoaderWithFlags wraps compare configuration loading
// with explicit flag tracking
type CompareConfigurationLoaderWithFlags struct {
	loader      *CompareConfigurationLoaderImpl
	flagTracker *config.FlagTracker
}

// NewCompareConfigurationLoaderWithFlags creates a compare configuration
// loader that tracks explicit flags
func NewCompareConfigurationLoaderWithFlags(explicitFlags map[string]bool) *CompareConfigurationLoaderWithFlags {
	return &CompareConfigurationLoaderWithFlags{
		loader:      NewCompareConfigurationLoader(),
		flagTracker: config.NewFlagTrackerWithFlags(explicitFlags),
	}
}

// LoadConfig loads configuration from the specified path
func (c *CompareConfigurationLoaderWithFlags) LoadConfig(path string) (*domain.CompareRequest, error) {
	return c.loader.LoadConfig(path)
}

// LoadDefaultConfig loads the default configuration
func (c *CompareConfigurationLoaderWithFlags) LoadDefaultConfig() *domain.CompareRequest {
	return c.loader.LoadDefaultConfig()
}

// MergeConfig merges CLI flags with configuration file, respecting explicit flags
func (c *CompareConfigurationLoaderWithFlags) MergeConfig(base *domain.CompareRequest, override *domain.CompareRequest) *domain.CompareRequest {
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

	merged.Language = domain.Language(c.flagTracker.MergeString(string(merged.Language), string(override.Language), "language"))
	merged.FlagThreshold = c.flagTracker.MergeFloat64(merged.FlagThreshold, override.FlagThreshold, "flag-threshold")

	// Format comes from dedicated format flags, so a non-text override is
	// always deliberate
	if override.OutputFormat != "" {
		if override.OutputFormat != domain.OutputFormatText {
			merged.OutputFormat = override.OutputFormat
		} else if c.flagTracker.WasSet("json") || c.flagTracker.WasSet("csv") || c.flagTracker.WasSet("yaml") {
			merged.OutputFormat = override.OutputFormat
		}
	}

	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}
	if override.OutputPath != "" {
		merged.OutputPath = override.OutputPath
	}

	merged.ShowDetails = c.flagTracker.MergeBool(merged.ShowDetails, override.ShowDetails, "details")

	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}

	return &merged
}
