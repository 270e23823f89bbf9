package service

import (
	"github.com/codeprint-dev/codeprint/domain"
	"github.com/codeprint-dev/codeprint/internal/config"
)

// ScanConfigurationLoaderWithFlags wraps scan configuration loading with
// explicit flag tracking
type ScanConfigurationLoaderWithFlags struct {
	loader      *ScanConfigurationLoaderImpl
	flagTracker *config.FlagTracker
}

// NewScanConfigurationLoaderWithFlags creates a scan configuration loader
// that tracks explicit flags
func NewScanConfigurationLoaderWithFlags(explicitFlags map[string]bool) *ScanConfigurationLoaderWithFlags {
	return &ScanConfigurationLoaderWithFlags{
		loader:      NewScanConfigurationLoader(),
		flagTracker: config.NewFlagTrackerWithFlags(explicitFlags),
	}
}

// LoadConfig loads configuration from the specified path
func (s *ScanConfigurationLoaderWithFlags) LoadConfig(path string) (*domain.ScanRequest, error) {
	return s.loader.LoadConfig(path)
}

// LoadDefaultConfig loads the default configuration
func (s *ScanConfigurationLoaderWithFlags) LoadDefaultConfig() *domain.ScanRequest {
	return s.loader.LoadDefaultConfig()
}

// MergeConfig merges CLI flags with configuration file, respecting explicit flags
func (s *ScanConfigurationLoaderWithFlags) MergeConfig(base *domain.ScanRequest, override *domain.ScanRequest) *domain.ScanRequest {
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

	merged.Recursive = s.flagTracker.MergeBool(merged.Recursive, override.Recursive, "recursive")
	merged.IncludePatterns = s.flagTracker.MergeStringSlice(merged.IncludePatterns, override.IncludePatterns, "include")
	merged.ExcludePatterns = s.flagTracker.MergeStringSlice(merged.ExcludePatterns, override.ExcludePatterns, "exclude")

	merged.Language = domain.Language(s.flagTracker.MergeString(string(merged.Language), string(override.Language), "language"))
	merged.FlagThreshold = s.flagTracker.MergeFloat64(merged.FlagThreshold, override.FlagThreshold, "flag-threshold")
	merged.MaxPairs = s.flagTracker.MergeInt(merged.MaxPairs, override.MaxPairs, "max-pairs")

	if override.OutputFormat != "" {
		if override.OutputFormat != domain.OutputFormatText {
			merged.OutputFormat = override.OutputFormat
		} else if s.flagTracker.WasSet("json") || s.flagTracker.WasSet("csv") || s.flagTracker.WasSet("yaml") {
			merged.OutputFormat = override.OutputFormat
		}
	}

	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}
	if override.OutputPath != "" {
		merged.OutputPath = override.OutputPath
	}

	merged.ShowDetails = s.flagTracker.MergeBool(merged.ShowDetails, override.ShowDetails, "details")

	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}

	return &merged
}
