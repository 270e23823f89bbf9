package service

import (
	"github.com/codeprint-dev/codeprint/domain"
	"github.com/codeprint-dev/codeprint/internal/config"
)

// MatchConfigurationLoaderWithFlags wraps match configuration loading with
// explicit flag tracking
type MatchConfigurationLoaderWithFlags struct {
	loader      *MatchConfigurationLoaderImpl
	flagTracker *config.FlagTracker
}

// NewMatchConfigurationLoaderWithFlags creates a match configuration loader
// that tracks explicit flags
func NewMatchConfigurationLoaderWithFlags(explicitFlags map[string]bool) *MatchConfigurationLoaderWithFlags {
	return &MatchConfigurationLoaderWithFlags{
		loader:      NewMatchConfigurationLoader(),
		flagTracker: config.NewFlagTrackerWithFlags(explicitFlags),
	}
}

// LoadConfig loads configuration from the specified path
func (m *MatchConfigurationLoaderWithFlags) LoadConfig(path string) (*domain.MatchRequest, error) {
	return m.loader.LoadConfig(path)
}

// LoadDefaultConfig loads the default configuration
func (m *MatchConfigurationLoaderWithFlags) LoadDefaultConfig() *domain.MatchRequest {
	return m.loader.LoadDefaultConfig()
}

// MergeConfig merges CLI flags with configuration file, respecting explicit flags
func (m *MatchConfigurationLoaderWithFlags) MergeConfig(base *domain.MatchRequest, override *domain.MatchRequest) *domain.MatchRequest {
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

	merged.CorpusPath = m.flagTracker.MergeString(merged.CorpusPath, override.CorpusPath, "corpus")
	merged.Language = domain.Language(m.flagTracker.MergeString(string(merged.Language), string(override.Language), "language"))
	merged.FlagThreshold = m.flagTracker.MergeFloat64(merged.FlagThreshold, override.FlagThreshold, "flag-threshold")

	if override.OutputFormat != "" {
		if override.OutputFormat != domain.OutputFormatText {
			merged.OutputFormat = override.OutputFormat
		} else if m.flagTracker.WasSet("json") || m.flagTracker.WasSet("csv") || m.flagTracker.WasSet("yaml") {
			merged.OutputFormat = override.OutputFormat
		}
	}

	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}
	if override.OutputPath != "" {
		merged.OutputPath = override.OutputPath
	}

	merged.ShowDetails = m.flagTracker.MergeBool(merged.ShowDetails, override.ShowDetails, "details")

	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}

	return &merged
}
