package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"text/template"

	"github.com/pelletier/go-toml/v2"

	"github.com/codeprint-dev/codeprint/domain"
	"github.com/codeprint-dev/codeprint/internal/constants"
)

// defaultConfigTmpl contains the embedded default configuration template
//
//go:embed default_config.toml.tmpl
var defaultConfigTmpl string

// DefaultConfigValues holds all values used to render the default config template.
// All values are sourced from internal/constants and the domain package so the
// generated file cannot drift from the code.
type DefaultConfigValues struct {
	// Analysis
	Language string

	// Similarity
	FlagThreshold             float64
	MaxBulkPairs              int
	MaxBulkSamples            int
	HighConfidenceThreshold   float64
	MediumConfidenceThreshold float64
	LowConfidenceThreshold    float64

	// Files
	IncludePatterns []string
	ExcludePatterns []string

	// Output
	OutputFormat string

	// Corpus
	CorpusPath string
}

// newDefaultConfigValues creates a DefaultConfigValues populated from shared constants.
func newDefaultConfigValues() DefaultConfigValues {
	return DefaultConfigValues{
		Language: domain.LanguagePython.String(),

		FlagThreshold:             constants.DefaultFlagThreshold,
		MaxBulkPairs:              constants.DefaultMaxBulkPairs,
		MaxBulkSamples:            maxSamplesForPairs(constants.DefaultMaxBulkPairs),
		HighConfidenceThreshold:   constants.HighConfidenceThreshold,
		MediumConfidenceThreshold: constants.MediumConfidenceThreshold,
		LowConfidenceThreshold:    constants.LowConfidenceThreshold,

		IncludePatterns: domain.DefaultIncludePatterns(domain.LanguagePython),
		ExcludePatterns: domain.DefaultExcludePatterns(),

		OutputFormat: domain.OutputFormatText.String(),

		CorpusPath: domain.DefaultCorpusFileName,
	}
}

// maxSamplesForPairs inverts n*(n-1)/2 <= pairs to recover the largest batch
// size the pair budget admits.
func maxSamplesForPairs(pairs int) int {
	if pairs < 1 {
		return 1
	}
	n := int((1 + math.Sqrt(1+8*float64(pairs))) / 2)
	for n*(n-1)/2 > pairs {
		n--
	}
	return n
}

// GenerateDefaultConfigTOML renders the default config template with shared
// constants and returns the resulting TOML string.
func GenerateDefaultConfigTOML() (string, error) {
	tmpl, err := template.New("default_config").Parse(defaultConfigTmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse default config template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, newDefaultConfigValues()); err != nil {
		return "", fmt.Errorf("failed to render default config template: %w", err)
	}

	return buf.String(), nil
}

// LoadDefaultConfigFromTOML parses the embedded default config and returns the
// full Config struct. Round-tripping through the TOML loader keeps the
// template honest: a malformed template fails here rather than in user hands.
func LoadDefaultConfigFromTOML() (*Config, error) {
	configTOML, err := GenerateDefaultConfigTOML()
	if err != nil {
		return nil, err
	}

	var tomlCfg CodeprintTomlConfig
	if err := toml.Unmarshal([]byte(configTOML), &tomlCfg); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	loader := &TomlConfigLoader{}
	loader.mergeTomlConfig(cfg, &tomlCfg)

	return cfg, nil
}
