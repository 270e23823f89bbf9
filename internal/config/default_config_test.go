package config

import (
	"strings"
	"testing"
)

func TestGenerateDefaultConfigTOML(t *testing.T) {
	content, err := GenerateDefaultConfigTOML()
	if err != nil {
		t.Fatalf("Failed to generate default config: %v", err)
	}

	sections := []string{"[analysis]", "[similarity]", "[files]", "[output]", "[corpus]"}
	for _, section := range sections {
		if !strings.Contains(content, section) {
			t.Errorf("Expected generated config to contain %s", section)
		}
	}

	if !strings.Contains(content, "flag_threshold = 0.75") {
		t.Error("Expected generated config to contain the default flag threshold")
	}
	if !strings.Contains(content, `path = "corpus.jsonl"`) {
		t.Error("Expected generated config to contain the default corpus path")
	}
}

func TestLoadDefaultConfigFromTOML(t *testing.T) {
	cfg, err := LoadDefaultConfigFromTOML()
	if err != nil {
		t.Fatalf("Failed to parse generated default config: %v", err)
	}

	// The rendered template must round-trip to the programmatic defaults
	defaults := DefaultConfig()
	if cfg.Analysis.Language != defaults.Analysis.Language {
		t.Errorf("Language mismatch: template %s, defaults %s", cfg.Analysis.Language, defaults.Analysis.Language)
	}
	if cfg.Similarity.FlagThreshold != defaults.Similarity.FlagThreshold {
		t.Errorf("FlagThreshold mismatch: template %f, defaults %f", cfg.Similarity.FlagThreshold, defaults.Similarity.FlagThreshold)
	}
	if cfg.Similarity.MaxBulkPairs != defaults.Similarity.MaxBulkPairs {
		t.Errorf("MaxBulkPairs mismatch: template %d, defaults %d", cfg.Similarity.MaxBulkPairs, defaults.Similarity.MaxBulkPairs)
	}
	if len(cfg.Files.IncludePatterns) != len(defaults.Files.IncludePatterns) {
		t.Errorf("IncludePatterns mismatch: template %v, defaults %v", cfg.Files.IncludePatterns, defaults.Files.IncludePatterns)
	}
	if cfg.Corpus.Path != defaults.Corpus.Path {
		t.Errorf("Corpus path mismatch: template %s, defaults %s", cfg.Corpus.Path, defaults.Corpus.Path)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Generated default config failed validation: %v", err)
	}
}

func TestMaxSamplesForPairs(t *testing.T) {
	testCases := []struct {
		pairs    int
		expected int
	}{
		{4950, 100},
		{10, 5},
		{1, 2},
		{3, 3},
		{0, 1},
	}

	for _, tc := range testCases {
		result := maxSamplesForPairs(tc.pairs)
		if result != tc.expected {
			t.Errorf("maxSamplesForPairs(%d): expected %d, got %d", tc.pairs, tc.expected, result)
		}
	}
}
