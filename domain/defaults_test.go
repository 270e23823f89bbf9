package domain

import (
	"testing"
)

// TestDefaultValueConsistency ensures all default values are properly defined
// and maintain expected relationships
func TestDefaultValueConsistency(t *testing.T) {
	t.Run("Include patterns cover every supported language", func(t *testing.T) {
		for _, lang := range SupportedLanguages() {
			patterns := DefaultIncludePatterns(lang)
			if len(patterns) == 0 {
				t.Errorf("Language %q has no default include patterns", lang)
			}
		}
	})

	t.Run("Python include patterns match python sources", func(t *testing.T) {
		patterns := DefaultIncludePatterns(LanguagePython)
		found := false
		for _, p := range patterns {
			if p == "**/*.py" {
				found = true
			}
		}
		if !found {
			t.Errorf("Python include patterns %v should contain **/*.py", patterns)
		}
	})

	t.Run("JavaScript include patterns cover module variants", func(t *testing.T) {
		patterns := DefaultIncludePatterns(LanguageJavaScript)
		if len(patterns) < 2 {
			t.Errorf("JavaScript include patterns %v should cover more than one extension", patterns)
		}
	})

	t.Run("Unknown languages fall back to python patterns", func(t *testing.T) {
		fallback := DefaultIncludePatterns(Language("fortran"))
		if len(fallback) == 0 {
			t.Error("Fallback include patterns should not be empty")
		}
	})

	t.Run("Exclude patterns skip vendored and cache trees", func(t *testing.T) {
		patterns := DefaultExcludePatterns()
		required := []string{"node_modules/**", "__pycache__/**", ".git/**"}
		for _, want := range required {
			found := false
			for _, p := range patterns {
				if p == want {
					found = true
				}
			}
			if !found {
				t.Errorf("Exclude patterns %v should contain %q", patterns, want)
			}
		}
	})

	t.Run("Confidence band names cover every band", func(t *testing.T) {
		bands := []ConfidenceBand{
			ConfidenceBandHigh,
			ConfidenceBandMedium,
			ConfidenceBandLow,
			ConfidenceBandNone,
		}
		for _, band := range bands {
			if ConfidenceBandNames[band] == "" {
				t.Errorf("Band %q has no display name", band)
			}
		}
	})

	t.Run("Corpus file name is a jsonl file", func(t *testing.T) {
		if DefaultCorpusFileName == "" {
			t.Error("Default corpus file name should not be empty")
		}
	})

	t.Run("Matrix cell width is positive", func(t *testing.T) {
		if DefaultMatrixCellWidth <= 0 {
			t.Errorf("Matrix cell width (%d) should be > 0", DefaultMatrixCellWidth)
		}
	})
}
