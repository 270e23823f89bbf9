package domain

// ============================================================================
// File Collection Defaults
// ============================================================================

// DefaultIncludePatterns returns the glob patterns used to collect source
// files for the given language.
func DefaultIncludePatterns(language Language) []string {
	switch language {
	case LanguageJavaScript:
		return []string{"**/*.js", "**/*.jsx", "**/*.mjs", "**/*.cjs"}
	default:
		return []string{"**/*.py"}
	}
}

// DefaultExcludePatterns returns the glob patterns for paths skipped during
// collection. Vendored trees, caches and environments rarely hold original
// student or author work and mostly produce noise pairs.
func DefaultExcludePatterns() []string {
	return []string{
		"node_modules/**",
		"__pycache__/**",
		".git/**",
		".venv/**",
		"venv/**",
		"dist/**",
		"build/**",
	}
}

// ============================================================================
// Corpus Defaults
// ============================================================================

const (
	// DefaultCorpusFileName is the corpus file used when none is specified.
	// One JSON object per line, each with an "id" and a "tokens" field.
	DefaultCorpusFileName = "corpus.jsonl"
)

// ============================================================================
// Display Defaults
// ============================================================================

// ConfidenceBandNames provides human-readable names for confidence bands
var ConfidenceBandNames = map[ConfidenceBand]string{
	ConfidenceBandHigh:   "High",
	ConfidenceBandMedium: "Medium",
	ConfidenceBandLow:    "Low",
	ConfidenceBandNone:   "None",
}

// DefaultMatrixCellWidth is the column width used when rendering the
// similarity matrix in text output.
const DefaultMatrixCellWidth = 8
