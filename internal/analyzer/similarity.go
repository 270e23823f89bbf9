package analyzer

import (
	"math"

	"github.com/codeprint-dev/codeprint/internal/constants"
)

// Confidence is the coarse review band derived from a similarity score
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	ConfidenceNone   Confidence = "none"
)

// ToConfidence maps a similarity score onto its confidence band
func ToConfidence(score float64) Confidence {
	switch {
	case score >= constants.HighConfidenceThreshold:
		return ConfidenceHigh
	case score >= constants.MediumConfidenceThreshold:
		return ConfidenceMedium
	case score >= constants.LowConfidenceThreshold:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// SimilarityConfig holds the tunable knobs of the similarity engine
type SimilarityConfig struct {
	// FlagThreshold is the score at or above which a pair is surfaced for
	// review. Independent of the confidence bands.
	FlagThreshold float64

	// MaxBulkPairs caps the pair count of a bulk comparison
	MaxBulkPairs int

	// YieldInterval is the number of pair comparisons between voluntary
	// yields during a bulk comparison
	YieldInterval int
}

// DefaultSimilarityConfig returns the standard engine configuration
func DefaultSimilarityConfig() *SimilarityConfig {
	return &SimilarityConfig{
		FlagThreshold: constants.DefaultFlagThreshold,
		MaxBulkPairs:  constants.DefaultMaxBulkPairs,
		YieldInterval: constants.DefaultYieldInterval,
	}
}

// Engine compares structural fingerprints: single pairs, best match in a
// corpus, and bulk all-pairs. Every call is a pure function of its inputs;
// the engine holds configuration only.
type Engine struct {
	config *SimilarityConfig
}

// NewEngine creates a similarity engine. A nil config or non-positive fields
// fall back to the defaults.
func NewEngine(config *SimilarityConfig) *Engine {
	cfg := DefaultSimilarityConfig()
	if config != nil {
		if config.FlagThreshold > 0 {
			cfg.FlagThreshold = config.FlagThreshold
		}
		if config.MaxBulkPairs > 0 {
			cfg.MaxBulkPairs = config.MaxBulkPairs
		}
		if config.YieldInterval > 0 {
			cfg.YieldInterval = config.YieldInterval
		}
	}
	return &Engine{config: cfg}
}

// FlagThreshold returns the configured review threshold
func (e *Engine) FlagThreshold() float64 {
	return e.config.FlagThreshold
}

// MaxBulkPairs returns the configured bulk pair ceiling
func (e *Engine) MaxBulkPairs() int {
	return e.config.MaxBulkPairs
}

// IsFlagged reports whether a score is at or above the review threshold
func (e *Engine) IsFlagged(score float64) bool {
	return score >= e.config.FlagThreshold
}

// CosineSimilarity computes the cosine similarity between two fingerprints:
// the dot product over shared keys divided by the product of the Euclidean
// norms. Empty or zero-magnitude fingerprints score exactly 0. The result is
// rounded to 4 decimal places and clamped to [0, 1] so float drift cannot
// push it out of range.
func CosineSimilarity(a, b Fingerprint) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	dotProduct := 0.0
	for key, weightA := range a {
		if weightB, exists := b[key]; exists {
			dotProduct += weightA * weightB
		}
	}

	normA := 0.0
	for _, weight := range a {
		normA += weight * weight
	}

	normB := 0.0
	for _, weight := range b {
		normB += weight * weight
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}

	score := dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
	return clampScore(roundScore(score))
}

// SharedTokenCount returns the number of node types present in both
// fingerprints. Presence only; weights are ignored.
func SharedTokenCount(a, b Fingerprint) int {
	smaller, larger := a, b
	if len(b) < len(a) {
		smaller, larger = b, a
	}

	count := 0
	for key := range smaller {
		if _, exists := larger[key]; exists {
			count++
		}
	}
	return count
}

// CorpusEntry pairs an opaque identifier with a stored canonical token
// string. Entries are read-only for the duration of a comparison.
type CorpusEntry struct {
	ID     string
	Tokens string
}

// BestMatch is the result of scanning a corpus for the closest fingerprint.
// Found is false when the corpus was empty or nothing scored above 0.
// SkippedTokens counts malformed tokens dropped while reconstructing corpus
// fingerprints, summed over every entry scanned.
type BestMatch struct {
	Score         float64
	MatchedID     string
	Found         bool
	SharedTokens  int
	MatchNodes    int
	SkippedTokens int
}

// FindMostSimilar scans the corpus linearly, reconstructing each entry's
// fingerprint from its stored token string, and keeps the entry with the
// strictly greatest score. Ties keep the first entry seen, so results are
// reproducible for a given corpus order. Cost is O(corpus size × average
// token count); corpus search is deliberately unindexed.
func (e *Engine) FindMostSimilar(target Fingerprint, corpus []CorpusEntry) BestMatch {
	best := BestMatch{Score: 0.0}

	for _, entry := range corpus {
		tokens, skipped := ParseTokenString(entry.Tokens)
		best.SkippedTokens += skipped
		candidate := Vectorize(tokens)

		score := CosineSimilarity(target, candidate)
		if score > best.Score {
			best.Score = score
			best.MatchedID = entry.ID
			best.Found = true
			best.SharedTokens = SharedTokenCount(target, candidate)
			best.MatchNodes = len(tokens)
		}
	}

	return best
}

// roundScore rounds a score to 4 decimal places
func roundScore(score float64) float64 {
	return math.Round(score*10000) / 10000
}

// clampScore clamps a score to the closed interval [0, 1]
func clampScore(score float64) float64 {
	return math.Min(1.0, math.Max(0.0, score))
}
