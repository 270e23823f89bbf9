package constants

// Similarity thresholds for structural plagiarism detection. Scores are
// cosine similarities between depth-weighted structural fingerprints, so the
// bands below describe structural overlap, not textual overlap.
//
// References:
// - Prechelt, L., Malpohl, G., & Philippsen, M. (2002). Finding plagiarisms
//   among a set of programs with JPlag
// - Schleimer, S., Wilkerson, D. S., & Aiken, A. (2003). Winnowing: local
//   algorithms for document fingerprinting
const (
	// HighConfidenceThreshold marks near-certain structural duplication.
	// Two submissions scoring at or above this share essentially the same
	// shape at every depth and differ mostly in naming and literals.
	HighConfidenceThreshold = 0.85

	// MediumConfidenceThreshold marks substantial structural overlap, such
	// as a copied skeleton with reworked inner statements.
	MediumConfidenceThreshold = 0.65

	// LowConfidenceThreshold marks weak overlap that is usually coincidence
	// (common idioms, boilerplate) rather than copying.
	LowConfidenceThreshold = 0.40

	// DefaultFlagThreshold is the score at or above which a pair is surfaced
	// for human review. It sits inside the medium confidence band on
	// purpose: review should start before the evidence reaches "high".
	DefaultFlagThreshold = 0.75
)

// Bulk comparison limits. The all-pairs scan is O(N²) in the number of
// samples, so the pair count is validated before any fingerprint is built.
const (
	// DefaultMaxBulkPairs caps the number of pair comparisons a single bulk
	// request may ask for. 4950 pairs corresponds to a 100-sample batch.
	DefaultMaxBulkPairs = 4950

	// DefaultYieldInterval is the number of pair comparisons between
	// voluntary yields to the scheduler during a bulk scan. Yielding keeps
	// long scans from starving other work and never changes the result.
	DefaultYieldInterval = 5
)

// ConfidenceDescriptions provides human-readable explanations for each
// confidence band, used by the text formatters.
var ConfidenceDescriptions = map[string]string{
	"high":   "Near-certain structural duplication; differs mostly in names and literals",
	"medium": "Substantial structural overlap; likely a reworked copy",
	"low":    "Weak structural overlap; usually shared idioms or boilerplate",
	"none":   "No meaningful structural overlap",
}
