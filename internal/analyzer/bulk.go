package analyzer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
)

// ErrPairLimitExceeded is returned when a bulk comparison would require more
// pair comparisons than the engine allows
var ErrPairLimitExceeded = errors.New("pair count exceeds the configured limit")

// Sample is one labeled fingerprint in a bulk comparison
type Sample struct {
	Label       string
	Fingerprint Fingerprint
	TokenCount  int
}

// SuspiciousPair is a pair whose similarity reached the flag threshold
type SuspiciousPair struct {
	LabelA       string
	LabelB       string
	Score        float64
	Confidence   Confidence
	SharedTokens int
}

// BulkResult is the outcome of an all-pairs comparison: the full similarity
// matrix in input order, the flagged pairs sorted by descending score, and
// summary metadata.
type BulkResult struct {
	Labels      []string
	Matrix      [][]float64
	Suspicious  []SuspiciousPair
	SampleCount int
	PairCount   int
	Threshold   float64
}

// PairCount returns the number of distinct pairs among n samples
func PairCount(n int) int {
	return n * (n - 1) / 2
}

// CheckPairLimit validates the pair count for a sample count against the
// configured ceiling. Callers run this before building any fingerprint so an
// oversized request is rejected while it is still cheap.
func (e *Engine) CheckPairLimit(sampleCount int) error {
	if pairs := PairCount(sampleCount); pairs > e.config.MaxBulkPairs {
		return fmt.Errorf("%w: %d samples require %d comparisons, limit is %d",
			ErrPairLimitExceeded, sampleCount, pairs, e.config.MaxBulkPairs)
	}
	return nil
}

// CompareAll computes the symmetric all-pairs similarity matrix for the
// samples. Diagonal entries are fixed at 1.0; only the upper triangle is
// computed and each score is mirrored to the lower. Pairs scoring at or
// above the flag threshold are collected with their confidence band and
// shared-token count, sorted descending by score.
//
// The loop yields to the scheduler every YieldInterval comparisons so a long
// scan does not starve other work; yielding never changes the result. The
// context is checked at the same cadence and cancellation abandons the scan.
func (e *Engine) CompareAll(ctx context.Context, samples []Sample) (*BulkResult, error) {
	if err := e.CheckPairLimit(len(samples)); err != nil {
		return nil, err
	}

	n := len(samples)
	labels := make([]string, n)
	for i, sample := range samples {
		labels[i] = sample.Label
	}

	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1.0
	}

	suspicious := []SuspiciousPair{}
	comparisons := 0

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			score := CosineSimilarity(samples[i].Fingerprint, samples[j].Fingerprint)
			matrix[i][j] = score
			matrix[j][i] = score

			if e.IsFlagged(score) {
				suspicious = append(suspicious, SuspiciousPair{
					LabelA:       samples[i].Label,
					LabelB:       samples[j].Label,
					Score:        score,
					Confidence:   ToConfidence(score),
					SharedTokens: SharedTokenCount(samples[i].Fingerprint, samples[j].Fingerprint),
				})
			}

			comparisons++
			if comparisons%e.config.YieldInterval == 0 {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				default:
				}
				runtime.Gosched()
			}
		}
	}

	sort.SliceStable(suspicious, func(a, b int) bool {
		return suspicious[a].Score > suspicious[b].Score
	})

	return &BulkResult{
		Labels:      labels,
		Matrix:      matrix,
		Suspicious:  suspicious,
		SampleCount: n,
		PairCount:   PairCount(n),
		Threshold:   e.config.FlagThreshold,
	}, nil
}
