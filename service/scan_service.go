package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/codeprint-dev/codeprint/domain"
	"github.com/codeprint-dev/codeprint/internal/analyzer"
)

// ScanService implements the domain.ScanService interface
type ScanService struct {
	fileReader domain.FileReader
	progress   domain.ProgressReporter
}

// NewScanService creates a new scan service
// progress can be nil - the service can work without progress reporting
func NewScanService(fileReader domain.FileReader, progress domain.ProgressReporter) *ScanService {
	return &ScanService{
		fileReader: fileReader,
		progress:   progress,
	}
}

// Scan collects source files from the request paths and compares every pair
func (s *ScanService) Scan(ctx context.Context, req *domain.ScanRequest) (*domain.ScanResponse, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if req == nil {
		return nil, fmt.Errorf("scan request cannot be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scan request: %w", err)
	}

	files, err := s.fileReader.CollectSourceFiles(
		req.Paths, req.Language, req.Recursive, req.IncludePatterns, req.ExcludePatterns)
	if err != nil {
		return nil, err
	}

	return s.ScanFiles(ctx, files, req)
}

// ScanFiles compares every pair among the given files
func (s *ScanService) ScanFiles(ctx context.Context, filePaths []string, req *domain.ScanRequest) (*domain.ScanResponse, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if req == nil {
		return nil, fmt.Errorf("scan request cannot be nil")
	}
	if len(filePaths) == 0 {
		return nil, domain.NewInvalidInputError("no source files found to scan", nil)
	}

	startTime := time.Now()

	engine := analyzer.NewEngine(&analyzer.SimilarityConfig{
		FlagThreshold: req.FlagThreshold,
		MaxBulkPairs:  req.MaxPairs,
	})

	// Reject oversized batches before any file is read or parsed. The limit
	// is checked against the collected file count, not the parsed sample
	// count, so the decision does not depend on which files happen to fail.
	if err := engine.CheckPairLimit(len(filePaths)); err != nil {
		return nil, domain.NewBatchTooLargeError(
			len(filePaths), analyzer.PairCount(len(filePaths)), engine.MaxBulkPairs())
	}

	if s.progress != nil {
		s.progress.StartProgress(len(filePaths))
	}

	samples := make([]analyzer.Sample, 0, len(filePaths))
	var warnings []string

	for i, filePath := range filePaths {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("scan cancelled: %w", ctx.Err())
		default:
		}

		content, err := s.fileReader.ReadFile(filePath)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to read %s: %v", filePath, err))
			fmt.Fprintf(os.Stderr, "Warning: Failed to read file %s: %v\n", filePath, err)
			continue
		}

		fp, err := fingerprintSource(ctx, req.Language, content)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("failed to parse %s: %v", filePath, err))
			fmt.Fprintf(os.Stderr, "Warning: Failed to parse file %s: %v\n", filePath, err)
			continue
		}

		samples = append(samples, analyzer.Sample{
			Label:       filePath,
			Fingerprint: fp.fingerprint,
			TokenCount:  len(fp.tokens),
		})

		if s.progress != nil {
			s.progress.UpdateProgress(filePath, i+1, len(filePaths))
		}
	}

	if s.progress != nil {
		s.progress.FinishProgress()
	}

	result, err := engine.CompareAll(ctx, samples)
	if err != nil {
		return nil, fmt.Errorf("scan cancelled: %w", err)
	}

	return s.buildResponse(result, req, len(filePaths), warnings, startTime), nil
}

// buildResponse converts a bulk comparison result into the domain response
func (s *ScanService) buildResponse(result *analyzer.BulkResult, req *domain.ScanRequest, totalFiles int, warnings []string, startTime time.Time) *domain.ScanResponse {
	pairs := make([]domain.SuspiciousPair, len(result.Suspicious))
	for i, pair := range result.Suspicious {
		pairs[i] = domain.SuspiciousPair{
			FileA:        pair.LabelA,
			FileB:        pair.LabelB,
			Score:        pair.Score,
			Confidence:   toConfidenceBand(pair.Confidence),
			SharedTokens: pair.SharedTokens,
		}
	}

	return &domain.ScanResponse{
		Labels:          result.Labels,
		Matrix:          result.Matrix,
		SuspiciousPairs: pairs,
		Summary: &domain.ScanSummary{
			TotalFiles:    totalFiles,
			SkippedFiles:  totalFiles - result.SampleCount,
			ComparedPairs: result.PairCount,
			FlaggedPairs:  len(pairs),
			FlagThreshold: result.Threshold,
		},
		Warnings: warnings,
		Duration: time.Since(startTime).Milliseconds(),
	}
}
