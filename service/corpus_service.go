package service

import (
	"context"
	"fmt"
	"time"

	"github.com/codeprint-dev/codeprint/domain"
)

// CorpusServiceImpl implements the domain.CorpusService interface.
type CorpusServiceImpl struct {
	corpus     domain.CorpusRepository
	fileReader domain.FileReader
}

// NewCorpusService creates a new corpus service
func NewCorpusService(corpus domain.CorpusRepository, fileReader domain.FileReader) *CorpusServiceImpl {
	return &CorpusServiceImpl{
		corpus:     corpus,
		fileReader: fileReader,
	}
}

// Add fingerprints a source file and appends its token string to the corpus
func (s *CorpusServiceImpl) Add(ctx context.Context, req *domain.CorpusAddRequest) (*domain.CorpusEntry, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if req == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid corpus add request: %w", err)
	}

	source, err := s.fileReader.ReadFile(req.FilePath)
	if err != nil {
		return nil, err
	}

	sp, err := fingerprintSource(ctx, req.Language, source)
	if err != nil {
		return nil, domain.NewParseError(req.FilePath, err)
	}

	// Entries default to the file path as their id
	id := req.ID
	if id == "" {
		id = req.FilePath
	}

	entry := domain.CorpusEntry{ID: id, Tokens: sp.tokenString}
	if err := s.corpus.Append(req.CorpusPath, entry); err != nil {
		return nil, err
	}

	return &entry, nil
}

// List summarizes the entries stored in a corpus
func (s *CorpusServiceImpl) List(ctx context.Context, req *domain.CorpusListRequest) (*domain.CorpusListResponse, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if req == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid corpus list request: %w", err)
	}

	startTime := time.Now()

	entries, err := s.corpus.Load(req.CorpusPath)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.CorpusEntrySummary, 0, len(entries))
	for _, entry := range entries {
		summaries = append(summaries, domain.CorpusEntrySummary{
			ID:         entry.ID,
			TokenCount: entry.TokenCount(),
		})
	}

	return &domain.CorpusListResponse{
		CorpusPath: req.CorpusPath,
		Entries:    summaries,
		Duration:   time.Since(startTime).Milliseconds(),
	}, nil
}
