package service

import (
	"context"
	"fmt"
	"time"

	"github.com/codeprint-dev/codeprint/domain"
	"github.com/codeprint-dev/codeprint/internal/analyzer"
	"github.com/codeprint-dev/codeprint/internal/parser"
)

// SimilarityService implements the domain.CompareService, domain.MatchService
// and domain.FingerprintService interfaces on top of the structural
// fingerprint pipeline.
type SimilarityService struct {
	corpus domain.CorpusRepository
}

// NewSimilarityService creates a new similarity service. The corpus
// repository may be nil when only Compare and Fingerprint are used.
func NewSimilarityService(corpus domain.CorpusRepository) *SimilarityService {
	return &SimilarityService{
		corpus: corpus,
	}
}

// sourcePrint bundles the intermediate products of fingerprinting one input.
type sourcePrint struct {
	tokens      []analyzer.Token
	tokenString string
	fingerprint analyzer.Fingerprint
}

// fingerprintSource runs the full pipeline on one piece of source code:
// parse, normalize, serialize, vectorize. Parsers are cheap to construct and
// not safe for concurrent use, so each call owns its own instance.
func fingerprintSource(ctx context.Context, lang domain.Language, source []byte) (*sourcePrint, error) {
	p, err := parser.NewWithLanguage(toParserLanguage(lang))
	if err != nil {
		return nil, err
	}

	result, err := p.Parse(ctx, source)
	if err != nil {
		return nil, err
	}

	normalizer := analyzer.NewNormalizer(result.Language)
	structural := normalizer.Normalize(result.Root)
	tokens := analyzer.Serialize(structural)

	return &sourcePrint{
		tokens:      tokens,
		tokenString: analyzer.EncodeTokens(tokens),
		fingerprint: analyzer.Vectorize(tokens),
	}, nil
}

// Compare performs a pairwise similarity comparison
func (s *SimilarityService) Compare(ctx context.Context, req *domain.CompareRequest) (*domain.CompareResponse, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if req == nil {
		return nil, fmt.Errorf("compare request cannot be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid compare request: %w", err)
	}

	startTime := time.Now()

	printA, err := fingerprintSource(ctx, req.Language, []byte(req.CodeA))
	if err != nil {
		return nil, domain.NewParseError(req.LabelA, err)
	}

	printB, err := fingerprintSource(ctx, req.Language, []byte(req.CodeB))
	if err != nil {
		return nil, domain.NewParseError(req.LabelB, err)
	}

	engine := analyzer.NewEngine(&analyzer.SimilarityConfig{FlagThreshold: req.FlagThreshold})
	score := analyzer.CosineSimilarity(printA.fingerprint, printB.fingerprint)

	return &domain.CompareResponse{
		LabelA:        req.LabelA,
		LabelB:        req.LabelB,
		Score:         score,
		Confidence:    toConfidenceBand(analyzer.ToConfidence(score)),
		Flagged:       engine.IsFlagged(score),
		FlagThreshold: engine.FlagThreshold(),
		SharedTokens:  analyzer.SharedTokenCount(printA.fingerprint, printB.fingerprint),
		TotalNodesA:   len(printA.tokens),
		TotalNodesB:   len(printB.tokens),
		Duration:      time.Since(startTime).Milliseconds(),
	}, nil
}

// Match finds the closest corpus entry for the submitted code
func (s *SimilarityService) Match(ctx context.Context, req *domain.MatchRequest) (*domain.MatchResponse, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if req == nil {
		return nil, fmt.Errorf("match request cannot be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid match request: %w", err)
	}
	if s.corpus == nil {
		return nil, domain.NewCorpusError("no corpus repository configured", nil)
	}

	startTime := time.Now()

	target, err := fingerprintSource(ctx, req.Language, []byte(req.Code))
	if err != nil {
		return nil, domain.NewParseError(req.Label, err)
	}

	entries, err := s.corpus.Load(req.CorpusPath)
	if err != nil {
		return nil, err
	}

	corpus := make([]analyzer.CorpusEntry, len(entries))
	for i, entry := range entries {
		corpus[i] = analyzer.CorpusEntry{ID: entry.ID, Tokens: entry.Tokens}
	}

	engine := analyzer.NewEngine(&analyzer.SimilarityConfig{FlagThreshold: req.FlagThreshold})
	best := engine.FindMostSimilar(target.fingerprint, corpus)

	response := &domain.MatchResponse{
		Label:            req.Label,
		Found:            best.Found,
		Score:            best.Score,
		Confidence:       toConfidenceBand(analyzer.ToConfidence(best.Score)),
		Flagged:          engine.IsFlagged(best.Score),
		SharedTokens:     best.SharedTokens,
		TotalNodesTarget: len(target.tokens),
		CorpusSize:       len(entries),
		SkippedTokens:    best.SkippedTokens,
		Duration:         time.Since(startTime).Milliseconds(),
	}

	if best.Found {
		matchedID := best.MatchedID
		matchNodes := best.MatchNodes
		response.MatchedID = &matchedID
		response.TotalNodesMatch = &matchNodes
	}

	return response, nil
}

// Fingerprint computes the structural fingerprint of a single input
func (s *SimilarityService) Fingerprint(ctx context.Context, req *domain.FingerprintRequest) (*domain.FingerprintResponse, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context cannot be nil")
	}
	if req == nil {
		return nil, fmt.Errorf("fingerprint request cannot be nil")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fingerprint request: %w", err)
	}

	startTime := time.Now()

	fp, err := fingerprintSource(ctx, req.Language, []byte(req.Code))
	if err != nil {
		return nil, domain.NewParseError(req.Label, err)
	}

	return &domain.FingerprintResponse{
		Label:       req.Label,
		Language:    req.Language,
		TokenString: fp.tokenString,
		TokenCount:  len(fp.tokens),
		UniqueTypes: uniqueTypeCount(fp.tokens),
		Weights:     fp.fingerprint,
		Duration:    time.Since(startTime).Milliseconds(),
	}, nil
}

func uniqueTypeCount(tokens []analyzer.Token) int {
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		seen[tok.Type] = struct{}{}
	}
	return len(seen)
}

// toParserLanguage converts a domain language to its parser equivalent
func toParserLanguage(lang domain.Language) parser.Language {
	switch lang {
	case domain.LanguageJavaScript:
		return parser.LanguageJavaScript
	default:
		return parser.LanguagePython
	}
}

// toConfidenceBand converts an analyzer confidence to its domain equivalent
func toConfidenceBand(c analyzer.Confidence) domain.ConfidenceBand {
	switch c {
	case analyzer.ConfidenceHigh:
		return domain.ConfidenceBandHigh
	case analyzer.ConfidenceMedium:
		return domain.ConfidenceBandMedium
	case analyzer.ConfidenceLow:
		return domain.ConfidenceBandLow
	default:
		return domain.ConfidenceBandNone
	}
}
