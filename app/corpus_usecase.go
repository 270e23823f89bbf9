package app

import (
	"context"
	"fmt"
	"io"

	"github.com/codeprint-dev/codeprint/domain"
	svc "github.com/codeprint-dev/codeprint/service"
)

// CorpusUseCase orchestrates corpus maintenance workflows
type CorpusUseCase struct {
	service   domain.CorpusService
	formatter domain.CorpusListOutputFormatter
	output    domain.ReportWriter
}

// NewCorpusUseCase creates a new corpus use case
func NewCorpusUseCase(
	service domain.CorpusService,
	formatter domain.CorpusListOutputFormatter,
) *CorpusUseCase {
	return &CorpusUseCase{
		service:   service,
		formatter: formatter,
		output:    svc.NewFileOutputWriter(nil),
	}
}

// AddFile fingerprints a source file and appends it to the corpus
func (uc *CorpusUseCase) AddFile(ctx context.Context, req domain.CorpusAddRequest) (*domain.CorpusEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, domain.NewInvalidInputError("invalid request", err)
	}

	entry, err := uc.service.Add(ctx, &req)
	if err != nil {
		return nil, domain.NewCorpusError("failed to add entry to corpus", err)
	}

	return entry, nil
}

// List writes a summary of the corpus entries to the configured output
func (uc *CorpusUseCase) List(ctx context.Context, req domain.CorpusListRequest) error {
	response, err := uc.ListAndReturn(ctx, req)
	if err != nil {
		return err
	}

	var out io.Writer
	if req.OutputPath == "" {
		out = req.OutputWriter
	}
	if err := uc.output.Write(out, req.OutputPath, req.OutputFormat, func(w io.Writer) error {
		return uc.formatter.Write(response, req.OutputFormat, w)
	}); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}

	return nil
}

// ListAndReturn summarizes the corpus entries without writing formatted output
func (uc *CorpusUseCase) ListAndReturn(ctx context.Context, req domain.CorpusListRequest) (*domain.CorpusListResponse, error) {
	if err := uc.validateListRequest(req); err != nil {
		return nil, domain.NewInvalidInputError("invalid request", err)
	}

	response, err := uc.service.List(ctx, &req)
	if err != nil {
		return nil, domain.NewCorpusError("failed to list corpus entries", err)
	}

	return response, nil
}

func (uc *CorpusUseCase) validateListRequest(req domain.CorpusListRequest) error {
	if req.OutputWriter == nil && req.OutputPath == "" {
		return fmt.Errorf("output writer or output path is required")
	}
	return req.Validate()
}
