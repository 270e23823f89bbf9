package app

import (
	"context"
	"fmt"
	"io"

	"github.com/codeprint-dev/codeprint/domain"
	svc "github.com/codeprint-dev/codeprint/service"
)

// MatchUseCase orchestrates the corpus lookup workflow
type MatchUseCase struct {
	service      domain.MatchService
	fileReader   domain.FileReader
	formatter    domain.MatchOutputFormatter
	configLoader domain.MatchConfigurationLoader
	output       domain.ReportWriter
}

// NewMatchUseCase creates a new match use case
func NewMatchUseCase(
	service domain.MatchService,
	fileReader domain.FileReader,
	formatter domain.MatchOutputFormatter,
	configLoader domain.MatchConfigurationLoader,
) *MatchUseCase {
	return &MatchUseCase{
		service:      service,
		fileReader:   fileReader,
		formatter:    formatter,
		configLoader: configLoader,
		output:       svc.NewFileOutputWriter(nil),
	}
}

// Execute runs the lookup for a request that already carries the code and
// writes the formatted result
func (uc *MatchUseCase) Execute(ctx context.Context, req domain.MatchRequest) error {
	finalReq, err := uc.prepareMatch(req)
	if err != nil {
		return err
	}

	response, err := uc.service.Match(ctx, &finalReq)
	if err != nil {
		return domain.NewAnalysisError("corpus lookup failed", err)
	}

	return uc.writeResponse(&finalReq, response)
}

// ExecuteAndReturn runs the lookup and returns the response without formatting
func (uc *MatchUseCase) ExecuteAndReturn(ctx context.Context, req domain.MatchRequest) (*domain.MatchResponse, error) {
	finalReq, err := uc.prepareMatch(req)
	if err != nil {
		return nil, err
	}

	response, err := uc.service.Match(ctx, &finalReq)
	if err != nil {
		return nil, domain.NewAnalysisError("corpus lookup failed", err)
	}

	return response, nil
}

// MatchFile reads a source file and looks it up against the corpus. The
// label defaults to the file path.
func (uc *MatchUseCase) MatchFile(ctx context.Context, filePath string, req domain.MatchRequest) error {
	finalReq, err := uc.loadAndMergeConfig(req)
	if err != nil {
		return domain.NewConfigError("failed to load configuration", err)
	}

	if !uc.fileReader.IsValidSourceFile(filePath, finalReq.Language) {
		return domain.NewInvalidInputError(fmt.Sprintf("not a valid %s source file: %s", finalReq.Language, filePath), nil)
	}

	code, err := uc.fileReader.ReadFile(filePath)
	if err != nil {
		return err
	}

	finalReq.Label = filePath
	finalReq.Code = string(code)

	if err := uc.validateRequest(finalReq); err != nil {
		return domain.NewInvalidInputError("invalid request", err)
	}

	response, err := uc.service.Match(ctx, &finalReq)
	if err != nil {
		return domain.NewAnalysisError("corpus lookup failed", err)
	}

	return uc.writeResponse(&finalReq, response)
}

// prepareMatch handles the common preparation steps
func (uc *MatchUseCase) prepareMatch(req domain.MatchRequest) (domain.MatchRequest, error) {
	if err := uc.validateRequest(req); err != nil {
		return req, domain.NewInvalidInputError("invalid request", err)
	}

	finalReq, err := uc.loadAndMergeConfig(req)
	if err != nil {
		return req, domain.NewConfigError("failed to load configuration", err)
	}

	return finalReq, nil
}

// validateRequest validates the match request
func (uc *MatchUseCase) validateRequest(req domain.MatchRequest) error {
	if req.OutputWriter == nil && req.OutputPath == "" {
		return fmt.Errorf("output writer or output path is required")
	}
	return req.Validate()
}

// loadAndMergeConfig loads configuration from file and merges with request
func (uc *MatchUseCase) loadAndMergeConfig(req domain.MatchRequest) (domain.MatchRequest, error) {
	if uc.configLoader == nil {
		return req, nil
	}

	var configReq *domain.MatchRequest
	var err error

	if req.ConfigPath != "" {
		configReq, err = uc.configLoader.LoadConfig(req.ConfigPath)
		if err != nil {
			return req, fmt.Errorf("failed to load config from %s: %w", req.ConfigPath, err)
		}
	} else {
		configReq = uc.configLoader.LoadDefaultConfig()
	}

	if configReq != nil {
		merged := uc.configLoader.MergeConfig(configReq, &req)
		return *merged, nil
	}

	return req, nil
}

// writeResponse delegates output handling to the ReportWriter
func (uc *MatchUseCase) writeResponse(req *domain.MatchRequest, response *domain.MatchResponse) error {
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

// MatchUseCaseBuilder provides a builder pattern for creating MatchUseCase
type MatchUseCaseBuilder struct {
	service      domain.MatchService
	fileReader   domain.FileReader
	formatter    domain.MatchOutputFormatter
	configLoader domain.MatchConfigurationLoader
	output       domain.ReportWriter
}

// NewMatchUseCaseBuilder creates a new builder
func NewMatchUseCaseBuilder() *MatchUseCaseBuilder {
	return &MatchUseCaseBuilder{}
}

// WithService sets the match service
func (b *MatchUseCaseBuilder) WithService(service domain.MatchService) *MatchUseCaseBuilder {
	b.service = service
	return b
}

// WithFileReader sets the file reader
func (b *MatchUseCaseBuilder) WithFileReader(fileReader domain.FileReader) *MatchUseCaseBuilder {
	b.fileReader = fileReader
	return b
}

// WithFormatter sets the output formatter
func (b *MatchUseCaseBuilder) WithFormatter(formatter domain.MatchOutputFormatter) *MatchUseCaseBuilder {
	b.formatter = formatter
	return b
}

// WithConfigLoader sets the configuration loader
func (b *MatchUseCaseBuilder) WithConfigLoader(configLoader domain.MatchConfigurationLoader) *MatchUseCaseBuilder {
	b.configLoader = configLoader
	return b
}

// WithOutputWriter sets the report writer
func (b *MatchUseCaseBuilder) WithOutputWriter(output domain.ReportWriter) *MatchUseCaseBuilder {
	b.output = output
	return b
}

// Build creates the MatchUseCase with the configured dependencies
func (b *MatchUseCaseBuilder) Build() (*MatchUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("match service is required")
	}
	if b.fileReader == nil {
		return nil, fmt.Errorf("file reader is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}

	uc := NewMatchUseCase(
		b.service,
		b.fileReader,
		b.formatter,
		b.configLoader,
	)
	if b.output != nil {
		uc.output = b.output
	}
	return uc, nil
}
