package app

import (
	"context"
	"fmt"
	"io"

	"github.com/codeprint-dev/codeprint/domain"
	svc "github.com/codeprint-dev/codeprint/service"
)

// ScanUseCase orchestrates the bulk all-pairs scan workflow
type ScanUseCase struct {
	service      domain.ScanService
	fileReader   domain.FileReader
	formatter    domain.ScanOutputFormatter
	configLoader domain.ScanConfigurationLoader
	output       domain.ReportWriter
}

// NewScanUseCase creates a new scan use case
func NewScanUseCase(
	service domain.ScanService,
	fileReader domain.FileReader,
	formatter domain.ScanOutputFormatter,
	configLoader domain.ScanConfigurationLoader,
) *ScanUseCase {
	return &ScanUseCase{
		service:      service,
		fileReader:   fileReader,
		formatter:    formatter,
		configLoader: configLoader,
		output:       svc.NewFileOutputWriter(nil),
	}
}

// prepareScan validates the request, merges configuration and collects the
// files to scan
func (uc *ScanUseCase) prepareScan(req domain.ScanRequest) (domain.ScanRequest, []string, error) {
	if err := uc.validateRequest(req); err != nil {
		return req, nil, domain.NewInvalidInputError("invalid request", err)
	}

	finalReq, err := uc.loadAndMergeConfig(req)
	if err != nil {
		return req, nil, domain.NewConfigError("failed to load configuration", err)
	}

	files, err := uc.fileReader.CollectSourceFiles(
		finalReq.Paths,
		finalReq.Language,
		finalReq.Recursive,
		finalReq.IncludePatterns,
		finalReq.ExcludePatterns,
	)
	if err != nil {
		return req, nil, domain.NewFileNotFoundError("failed to collect files", err)
	}

	if len(files) == 0 {
		return req, nil, domain.NewInvalidInputError(
			fmt.Sprintf("no %s source files found in the specified paths", finalReq.Language), nil)
	}

	return finalReq, files, nil
}

// Execute performs the complete scan workflow
func (uc *ScanUseCase) Execute(ctx context.Context, req domain.ScanRequest) error {
	finalReq, files, err := uc.prepareScan(req)
	if err != nil {
		return err
	}

	response, err := uc.service.ScanFiles(ctx, files, &finalReq)
	if err != nil {
		return domain.NewAnalysisError("scan failed", err)
	}

	var out io.Writer
	if finalReq.OutputPath == "" {
		out = finalReq.OutputWriter
	}
	if err := uc.output.Write(out, finalReq.OutputPath, finalReq.OutputFormat, func(w io.Writer) error {
		return uc.formatter.Write(response, finalReq.OutputFormat, w)
	}); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}

	return nil
}

// ExecuteAndReturn performs the scan and returns the response without formatting
func (uc *ScanUseCase) ExecuteAndReturn(ctx context.Context, req domain.ScanRequest) (*domain.ScanResponse, error) {
	finalReq, files, err := uc.prepareScan(req)
	if err != nil {
		return nil, err
	}

	response, err := uc.service.ScanFiles(ctx, files, &finalReq)
	if err != nil {
		return nil, domain.NewAnalysisError("scan failed", err)
	}

	return response, nil
}

// validatePaths validates input paths
func (uc *ScanUseCase) validatePaths(req domain.ScanRequest) error {
	if len(req.Paths) == 0 {
		return fmt.Errorf("no input paths specified")
	}
	return nil
}

// validateOutput validates output configuration
func (uc *ScanUseCase) validateOutput(req domain.ScanRequest) error {
	if req.OutputWriter == nil && req.OutputPath == "" {
		return fmt.Errorf("output writer or output path is required")
	}
	return nil
}

// validateRequest validates the scan request
func (uc *ScanUseCase) validateRequest(req domain.ScanRequest) error {
	validators := []func(domain.ScanRequest) error{
		uc.validatePaths,
		uc.validateOutput,
	}

	for _, validator := range validators {
		if err := validator(req); err != nil {
			return err
		}
	}

	return req.Validate()
}

// loadAndMergeConfig loads configuration from file and merges with request
func (uc *ScanUseCase) loadAndMergeConfig(req domain.ScanRequest) (domain.ScanRequest, error) {
	if uc.configLoader == nil {
		return req, nil
	}

	var configReq *domain.ScanRequest
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

// ScanUseCaseBuilder provides a builder pattern for creating ScanUseCase
type ScanUseCaseBuilder struct {
	service      domain.ScanService
	fileReader   domain.FileReader
	formatter    domain.ScanOutputFormatter
	configLoader domain.ScanConfigurationLoader
	output       domain.ReportWriter
}

// NewScanUseCaseBuilder creates a new builder
func NewScanUseCaseBuilder() *ScanUseCaseBuilder {
	return &ScanUseCaseBuilder{}
}

// WithService sets the scan service
func (b *ScanUseCaseBuilder) WithService(service domain.ScanService) *ScanUseCaseBuilder {
	b.service = service
	return b
}

// WithFileReader sets the file reader
func (b *ScanUseCaseBuilder) WithFileReader(fileReader domain.FileReader) *ScanUseCaseBuilder {
	b.fileReader = fileReader
	return b
}

// WithFormatter sets the output formatter
func (b *ScanUseCaseBuilder) WithFormatter(formatter domain.ScanOutputFormatter) *ScanUseCaseBuilder {
	b.formatter = formatter
	return b
}

// WithConfigLoader sets the configuration loader
func (b *ScanUseCaseBuilder) WithConfigLoader(configLoader domain.ScanConfigurationLoader) *ScanUseCaseBuilder {
	b.configLoader = configLoader
	return b
}

// WithOutputWriter sets the report writer
func (b *ScanUseCaseBuilder) WithOutputWriter(output domain.ReportWriter) *ScanUseCaseBuilder {
	b.output = output
	return b
}

// Build creates the ScanUseCase with the configured dependencies
func (b *ScanUseCaseBuilder) Build() (*ScanUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("scan service is required")
	}
	if b.fileReader == nil {
		return nil, fmt.Errorf("file reader is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}

	uc := NewScanUseCase(
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
