package app

import (
	"context"
	"fmt"
	"io"

	"github.com/codeprint-dev/codeprint/domain"
	svc "github.com/codeprint-dev/codeprint/service"
)

// CompareUseCase orchestrates the pairwise comparison workflow
type CompareUseCase struct {
	service      domain.CompareService
	fileReader   domain.FileReader
	formatter    domain.CompareOutputFormatter
	configLoader domain.CompareConfigurationLoader
	output       domain.ReportWriter
}

// NewCompareUseCase creates a new compare use case
func NewCompareUseCase(
	service domain.CompareService,
	fileReader domain.FileReader,
	formatter domain.CompareOutputFormatter,
	configLoader domain.CompareConfigurationLoader,
) *CompareUseCase {
	return &CompareUseCase{
		service:      service,
		fileReader:   fileReader,
		formatter:    formatter,
		configLoader: configLoader,
		output:       svc.NewFileOutputWriter(nil),
	}
}

// Execute runs the comparison for a request that already carries both code
// snippets and writes the formatted result
func (uc *CompareUseCase) Execute(ctx context.Context, req domain.CompareRequest) error {
	finalReq, err := uc.prepareCompare(req)
	if err != nil {
		return err
	}

	response, err := uc.service.Compare(ctx, &finalReq)
	if err != nil {
		return domain.NewAnalysisError("comparison failed", err)
	}

	return uc.writeResponse(&finalReq, response)
}

// ExecuteAndReturn runs the comparison and returns the response without formatting
func (uc *CompareUseCase) ExecuteAndReturn(ctx context.Context, req domain.CompareRequest) (*domain.CompareResponse, error) {
	finalReq, err := uc.prepareCompare(req)
	if err != nil {
		return nil, err
	}

	response, err := uc.service.Compare(ctx, &finalReq)
	if err != nil {
		return nil, domain.NewAnalysisError("comparison failed", err)
	}

	return response, nil
}

// CompareFiles reads two source files and compares them. Labels default to
// the file paths so reports stay traceable to the inputs.
func (uc *CompareUseCase) CompareFiles(ctx context.Context, pathA, pathB string, req domain.CompareRequest) error {
	// Merge config first: the configured language decides which files are valid
	finalReq, err := uc.loadAndMergeConfig(req)
	if err != nil {
		return domain.NewConfigError("failed to load configuration", err)
	}

	for _, path := range []string{pathA, pathB} {
		if !uc.fileReader.IsValidSourceFile(path, finalReq.Language) {
			return domain.NewInvalidInputError(fmt.Sprintf("not a valid %s source file: %s", finalReq.Language, path), nil)
		}
	}

	codeA, err := uc.fileReader.ReadFile(pathA)
	if err != nil {
		return err
	}
	codeB, err := uc.fileReader.ReadFile(pathB)
	if err != nil {
		return err
	}

	finalReq.LabelA = pathA
	finalReq.CodeA = string(codeA)
	finalReq.LabelB = pathB
	finalReq.CodeB = string(codeB)

	if err := uc.validateRequest(finalReq); err != nil {
		return domain.NewInvalidInputError("invalid request", err)
	}

	response, err := uc.service.Compare(ctx, &finalReq)
	if err != nil {
		return domain.NewAnalysisError("comparison failed", err)
	}

	return uc.writeResponse(&finalReq, response)
}

// prepareCompare handles the common preparation steps
func (uc *CompareUseCase) prepareCompare(req domain.CompareRequest) (domain.CompareRequest, error) {
	if err := uc.validateRequest(req); err != nil {
		return req, domain.NewInvalidInputError("invalid request", err)
	}

	finalReq, err := uc.loadAndMergeConfig(req)
	if err != nil {
		return req, domain.NewConfigError("failed to load configuration", err)
	}

	return finalReq, nil
}

// validateRequest validates the compare request
func (uc *CompareUseCase) validateRequest(req domain.CompareRequest) error {
	if req.OutputWriter == nil && req.OutputPath == "" {
		return fmt.Errorf("output writer or output path is required")
	}
	return req.Validate()
}

// loadAndMergeConfig loads configuration from file and merges with request
func (uc *CompareUseCase) loadAndMergeConfig(req domain.CompareRequest) (domain.CompareRequest, error) {
	if uc.configLoader == nil {
		return req, nil
	}

	var configReq *domain.CompareRequest
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
		// Request takes precedence over config file values
		merged := uc.configLoader.MergeConfig(configReq, &req)
		return *merged, nil
	}

	return req, nil
}

// writeResponse delegates output handling to the ReportWriter
func (uc *CompareUseCase) writeResponse(req *domain.CompareRequest, response *domain.CompareResponse) error {
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

// CompareUseCaseBuilder provides a builder pattern for creating CompareUseCase
type CompareUseCaseBuilder struct {
	service      domain.CompareService
	fileReader   domain.FileReader
	formatter    domain.CompareOutputFormatter
	configLoader domain.CompareConfigurationLoader
	output       domain.ReportWriter
}

// NewCompareUseCaseBuilder creates a new builder
func NewCompareUseCaseBuilder() *CompareUseCaseBuilder {
	return &CompareUseCaseBuilder{}
}

// WithService sets the compare service
func (b *CompareUseCaseBuilder) WithService(service domain.CompareService) *CompareUseCaseBuilder {
	b.service = service
	return b
}

// WithFileReader sets the file reader
func (b *CompareUseCaseBuilder) WithFileReader(fileReader domain.FileReader) *CompareUseCaseBuilder {
	b.fileReader = fileReader
	return b
}

// WithFormatter sets the output formatter
func (b *CompareUseCaseBuilder) WithFormatter(formatter domain.CompareOutputFormatter) *CompareUseCaseBuilder {
	b.formatter = formatter
	return b
}

// WithConfigLoader sets the configuration loader
func (b *CompareUseCaseBuilder) WithConfigLoader(configLoader domain.CompareConfigurationLoader) *CompareUseCaseBuilder {
	b.configLoader = configLoader
	return b
}

// WithOutputWriter sets the report writer
func (b *CompareUseCaseBuilder) WithOutputWriter(output domain.ReportWriter) *CompareUseCaseBuilder {
	b.output = output
	return b
}

// Build creates the CompareUseCase with the configured dependencies
func (b *CompareUseCaseBuilder) Build() (*CompareUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("compare service is required")
	}
	if b.fileReader == nil {
		return nil, fmt.Errorf("file reader is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}

	uc := NewCompareUseCase(
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
