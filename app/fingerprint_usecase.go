package app

import (
	"context"
	"fmt"
	"io"

	"github.com/codeprint-dev/codeprint/domain"
	svc "github.com/codeprint-dev/codeprint/service"
)

// FingerprintUseCase orchestrates the fingerprint workflow for a single input
type FingerprintUseCase struct {
	service      domain.FingerprintService
	fileReader   domain.FileReader
	formatter    domain.FingerprintOutputFormatter
	configLoader domain.FingerprintConfigurationLoader
	output       domain.ReportWriter
}

// NewFingerprintUseCase creates a new fingerprint use case
func NewFingerprintUseCase(
	service domain.FingerprintService,
	fileReader domain.FileReader,
	formatter domain.FingerprintOutputFormatter,
	configLoader domain.FingerprintConfigurationLoader,
) *FingerprintUseCase {
	return &FingerprintUseCase{
		service:      service,
		fileReader:   fileReader,
		formatter:    formatter,
		configLoader: configLoader,
		output:       svc.NewFileOutputWriter(nil),
	}
}

// Execute performs the complete fingerprint workflow on inline code
func (uc *FingerprintUseCase) Execute(ctx context.Context, req domain.FingerprintRequest) error {
	finalReq, err := uc.prepareFingerprint(req)
	if err != nil {
		return err
	}

	response, err := uc.service.Fingerprint(ctx, &finalReq)
	if err != nil {
		return domain.NewAnalysisError("fingerprinting failed", err)
	}

	return uc.writeResponse(response, finalReq)
}

// ExecuteAndReturn performs the fingerprint workflow and returns the response
// without writing formatted output
func (uc *FingerprintUseCase) ExecuteAndReturn(ctx context.Context, req domain.FingerprintRequest) (*domain.FingerprintResponse, error) {
	finalReq, err := uc.prepareFingerprint(req)
	if err != nil {
		return nil, err
	}

	response, err := uc.service.Fingerprint(ctx, &finalReq)
	if err != nil {
		return nil, domain.NewAnalysisError("fingerprinting failed", err)
	}

	return response, nil
}

// FingerprintFile reads a source file and fingerprints its contents
func (uc *FingerprintUseCase) FingerprintFile(ctx context.Context, filePath string, req domain.FingerprintRequest) error {
	// Merge config first: the configured language decides which files are valid
	finalReq, err := uc.loadAndMergeConfig(req)
	if err != nil {
		return domain.NewConfigError("failed to load configuration", err)
	}

	if !uc.fileReader.IsValidSourceFile(filePath, finalReq.Language) {
		return domain.NewInvalidInputError(
			fmt.Sprintf("not a valid %s source file: %s", finalReq.Language, filePath), nil)
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

	response, err := uc.service.Fingerprint(ctx, &finalReq)
	if err != nil {
		return domain.NewAnalysisError("fingerprinting failed", err)
	}

	return uc.writeResponse(response, finalReq)
}

func (uc *FingerprintUseCase) prepareFingerprint(req domain.FingerprintRequest) (domain.FingerprintRequest, error) {
	if err := uc.validateRequest(req); err != nil {
		return req, domain.NewInvalidInputError("invalid request", err)
	}

	finalReq, err := uc.loadAndMergeConfig(req)
	if err != nil {
		return req, domain.NewConfigError("failed to load configuration", err)
	}

	return finalReq, nil
}

func (uc *FingerprintUseCase) validateRequest(req domain.FingerprintRequest) error {
	if req.OutputWriter == nil && req.OutputPath == "" {
		return fmt.Errorf("output writer or output path is required")
	}
	return req.Validate()
}

func (uc *FingerprintUseCase) loadAndMergeConfig(req domain.FingerprintRequest) (domain.FingerprintRequest, error) {
	if uc.configLoader == nil {
		return req, nil
	}

	var configReq *domain.FingerprintRequest
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

func (uc *FingerprintUseCase) writeResponse(response *domain.FingerprintResponse, req domain.FingerprintRequest) error {
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
