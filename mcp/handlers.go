package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/codeprint-dev/codeprint/app"
	"github.com/codeprint-dev/codeprint/domain"
	"github.com/codeprint-dev/codeprint/service"
	"github.com/mark3labs/mcp-go/mcp"
)

// HandlerSet exposes MCP tool handlers with shared dependencies.
type HandlerSet struct {
	deps *Dependencies
}

// NewHandlerSet constructs a handler set.
func NewHandlerSet(deps *Dependencies) *HandlerSet {
	if deps == nil {
		deps = NewDependencies(nil, "")
	}
	return &HandlerSet{deps: deps}
}

// HandleCompareCode handles the compare_code tool
func (h *HandlerSet) HandleCompareCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// Parse arguments with type assertion
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	codeA, ok := args["code_a"].(string)
	if !ok || codeA == "" {
		return mcp.NewToolResultError("code_a parameter is required and must be a string"), nil
	}

	codeB, ok := args["code_b"].(string)
	if !ok || codeB == "" {
		return mcp.NewToolResultError("code_b parameter is required and must be a string"), nil
	}

	// Load defaults from configuration
	req := domain.DefaultCompareRequest()
	cfg := h.deps.Config()
	if cfg != nil {
		if lang := domain.Language(cfg.Analysis.Language); lang.IsValid() {
			req.Language = lang
		}
		if cfg.Similarity.FlagThreshold > 0 {
			req.FlagThreshold = cfg.Similarity.FlagThreshold
		}
	}

	// Parse optional parameters
	req.LabelA = "a"
	if la, ok := args["label_a"].(string); ok && la != "" {
		req.LabelA = la
	}
	req.LabelB = "b"
	if lb, ok := args["label_b"].(string); ok && lb != "" {
		req.LabelB = lb
	}
	if rawLang, ok := args["language"].(string); ok {
		lang, err := parseLanguageArg(rawLang)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		req.Language = lang
	}
	if ft, ok := args["flag_threshold"].(float64); ok {
		req.FlagThreshold = ft
	}

	req.CodeA = codeA
	req.CodeB = codeB
	req.OutputFormat = domain.OutputFormatJSON
	req.OutputWriter = io.Discard
	req.ConfigPath = h.deps.ConfigPath()

	// Build use case with all required dependencies
	useCase := app.NewCompareUseCase(
		service.NewSimilarityService(nil),
		h.deps.fileReader,
		service.NewCompareFormatter(),
		service.NewCompareConfigurationLoader(),
	)

	// Execute comparison
	result, err := useCase.ExecuteAndReturn(ctx, *req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	// Convert result to JSON
	jsonData, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// HandleFindBestMatch handles the find_best_match tool
func (h *HandlerSet) HandleFindBestMatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	code, ok := args["code"].(string)
	if !ok || code == "" {
		return mcp.NewToolResultError("code parameter is required and must be a string"), nil
	}

	corpusPath, ok := args["corpus_path"].(string)
	if !ok || corpusPath == "" {
		return mcp.NewToolResultError("corpus_path parameter is required and must be a string"), nil
	}

	if _, err := os.Stat(corpusPath); os.IsNotExist(err) {
		return mcp.NewToolResultError(fmt.Sprintf("corpus does not exist: %s", corpusPath)), nil
	}

	// Load defaults from configuration
	req := domain.DefaultMatchRequest()
	cfg := h.deps.Config()
	if cfg != nil {
		if lang := domain.Language(cfg.Analysis.Language); lang.IsValid() {
			req.Language = lang
		}
		if cfg.Similarity.FlagThreshold > 0 {
			req.FlagThreshold = cfg.Similarity.FlagThreshold
		}
	}

	// Parse optional parameters
	req.Label = "snippet"
	if label, ok := args["label"].(string); ok && label != "" {
		req.Label = label
	}
	if rawLang, ok := args["language"].(string); ok {
		lang, err := parseLanguageArg(rawLang)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		req.Language = lang
	}
	if ft, ok := args["flag_threshold"].(float64); ok {
		req.FlagThreshold = ft
	}

	req.Code = code
	req.CorpusPath = corpusPath
	req.OutputFormat = domain.OutputFormatJSON
	req.OutputWriter = io.Discard
	req.ConfigPath = h.deps.ConfigPath()

	// Build use case with all required dependencies
	useCase := app.NewMatchUseCase(
		service.NewSimilarityService(service.NewCorpusStore()),
		h.deps.fileReader,
		service.NewMatchFormatter(),
		service.NewMatchConfigurationLoader(),
	)

	// Execute corpus lookup
	result, err := useCase.ExecuteAndReturn(ctx, *req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("corpus lookup failed: %v", err)), nil
	}

	// Convert result to JSON
	jsonData, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// HandleScanDirectory handles the scan_directory tool
func (h *HandlerSet) HandleScanDirectory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return mcp.NewToolResultError("path parameter is required and must be a string"), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return mcp.NewToolResultError(fmt.Sprintf("path does not exist: %s", path)), nil
	}

	// Load defaults from configuration
	req := domain.DefaultScanRequest()
	cfg := h.deps.Config()
	if cfg != nil {
		if lang := domain.Language(cfg.Analysis.Language); lang.IsValid() {
			req.Language = lang
		}
		if cfg.Similarity.FlagThreshold > 0 {
			req.FlagThreshold = cfg.Similarity.FlagThreshold
		}
		if cfg.Similarity.MaxBulkPairs > 0 {
			req.MaxPairs = cfg.Similarity.MaxBulkPairs
		}
		req.Recursive = cfg.Analysis.Recursive
		if len(cfg.Files.IncludePatterns) > 0 {
			req.IncludePatterns = cfg.Files.IncludePatterns
		}
		if len(cfg.Files.ExcludePatterns) > 0 {
			req.ExcludePatterns = cfg.Files.ExcludePatterns
		}
	}

	// Parse optional parameters
	if rawLang, ok := args["language"].(string); ok {
		lang, err := parseLanguageArg(rawLang)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		req.Language = lang
	}
	if ft, ok := args["flag_threshold"].(float64); ok {
		req.FlagThreshold = ft
	}
	if mp, ok := args["max_pairs"].(float64); ok {
		req.MaxPairs = int(mp)
	}
	if rec, ok := args["recursive"].(bool); ok {
		req.Recursive = rec
	}

	req.Paths = []string{path}
	req.OutputFormat = domain.OutputFormatJSON
	req.OutputWriter = io.Discard
	req.ConfigPath = h.deps.ConfigPath()

	// Tool arguments count as explicitly set flags for the config merge
	explicitFlags := map[string]bool{}
	if _, ok := args["language"]; ok {
		explicitFlags["language"] = true
	}
	if _, ok := args["flag_threshold"]; ok {
		explicitFlags["flag-threshold"] = true
	}
	if _, ok := args["max_pairs"]; ok {
		explicitFlags["max-pairs"] = true
	}
	if _, ok := args["recursive"]; ok {
		explicitFlags["recursive"] = true
	}

	// Build use case with all required dependencies
	scanService := service.NewScanService(h.deps.fileReader, service.NewNoOpProgressReporter())
	useCase := app.NewScanUseCase(
		scanService,
		h.deps.fileReader,
		service.NewScanFormatter(),
		service.NewScanConfigurationLoaderWithFlags(explicitFlags),
	)

	// Execute scan
	result, err := useCase.ExecuteAndReturn(ctx, *req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
	}

	// Parse output_mode parameter (default: "summary")
	outputMode := "summary"
	if om, ok := args["output_mode"].(string); ok {
		outputMode = om
	}

	// Parse max_results parameter (default: unlimited)
	maxResults := 0
	if mr, ok := args["max_results"].(float64); ok {
		maxResults = int(mr)
	}

	// Format output based on mode
	var responseData interface{}
	switch outputMode {
	case "full":
		responseData = result
	default: // "summary"
		responseData = formatScanSummary(result, maxResults)
	}

	// Convert to JSON
	jsonData, err := json.Marshal(responseData)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// HandleFingerprintCode handles the fingerprint_code tool
func (h *HandlerSet) HandleFingerprintCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	code, ok := args["code"].(string)
	if !ok || code == "" {
		return mcp.NewToolResultError("code parameter is required and must be a string"), nil
	}

	// Load defaults from configuration
	req := domain.DefaultFingerprintRequest()
	cfg := h.deps.Config()
	if cfg != nil {
		if lang := domain.Language(cfg.Analysis.Language); lang.IsValid() {
			req.Language = lang
		}
	}

	// Parse optional parameters
	req.Label = "snippet"
	if label, ok := args["label"].(string); ok && label != "" {
		req.Label = label
	}
	if rawLang, ok := args["language"].(string); ok {
		lang, err := parseLanguageArg(rawLang)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		req.Language = lang
	}

	req.Code = code
	req.OutputFormat = domain.OutputFormatJSON
	req.OutputWriter = io.Discard
	req.ConfigPath = h.deps.ConfigPath()

	// Build use case with all required dependencies
	useCase := app.NewFingerprintUseCase(
		service.NewSimilarityService(nil),
		h.deps.fileReader,
		service.NewFingerprintFormatter(),
		service.NewFingerprintConfigurationLoader(),
	)

	// Execute fingerprinting
	result, err := useCase.ExecuteAndReturn(ctx, *req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("fingerprinting failed: %v", err)), nil
	}

	includeWeights := false
	if iw, ok := args["include_weights"].(bool); ok {
		includeWeights = iw
	}

	// Format output based on mode
	var responseData interface{}
	if includeWeights {
		responseData = result
	} else {
		responseData = map[string]interface{}{
			"label":        result.Label,
			"language":     result.Language,
			"token_string": result.TokenString,
			"token_count":  result.TokenCount,
			"unique_types": result.UniqueTypes,
		}
	}

	// Convert to JSON
	jsonData, err := json.Marshal(responseData)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// Helper functions

func parseLanguageArg(value string) (domain.Language, error) {
	lang := domain.Language(strings.ToLower(strings.TrimSpace(value)))
	if !lang.IsValid() {
		return "", fmt.Errorf("unsupported language: %s", value)
	}
	return lang, nil
}

// formatScanSummary formats scan results in compact summary mode
func formatScanSummary(result *domain.ScanResponse, maxResults int) map[string]interface{} {
	issues := []string{}

	for _, pair := range result.SuspiciousPairs {
		if maxResults == 0 || len(issues) < maxResults {
			// Format: "fileA <-> fileB: score (confidence)"
			issue := fmt.Sprintf("%s <-> %s: %.4f (%s confidence)",
				pair.FileA,
				pair.FileB,
				pair.Score,
				pair.Confidence)
			issues = append(issues, issue)
		}
	}

	summary := map[string]interface{}{
		"issues": issues,
		"summary": map[string]interface{}{
			"total_files":    result.Summary.TotalFiles,
			"skipped_files":  result.Summary.SkippedFiles,
			"compared_pairs": result.Summary.ComparedPairs,
			"flagged_pairs":  result.Summary.FlaggedPairs,
			"flag_threshold": result.Summary.FlagThreshold,
		},
	}

	if len(result.Warnings) > 0 {
		summary["warnings"] = result.Warnings
	}

	return summary
}
