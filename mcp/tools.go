package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all codeprint MCP tools with the server using
// default dependencies.
func RegisterTools(s *server.MCPServer) {
	RegisterToolsWith(s, NewHandlerSet(nil))
}

// RegisterToolsWith registers all codeprint MCP tools backed by the given
// handler set.
func RegisterToolsWith(s *server.MCPServer, h *HandlerSet) {
	// Tool 1: compare_code - Pairwise structural comparison
	s.AddTool(mcp.NewTool("compare_code",
		mcp.WithDescription("Compare two code snippets for structural similarity using depth-weighted AST fingerprints"),
		mcp.WithString("code_a",
			mcp.Required(),
			mcp.Description("First code snippet")),
		mcp.WithString("code_b",
			mcp.Required(),
			mcp.Description("Second code snippet")),
		mcp.WithString("label_a",
			mcp.Description("Label for the first snippet (default: a)")),
		mcp.WithString("label_b",
			mcp.Description("Label for the second snippet (default: b)")),
		mcp.WithString("language",
			mcp.Description("Source language: python or javascript (default: python)")),
		mcp.WithNumber("flag_threshold",
			mcp.Description("Similarity score that flags the pair as suspicious, 0.0-1.0 (default: 0.75)")),
	), h.HandleCompareCode)

	// Tool 2: find_best_match - Corpus lookup
	s.AddTool(mcp.NewTool("find_best_match",
		mcp.WithDescription("Find the most structurally similar entry in a fingerprint corpus for a code snippet"),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("Code snippet to match")),
		mcp.WithString("corpus_path",
			mcp.Required(),
			mcp.Description("Path to the corpus file (JSON Lines, one entry per line)")),
		mcp.WithString("label",
			mcp.Description("Label for the snippet (default: snippet)")),
		mcp.WithString("language",
			mcp.Description("Source language: python or javascript (default: python)")),
		mcp.WithNumber("flag_threshold",
			mcp.Description("Similarity score that flags the match as suspicious, 0.0-1.0 (default: 0.75)")),
	), h.HandleFindBestMatch)

	// Tool 3: scan_directory - Bulk all-pairs scan
	s.AddTool(mcp.NewTool("scan_directory",
		mcp.WithDescription("Scan a directory and report pairs of suspiciously similar source files"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the directory of source files to scan")),
		mcp.WithString("language",
			mcp.Description("Source language: python or javascript (default: python)")),
		mcp.WithNumber("flag_threshold",
			mcp.Description("Similarity score that flags a pair as suspicious, 0.0-1.0 (default: 0.75)")),
		mcp.WithNumber("max_pairs",
			mcp.Description("Maximum number of pair comparisons before the scan is rejected (default: 4950)")),
		mcp.WithBoolean("recursive",
			mcp.Description("Recursively scan directories (default: true)")),
		mcp.WithString("output_mode",
			mcp.Description("Response detail: summary or full (default: summary)")),
	), h.HandleScanDirectory)

	// Tool 4: fingerprint_code - Structural fingerprint inspection
	s.AddTool(mcp.NewTool("fingerprint_code",
		mcp.WithDescription("Show the structural token fingerprint of a code snippet"),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("Code snippet to fingerprint")),
		mcp.WithString("label",
			mcp.Description("Label for the snippet (default: snippet)")),
		mcp.WithString("language",
			mcp.Description("Source language: python or javascript (default: python)")),
		mcp.WithBoolean("include_weights",
			mcp.Description("Include the per-token weight map (default: false)")),
	), h.HandleFingerprintCode)
}
