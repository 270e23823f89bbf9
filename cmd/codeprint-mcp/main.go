package main

import (
	"fmt"
	"log"
	"os"

	"github.com/codeprint-dev/codeprint/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "codeprint"
	serverVersion = "1.0.0"
)

func main() {
	// Set up logging to stderr (MCP uses stdout for JSON-RPC)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Create MCP server with tool capabilities
	server := mcpserver.NewMCPServer(
		serverName,
		serverVersion,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	// Register all codeprint tools
	mcp.RegisterTools(server)

	log.Printf("Starting %s MCP server v%s\n", serverName, serverVersion)
	log.Println("Registered tools:")
	log.Println("  - compare_code: Pairwise structural similarity")
	log.Println("  - find_best_match: Closest corpus entry lookup")
	log.Println("  - scan_directory: Bulk all-pairs similarity scan")
	log.Println("  - fingerprint_code: Structural fingerprint inspection")
	log.Println("")
	log.Println("Server ready - waiting for MCP client connection...")

	// Start server with stdio transport
	// This blocks until the server is terminated
	if err := mcpserver.ServeStdio(server); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
