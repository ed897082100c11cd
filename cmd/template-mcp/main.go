package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/template-match-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("template-match-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("template-match-mcp - MCP server for template matching in images")
			fmt.Println()
			fmt.Println("Usage: template-match-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  TEMPLATE_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println("  TEMPLATE_MCP_REGISTRY=<path>    Load a named-template registry (YAML)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("TEMPLATE_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("Template Match MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New()

	if registryPath := os.Getenv("TEMPLATE_MCP_REGISTRY"); registryPath != "" {
		if err := srv.LoadRegistry(registryPath); err != nil {
			log.Fatalf("Failed to load template registry: %v", err)
		}
		if logLevel == "debug" {
			log.Printf("Loaded template registry from %s", registryPath)
		}
	}

	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
