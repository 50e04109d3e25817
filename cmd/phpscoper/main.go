package main

import (
	"fmt"
	"os"

	"github.com/erraggy/phpscoper"
	"github.com/erraggy/phpscoper/cmd/phpscoper/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("phpscoper v%s (commit %s, %s)\n", phpscoper.Version(), phpscoper.Commit(), phpscoper.GoVersion())
	case "help", "-h", "--help":
		printUsage()
	case "scope":
		if err := commands.HandleScope(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`phpscoper - PHP dependency namespace prefixer

Usage:
  phpscoper <command> [options]

Commands:
  scope       Prefix the namespaces of PHP dependency files
  mcp         Start the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  phpscoper scope --prefix Humbug vendor/composer/installed.json
  phpscoper scope -c phpscoper.yaml -o build vendor/composer/installed.json

Run 'phpscoper <command> --help' for more information on a command.`)
}
