package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/phpscoper/config"
	"github.com/erraggy/phpscoper/internal/runner"
	"github.com/erraggy/phpscoper/scoper"
	"github.com/erraggy/phpscoper/scoper/composer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type scopeInput struct {
	FilePath          string   `json:"file_path"                    jsonschema:"Path of the file, e.g. vendor/composer/installed.json"`
	Contents          string   `json:"contents"                     jsonschema:"The file contents to scope"`
	Prefix            string   `json:"prefix,omitempty"             jsonschema:"Namespace prefix, e.g. Humbug. Defaults to PHPSCOPER_MCP_PREFIX"`
	ExcludeNamespaces []string `json:"exclude_namespaces,omitempty" jsonschema:"Namespaces to leave unprefixed"`
}

type scopeOutput struct {
	FilePath string `json:"file_path"`
	Handled  bool   `json:"handled"`
	Changed  bool   `json:"changed"`
	Contents string `json:"contents"`
}

func handleScope(_ context.Context, _ *mcp.CallToolRequest, input scopeInput) (*mcp.CallToolResult, scopeOutput, error) {
	if input.FilePath == "" {
		return errResult(fmt.Errorf("file_path is required")), scopeOutput{}, nil
	}
	if len(input.Contents) > cfg.MaxContentBytes {
		return errResult(fmt.Errorf("contents exceed %d bytes", cfg.MaxContentBytes)), scopeOutput{}, nil
	}

	prefix := input.Prefix
	if prefix == "" {
		prefix = cfg.DefaultPrefix
	}

	result, err := runner.Run(
		[]scoper.Document{{Path: input.FilePath, Contents: input.Contents}},
		runner.WithConfig(&config.Config{
			Prefix:            prefix,
			ExcludeNamespaces: input.ExcludeNamespaces,
		}),
	)
	if err != nil {
		return errResult(err), scopeOutput{}, nil
	}

	return nil, scopeOutput{
		FilePath: input.FilePath,
		Handled:  composer.IsInstalledPackagesFile(input.FilePath),
		Changed:  result.Changed > 0,
		Contents: result.Documents[0].Contents,
	}, nil
}
