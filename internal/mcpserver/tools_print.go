package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/cfgprint/printer"
)

type printInput struct {
	Config    configInput    `json:"config"              jsonschema:"The config document to print"`
	Options   map[string]any `json:"options,omitempty"   jsonschema:"Values for opt: references, keyed by option name"`
	Stage     string         `json:"stage,omitempty"     jsonschema:"Shortcut for options.stage"`
	Region    string         `json:"region,omitempty"    jsonschema:"Shortcut for options.region"`
	Path      string         `json:"path,omitempty"      jsonschema:"Dot-separated path of the value to print, e.g. provider.stage"`
	Format    string         `json:"format,omitempty"    jsonschema:"Output format: yaml, json, or text"`
	Transform string         `json:"transform,omitempty" jsonschema:"Transform applied after path extraction: keys"`
	MaxDepth  int            `json:"max_depth,omitempty" jsonschema:"Substitution limit per value (default from CFGPRINT_MAX_DEPTH)"`
}

type printOutput struct {
	Output string `json:"output"`
	Format string `json:"format"`
}

func handlePrint(ctx context.Context, _ *mcp.CallToolRequest, input printInput) (*mcp.CallToolResult, printOutput, error) {
	l, err := input.Config.loader()
	if err != nil {
		return errResult(err), printOutput{}, nil
	}

	format := input.Format
	if format == "" {
		format = cfg.DefaultFormat
	}
	maxDepth := input.MaxDepth
	if maxDepth <= 0 {
		maxDepth = cfg.MaxDepth
	}

	out, err := printer.Print(ctx, l,
		printer.WithPath(input.Path),
		printer.WithFormat(format),
		printer.WithTransform(input.Transform),
		printer.WithOptions(optionValues(input.Options, input.Stage, input.Region)),
		printer.WithMaxDepth(maxDepth),
	)
	if err != nil {
		return errResult(err), printOutput{}, nil
	}
	return nil, printOutput{Output: out, Format: format}, nil
}
