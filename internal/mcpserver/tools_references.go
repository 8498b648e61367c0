package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/cfgprint/variables"
)

type referencesInput struct {
	Config         configInput    `json:"config"                    jsonschema:"The config document to inspect"`
	Options        map[string]any `json:"options,omitempty"         jsonschema:"Values for opt: references, keyed by option name"`
	Stage          string         `json:"stage,omitempty"           jsonschema:"Shortcut for options.stage"`
	Region         string         `json:"region,omitempty"          jsonschema:"Shortcut for options.region"`
	UnresolvedOnly bool           `json:"unresolved_only,omitempty" jsonschema:"Only list references that do not resolve"`
}

type referenceSummary struct {
	Path       string `json:"path"`
	Expression string `json:"expression"`
	Resolved   bool   `json:"resolved"`
	Error      string `json:"error,omitempty"`
}

type referencesOutput struct {
	Syntax     string             `json:"syntax"`
	Total      int                `json:"total"`
	Unresolved int                `json:"unresolved"`
	References []referenceSummary `json:"references,omitempty"`
}

func handleReferences(ctx context.Context, _ *mcp.CallToolRequest, input referencesInput) (*mcp.CallToolResult, referencesOutput, error) {
	l, err := input.Config.loader()
	if err != nil {
		return errResult(err), referencesOutput{}, nil
	}
	root, err := l.Load(ctx)
	if err != nil {
		return errResult(err), referencesOutput{}, nil
	}
	r, err := variables.New(root, variables.WithOptions(optionValues(input.Options, input.Stage, input.Region)))
	if err != nil {
		return errResult(err), referencesOutput{}, nil
	}

	refs := r.References()
	output := referencesOutput{Syntax: r.Syntax().String(), Total: len(refs)}
	for _, ref := range refs {
		summary := referenceSummary{Path: ref.Path, Expression: ref.Expr, Resolved: ref.Err == nil}
		if ref.Err != nil {
			output.Unresolved++
			summary.Error = sanitizeError(ref.Err)
		} else if input.UnresolvedOnly {
			continue
		}
		output.References = append(output.References, summary)
	}
	return nil, output, nil
}
