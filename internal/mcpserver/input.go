package mcpserver

import (
	"fmt"
	"math"
	"strings"

	"github.com/erraggy/cfgprint/internal/options"
	"github.com/erraggy/cfgprint/loader"
	"github.com/erraggy/cfgprint/variables"
)

// configInput represents the three ways a configuration document can be
// provided to a tool. Exactly one of File, URL, or Content must be set.
type configInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a YAML or JSON config file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch a config document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline config document content (JSON or YAML)"`
}

// loader returns the loader for whichever input was provided.
func (c configInput) loader() (loader.Loader, error) {
	if err := options.ExactlyOne(
		options.Source{Name: "file", Set: c.File != ""},
		options.Source{Name: "url", Set: c.URL != ""},
		options.Source{Name: "content", Set: c.Content != ""},
	); err != nil {
		return nil, err
	}

	switch {
	case c.File != "":
		if c.File == loader.StdinPath {
			return nil, fmt.Errorf("file %q is not supported; use content instead", loader.StdinPath)
		}
		if strings.HasPrefix(c.File, "http://") || strings.HasPrefix(c.File, "https://") {
			return nil, fmt.Errorf("file must be a filesystem path; use url for %s", c.File)
		}
		return loader.FileLoader{Path: c.File}, nil
	case c.URL != "":
		l := loader.URLLoader{URL: c.URL}
		if !cfg.AllowPrivateIPs {
			l.Client = newSafeHTTPClient()
		}
		return l, nil
	default:
		if int64(len(c.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set CFGPRINT_MAX_INLINE_SIZE to increase",
				len(c.Content), cfg.MaxInlineSize)
		}
		return loader.ReaderLoader{Source: "<content>", Reader: strings.NewReader(c.Content)}, nil
	}
}

// optionValues merges the stage and region shortcuts over options.
func optionValues(options map[string]any, stage, region string) variables.Options {
	opts := make(variables.Options, len(options)+2)
	for k, v := range options {
		opts[k] = wholeNumbers(v)
	}
	if stage != "" {
		opts["stage"] = stage
	}
	if region != "" {
		opts["region"] = region
	}
	return opts
}

// wholeNumbers turns JSON numbers without a fraction back into int64 so
// opt: values print as integers.
func wholeNumbers(v any) any {
	switch val := v.(type) {
	case float64:
		if val == math.Trunc(val) && val >= math.MinInt64 && val < math.MaxInt64 {
			return int64(val)
		}
		return val
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = wholeNumbers(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = wholeNumbers(item)
		}
		return out
	default:
		return v
	}
}
