package printer

import (
	"context"
	"errors"
	"fmt"

	"github.com/erraggy/cfgprint/cfgerrors"
	"github.com/erraggy/cfgprint/document"
	"github.com/erraggy/cfgprint/loader"
	"github.com/erraggy/cfgprint/variables"
)

// Option configures Print.
type Option func(*printConfig) error

type printConfig struct {
	path      string
	format    string
	transform string
	options   variables.Options
	syntax    string
	maxDepth  int
	logger    variables.Logger
}

// WithPath limits output to the value at a dot-separated path.
func WithPath(path string) Option {
	return func(cfg *printConfig) error {
		cfg.path = path
		return nil
	}
}

// WithFormat selects the output format (default FormatYAML).
func WithFormat(format string) Option {
	return func(cfg *printConfig) error {
		cfg.format = format
		return nil
	}
}

// WithTransform selects a transform applied after path extraction.
func WithTransform(transform string) Option {
	return func(cfg *printConfig) error {
		cfg.transform = transform
		return nil
	}
}

// WithOptions sets the values for opt: references.
func WithOptions(opts variables.Options) Option {
	return func(cfg *printConfig) error {
		cfg.options = opts
		return nil
	}
}

// WithSyntax replaces the default reference pattern for documents that do
// not declare their own.
func WithSyntax(pattern string) Option {
	return func(cfg *printConfig) error {
		cfg.syntax = pattern
		return nil
	}
}

// WithMaxDepth bounds the substitutions along one resolution chain.
func WithMaxDepth(depth int) Option {
	return func(cfg *printConfig) error {
		cfg.maxDepth = depth
		return nil
	}
}

// WithLogger sets the logger for pipeline diagnostics.
func WithLogger(l variables.Logger) Option {
	return func(cfg *printConfig) error {
		if l == nil {
			l = variables.NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}

// Print loads, resolves, extracts, transforms, and formats a document. The
// returned string has no trailing newline. On error nothing is returned.
func Print(ctx context.Context, l loader.Loader, opts ...Option) (string, error) {
	cfg := &printConfig{
		maxDepth: variables.DefaultMaxDepth,
		logger:   variables.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return "", fmt.Errorf("printer: invalid options: %w", err)
		}
	}
	if err := ValidateFormat(cfg.format); err != nil {
		return "", err
	}
	if err := ValidateTransform(cfg.transform); err != nil {
		return "", err
	}
	resolverOpts := []variables.Option{
		variables.WithOptions(cfg.options),
		variables.WithMaxDepth(cfg.maxDepth),
		variables.WithLogger(cfg.logger),
	}
	if cfg.syntax != "" {
		resolverOpts = append(resolverOpts, variables.WithSyntax(cfg.syntax))
	}
	if err := variables.CheckOptions(resolverOpts...); err != nil {
		return "", fmt.Errorf("printer: invalid options: %w", err)
	}
	if l == nil {
		return "", &cfgerrors.ConfigLoadError{Cause: errors.New("no loader")}
	}

	root, err := l.Load(ctx)
	if err != nil {
		return "", err
	}
	if root == nil {
		root = document.Null()
	}
	cfg.logger.Debug("loaded config", "kind", root.Kind.String(), "entries", root.Len())

	resolved, err := variables.Populate(ctx, root, resolverOpts...)
	if err != nil {
		return "", err
	}

	value, err := document.Lookup(resolved, cfg.path)
	if err != nil {
		return "", err
	}

	value, err = Transform(value, cfg.transform)
	if err != nil {
		return "", err
	}

	out, err := Format(value, cfg.format)
	if err != nil {
		var notScalar *cfgerrors.NotScalarError
		if errors.As(err, &notScalar) && notScalar.Path == "" {
			notScalar.Path = cfg.path
		}
		return "", err
	}
	cfg.logger.Debug("formatted output", "format", formatName(cfg.format), "bytes", len(out))
	return out, nil
}

func formatName(format string) string {
	if format == "" {
		return DefaultFormat
	}
	return format
}
