package variables

import "fmt"

// DefaultMaxDepth is the default bound on substitutions applied along one
// resolution chain.
const DefaultMaxDepth = 64

// Options holds caller-supplied values for opt: references. A key that is
// present with a nil value counts as unset.
type Options map[string]any

// Lookup returns the value for name when it is set.
func (o Options) Lookup(name string) (any, bool) {
	v, ok := o[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Option configures a Resolver.
type Option func(*resolverConfig) error

type resolverConfig struct {
	options  Options
	syntax   *Syntax
	maxDepth int
	logger   Logger
}

// WithOptions sets the values for opt: references.
func WithOptions(opts Options) Option {
	return func(cfg *resolverConfig) error {
		cfg.options = opts
		return nil
	}
}

// WithSyntax replaces DefaultSyntax. A syntax declared in the document at
// SyntaxPath still takes precedence.
func WithSyntax(pattern string) Option {
	return func(cfg *resolverConfig) error {
		s, err := NewSyntax(pattern)
		if err != nil {
			return err
		}
		cfg.syntax = s
		return nil
	}
}

// WithMaxDepth bounds the number of substitutions along one resolution chain.
func WithMaxDepth(depth int) Option {
	return func(cfg *resolverConfig) error {
		if depth <= 0 {
			return fmt.Errorf("max depth must be positive, got %d", depth)
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithLogger sets the logger for resolution diagnostics.
func WithLogger(l Logger) Option {
	return func(cfg *resolverConfig) error {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
		return nil
	}
}

// CheckOptions reports the first invalid option without building a Resolver.
func CheckOptions(opts ...Option) error {
	_, err := applyOptions(opts...)
	return err
}

func applyOptions(opts ...Option) (*resolverConfig, error) {
	cfg := &resolverConfig{
		syntax:   DefaultSyntax,
		maxDepth: DefaultMaxDepth,
		logger:   NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
