package variables

import (
	"fmt"
	"strings"

	"github.com/erraggy/cfgprint/cfgerrors"
)

// Reference sources.
const (
	SourceSelf = "self"
	SourceOpt  = "opt"
)

// Expression is one element of a fallback chain: a quoted literal or a
// source:path reference.
type Expression struct {
	Literal bool
	// Value is the unescaped literal text.
	Value string
	// Source is SourceSelf or SourceOpt.
	Source string
	// Path is the dot path (self) or option name (opt).
	Path string
}

// String renders the expression back in reference syntax.
func (e Expression) String() string {
	if e.Literal {
		return "'" + strings.ReplaceAll(e.Value, "'", `\'`) + "'"
	}
	return e.Source + ":" + e.Path
}

// Chain is an ordered list of alternatives; the first that resolves wins.
type Chain []Expression

// String renders the chain back in reference syntax.
func (c Chain) String() string {
	parts := make([]string, len(c))
	for i, e := range c {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// ParseChain parses the text between reference delimiters into a chain.
// Elements are separated by commas outside quotes; surrounding whitespace
// and empty elements are ignored.
func ParseChain(expr string) (Chain, error) {
	parts, err := splitChain(expr)
	if err != nil {
		return nil, &cfgerrors.ReferenceError{Ref: expr, Unsupported: true, Message: err.Error()}
	}

	chain := make(Chain, 0, len(parts))
	for _, part := range parts {
		e, err := parseExpression(part)
		if err != nil {
			return nil, &cfgerrors.ReferenceError{Ref: expr, Unsupported: true, Message: err.Error()}
		}
		chain = append(chain, e)
	}
	if len(chain) == 0 {
		return nil, &cfgerrors.ReferenceError{Ref: expr, Unsupported: true, Message: "empty reference"}
	}
	return chain, nil
}

func splitChain(expr string) ([]string, error) {
	var (
		parts []string
		quote byte
		start int
	)
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '\'' || c == '"':
			quote = c
		case c == ',':
			parts = appendPart(parts, expr[start:i])
			start = i + 1
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated %c literal", quote)
	}
	return appendPart(parts, expr[start:]), nil
}

func appendPart(parts []string, part string) []string {
	part = strings.TrimSpace(part)
	if part == "" {
		return parts
	}
	return append(parts, part)
}

func parseExpression(part string) (Expression, error) {
	if q := part[0]; q == '\'' || q == '"' {
		if len(part) < 2 || part[len(part)-1] != q {
			return Expression{}, fmt.Errorf("malformed literal %s", part)
		}
		return Expression{Literal: true, Value: unescape(part[1:len(part)-1])}, nil
	}

	source, path, ok := strings.Cut(part, ":")
	if !ok {
		return Expression{}, fmt.Errorf("expected source:path or a quoted literal, got %q", part)
	}
	source = strings.TrimSpace(source)
	path = strings.TrimSpace(path)
	switch source {
	case SourceSelf, SourceOpt:
	default:
		return Expression{}, fmt.Errorf("unknown source %q (supported: %s, %s)", source, SourceSelf, SourceOpt)
	}
	if source == SourceOpt && path == "" {
		return Expression{}, fmt.Errorf("%s reference needs an option name", SourceOpt)
	}
	return Expression{Source: source, Path: path}, nil
}

// unescape removes backslash escapes inside a quoted literal.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
