package variables

import (
	"fmt"
	"regexp"

	"github.com/erraggy/cfgprint/cfgerrors"
	"github.com/erraggy/cfgprint/document"
)

const (
	// DefaultPattern recognizes ${expression}. Braces are excluded from the
	// expression so that in ${a.${b}} the inner reference matches first.
	DefaultPattern = `\$\{([^{}]+?)\}`

	// SyntaxPath is where a document may declare its own reference pattern.
	SyntaxPath = "provider.variableSyntax"
)

// DefaultSyntax is the compiled DefaultPattern.
var DefaultSyntax = MustSyntax(DefaultPattern)

// Syntax is a compiled reference pattern. The first capture group holds the
// expression text between the delimiters.
type Syntax struct {
	re *regexp.Regexp
}

// Match is one reference found in a string.
type Match struct {
	// Start and End are byte offsets of the whole reference, delimiters included.
	Start, End int
	// Expr is the captured expression text.
	Expr string
}

// NewSyntax compiles pattern. The pattern must have at least one capture
// group and must not match the empty string.
func NewSyntax(pattern string) (*Syntax, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &cfgerrors.SyntaxError{Pattern: pattern, Message: "does not compile", Cause: err}
	}
	if re.NumSubexp() < 1 {
		return nil, &cfgerrors.SyntaxError{Pattern: pattern, Message: "needs a capture group for the expression"}
	}
	if re.MatchString("") {
		return nil, &cfgerrors.SyntaxError{Pattern: pattern, Message: "matches the empty string"}
	}
	return &Syntax{re: re}, nil
}

// MustSyntax is like NewSyntax but panics on error.
func MustSyntax(pattern string) *Syntax {
	s, err := NewSyntax(pattern)
	if err != nil {
		panic(err)
	}
	return s
}

// String returns the pattern source.
func (s *Syntax) String() string {
	return s.re.String()
}

// Scan returns the non-overlapping references in str, left to right.
func (s *Syntax) Scan(str string) []Match {
	locs := s.re.FindAllStringSubmatchIndex(str, -1)
	if len(locs) == 0 {
		return nil
	}
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		m := Match{Start: loc[0], End: loc[1]}
		if loc[2] >= 0 {
			m.Expr = str[loc[2]:loc[3]]
		}
		matches = append(matches, m)
	}
	return matches
}

// HasReference reports whether str contains at least one reference.
func (s *Syntax) HasReference(str string) bool {
	return s.re.MatchString(str)
}

// DeclaredSyntax returns the syntax a document declares at SyntaxPath along
// with the declaring node, or fallback and nil when there is no declaration.
func DeclaredSyntax(root *document.Node, fallback *Syntax) (*Syntax, *document.Node, error) {
	decl, ok := document.Find(root, SyntaxPath)
	if !ok || decl.IsNull() {
		return fallback, nil, nil
	}
	pattern, ok := decl.StringValue()
	if !ok {
		return nil, nil, &cfgerrors.SyntaxError{
			Message: fmt.Sprintf("%s must be a string, got %s", SyntaxPath, describe(decl)),
		}
	}
	syntax, err := NewSyntax(pattern)
	if err != nil {
		return nil, nil, err
	}
	return syntax, decl, nil
}
