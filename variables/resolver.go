package variables

import (
	"fmt"

	"github.com/erraggy/cfgprint/cfgerrors"
	"github.com/erraggy/cfgprint/document"
)

// Resolver resolves references in one document. It owns a private copy of
// the document; it is not safe for concurrent use.
type Resolver struct {
	root     *document.Node
	options  Options
	syntax   *Syntax
	decl     *document.Node
	maxDepth int
	logger   Logger
}

// New creates a Resolver over a deep copy of root. The reference syntax is
// fixed here: the pattern declared at SyntaxPath if any, else the configured
// default.
func New(root *document.Node, opts ...Option) (*Resolver, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("variables: invalid options: %w", err)
	}

	if root == nil {
		root = document.Null()
	}
	root = root.Clone()
	syntax, decl, err := DeclaredSyntax(root, cfg.syntax)
	if err != nil {
		return nil, err
	}
	if decl != nil {
		cfg.logger.Debug("using declared variable syntax", "pattern", syntax.String())
	}

	return &Resolver{
		root:     root,
		options:  cfg.options,
		syntax:   syntax,
		decl:     decl,
		maxDepth: cfg.maxDepth,
		logger:   cfg.logger,
	}, nil
}

// Syntax returns the reference syntax in effect for this document.
func (r *Resolver) Syntax() *Syntax {
	return r.syntax
}

// Document returns the resolver's copy of the document, resolved or not.
func (r *Resolver) Document() *document.Node {
	return r.root
}

// ResolveExpression resolves the text between reference delimiters against
// the document and options. The first satisfiable element of the fallback
// chain wins; when none is, a ReferenceError is returned. The returned node
// is a copy and may itself contain unresolved references.
func (r *Resolver) ResolveExpression(expr string) (*document.Node, error) {
	chain, err := ParseChain(expr)
	if err != nil {
		return nil, err
	}
	for _, e := range chain {
		if e.Literal {
			return document.Scalar(e.Value), nil
		}
		if val, ok := r.lookup(e); ok {
			return val, nil
		}
	}
	msg := "no value found"
	if len(chain) > 1 {
		msg = fmt.Sprintf("none of %d alternatives has a value", len(chain))
	}
	return nil, &cfgerrors.ReferenceError{Ref: expr, Message: msg}
}

func (r *Resolver) lookup(e Expression) (*document.Node, bool) {
	switch e.Source {
	case SourceSelf:
		n, ok := document.Find(r.root, e.Path)
		if !ok || n.IsNull() {
			return nil, false
		}
		return n.Clone(), true
	case SourceOpt:
		v, ok := r.options.Lookup(e.Path)
		if !ok {
			return nil, false
		}
		n, err := document.FromValue(v)
		if err != nil {
			n = document.Scalar(v)
		}
		return n, true
	default:
		return nil, false
	}
}

// describe names a node's kind for messages, using the Go type for scalars.
func describe(n *document.Node) string {
	if n.Kind == document.ScalarKind {
		return fmt.Sprintf("%T", n.Value)
	}
	return n.Kind.String()
}
