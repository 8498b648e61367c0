package variables

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/erraggy/cfgprint/cfgerrors"
	"github.com/erraggy/cfgprint/document"
	"github.com/erraggy/cfgprint/internal/pathutil"
)

// Populate resolves every reference in a copy of root and returns the copy.
// The input tree is not modified.
func Populate(ctx context.Context, root *document.Node, opts ...Option) (*document.Node, error) {
	r, err := New(root, opts...)
	if err != nil {
		return nil, err
	}
	return r.ResolveAll(ctx)
}

// ResolveAll resolves the resolver's document in place and returns it.
//
// Resolved values are written back as the walk proceeds, so a self:
// reference to a path already visited sees the resolved value. A string
// that is exactly one reference takes the type of the resolved value;
// references embedded in longer strings are spliced in as text. Calling
// ResolveAll again on a resolved document changes nothing.
func (r *Resolver) ResolveAll(ctx context.Context) (*document.Node, error) {
	path := pathutil.Get()
	defer pathutil.Put(path)

	resolved, err := r.walk(ctx, r.root, path, 0)
	if err != nil {
		return nil, err
	}
	r.root = resolved
	return r.root, nil
}

func (r *Resolver) walk(ctx context.Context, n *document.Node, path *pathutil.PathBuilder, depth int) (*document.Node, error) {
	if n == nil || n == r.decl {
		return n, nil
	}
	switch n.Kind {
	case document.MappingKind:
		for i := range n.Pairs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			path.Push(n.Pairs[i].Key)
			v, err := r.walk(ctx, n.Pairs[i].Value, path, depth)
			path.Pop()
			if err != nil {
				return nil, err
			}
			n.Pairs[i].Value = v
		}
		return n, nil
	case document.SequenceKind:
		for i, item := range n.Items {
			path.PushIndex(i)
			v, err := r.walk(ctx, item, path, depth)
			path.Pop()
			if err != nil {
				return nil, err
			}
			n.Items[i] = v
		}
		return n, nil
	default:
		s, ok := n.StringValue()
		if !ok {
			return n, nil
		}
		return r.resolveString(ctx, n, s, path, depth)
	}
}

// resolveString substitutes references in s until none remain. Each pass
// counts against maxDepth, including passes made inside a collection that
// a reference resolved to.
func (r *Resolver) resolveString(ctx context.Context, orig *document.Node, s string, path *pathutil.PathBuilder, depth int) (*document.Node, error) {
	current := s
	for {
		matches := r.syntax.Scan(current)
		if len(matches) == 0 {
			if current == s {
				return orig, nil
			}
			return document.Scalar(current), nil
		}
		if depth >= r.maxDepth {
			return nil, &cfgerrors.ReferenceError{
				Ref:        matches[0].Expr,
				Path:       path.String(),
				IsCircular: true,
				Message:    "resolution did not terminate",
				Cause: &cfgerrors.ResourceLimitError{
					ResourceType: "resolution_depth",
					Limit:        int64(r.maxDepth),
				},
			}
		}
		depth++

		if len(matches) == 1 && matches[0].Start == 0 && matches[0].End == len(current) {
			val, err := r.resolveAt(matches[0].Expr, path, depth)
			if err != nil {
				return nil, err
			}
			if !val.IsScalar() {
				return r.walk(ctx, val, path, depth)
			}
			str, ok := val.StringValue()
			if !ok {
				return val, nil
			}
			current = str
			continue
		}

		var b strings.Builder
		last := 0
		for _, m := range matches {
			val, err := r.resolveAt(m.Expr, path, depth)
			if err != nil {
				return nil, err
			}
			text, ok := val.Text()
			if !ok {
				return nil, &cfgerrors.ReferenceError{
					Ref:     m.Expr,
					Path:    path.String(),
					Message: fmt.Sprintf("cannot embed a %s in a string", describe(val)),
				}
			}
			b.WriteString(current[last:m.Start])
			b.WriteString(text)
			last = m.End
		}
		b.WriteString(current[last:])
		current = b.String()
	}
}

func (r *Resolver) resolveAt(expr string, path *pathutil.PathBuilder, depth int) (*document.Node, error) {
	val, err := r.ResolveExpression(expr)
	if err != nil {
		var refErr *cfgerrors.ReferenceError
		if errors.As(err, &refErr) && refErr.Path == "" {
			refErr.Path = path.String()
		}
		return nil, err
	}
	r.logger.Debug("resolved reference", "expr", expr, "path", path.String(), "depth", depth)
	return val, nil
}
