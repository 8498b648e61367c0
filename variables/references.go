package variables

import (
	"github.com/erraggy/cfgprint/document"
	"github.com/erraggy/cfgprint/internal/pathutil"
)

// Reference is one reference found in a document.
type Reference struct {
	// Path is the location of the string holding the reference.
	Path string
	// Expr is the text between the delimiters.
	Expr string
	// Err is the error resolving Expr on its own, or nil. A nil Err does
	// not guarantee the whole document resolves.
	Err error
}

// References lists the references in the resolver's document in walk
// order without modifying it. The syntax declaration is skipped.
func (r *Resolver) References() []Reference {
	path := pathutil.Get()
	defer pathutil.Put(path)

	var refs []Reference
	var visit func(n *document.Node)
	visit = func(n *document.Node) {
		if n == nil || n == r.decl {
			return
		}
		switch n.Kind {
		case document.MappingKind:
			for _, p := range n.Pairs {
				path.Push(p.Key)
				visit(p.Value)
				path.Pop()
			}
		case document.SequenceKind:
			for i, item := range n.Items {
				path.PushIndex(i)
				visit(item)
				path.Pop()
			}
		default:
			s, ok := n.StringValue()
			if !ok {
				return
			}
			for _, m := range r.syntax.Scan(s) {
				_, err := r.ResolveExpression(m.Expr)
				refs = append(refs, Reference{Path: path.String(), Expr: m.Expr, Err: err})
			}
		}
	}
	visit(r.root)
	return refs
}
