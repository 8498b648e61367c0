package document

import (
	"strconv"
	"strings"

	"github.com/erraggy/cfgprint/cfgerrors"
)

// SplitPath splits a dot-separated path into segments. An empty path has no
// segments.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// Lookup returns the node at the dot-separated path below n. Mapping nodes
// are navigated by key and sequence nodes by non-negative integer index.
// An empty path returns n itself.
func Lookup(n *Node, path string) (*Node, error) {
	segments := SplitPath(path)
	current := n
	for _, seg := range segments {
		next, ok := child(current, seg)
		if !ok {
			return nil, &cfgerrors.PathNotFoundError{
				Path:    path,
				Segment: seg,
				Message: missingReason(current, seg),
			}
		}
		current = next
	}
	return current, nil
}

// Find is like Lookup but reports only whether the path exists.
func Find(n *Node, path string) (*Node, bool) {
	current := n
	for _, seg := range SplitPath(path) {
		next, ok := child(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func child(n *Node, seg string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	switch n.Kind {
	case MappingKind:
		return n.Get(seg)
	case SequenceKind:
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 || idx >= len(n.Items) {
			return nil, false
		}
		return n.Items[idx], true
	default:
		return nil, false
	}
}

func missingReason(n *Node, seg string) string {
	switch {
	case n == nil || n.IsNull():
		return "parent is null"
	case n.Kind == ScalarKind:
		return "cannot descend into a scalar"
	case n.Kind == SequenceKind:
		if _, err := strconv.Atoi(seg); err != nil {
			return "sequence index must be an integer"
		}
		return "sequence index out of range (length " + strconv.Itoa(len(n.Items)) + ")"
	default:
		return ""
	}
}
