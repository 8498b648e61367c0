package document

import (
	"fmt"
	"math"
	"slices"
	"strconv"
)

// Node is one value in a configuration tree.
//
// Exactly one of Value, Items, or Pairs is meaningful, selected by Kind.
type Node struct {
	Kind Kind
	// Value holds a scalar: string, int64, float64, bool, or nil.
	Value any
	// Items holds sequence elements in order.
	Items []*Node
	// Pairs holds mapping entries in insertion order. Keys are unique.
	Pairs []Pair
}

// Pair is one mapping entry.
type Pair struct {
	Key   string
	Value *Node
}

// Scalar returns a scalar node. Integer and float types are normalized to
// int64 and float64; unsupported types are stored as their fmt %v text.
func Scalar(v any) *Node {
	return &Node{Kind: ScalarKind, Value: normalizeScalar(v)}
}

// Null returns a null scalar.
func Null() *Node {
	return &Node{Kind: ScalarKind}
}

// Sequence returns a sequence node holding items.
func Sequence(items ...*Node) *Node {
	if items == nil {
		items = []*Node{}
	}
	return &Node{Kind: SequenceKind, Items: items}
}

// Mapping returns a mapping node. Later pairs replace earlier pairs with the
// same key, keeping the position of the first occurrence.
func Mapping(pairs ...Pair) *Node {
	n := &Node{Kind: MappingKind, Pairs: make([]Pair, 0, len(pairs))}
	for _, p := range pairs {
		n.Set(p.Key, p.Value)
	}
	return n
}

// FromValue converts plain Go values into a Node tree. Map keys are sorted
// for determinism since Go maps carry no order; use Mapping to control order.
func FromValue(v any) (*Node, error) {
	switch val := v.(type) {
	case *Node:
		return val.Clone(), nil
	case nil, string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return Scalar(val), nil
	case []any:
		items := make([]*Node, 0, len(val))
		for i, item := range val {
			child, err := FromValue(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			items = append(items, child)
		}
		return Sequence(items...), nil
	case []string:
		items := make([]*Node, 0, len(val))
		for _, item := range val {
			items = append(items, Scalar(item))
		}
		return Sequence(items...), nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		n := &Node{Kind: MappingKind, Pairs: make([]Pair, 0, len(keys))}
		for _, k := range keys {
			child, err := FromValue(val[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			n.Pairs = append(n.Pairs, Pair{Key: k, Value: child})
		}
		return n, nil
	default:
		return nil, fmt.Errorf("document: cannot convert %T to a node", v)
	}
}

// MustFromValue is like FromValue but panics on error. Intended for tests
// and package-level literals.
func MustFromValue(v any) *Node {
	n, err := FromValue(v)
	if err != nil {
		panic(err)
	}
	return n
}

// IsNull reports whether n is nil or a null scalar.
func (n *Node) IsNull() bool {
	return n == nil || (n.Kind == ScalarKind && n.Value == nil)
}

// IsScalar reports whether n is a scalar node.
func (n *Node) IsScalar() bool {
	return n != nil && n.Kind == ScalarKind
}

// StringValue returns the scalar's string and true when n is a string scalar.
func (n *Node) StringValue() (string, bool) {
	if n == nil || n.Kind != ScalarKind {
		return "", false
	}
	s, ok := n.Value.(string)
	return s, ok
}

// Len returns the number of sequence items or mapping pairs; 0 for scalars.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case SequenceKind:
		return len(n.Items)
	case MappingKind:
		return len(n.Pairs)
	default:
		return 0
	}
}

// Get returns the value stored under key in a mapping node.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != MappingKind {
		return nil, false
	}
	for _, p := range n.Pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Set stores value under key, replacing an existing entry in place or
// appending a new one. It is a no-op on non-mapping nodes.
func (n *Node) Set(key string, value *Node) {
	if n == nil || n.Kind != MappingKind {
		return
	}
	for i := range n.Pairs {
		if n.Pairs[i].Key == key {
			n.Pairs[i].Value = value
			return
		}
	}
	n.Pairs = append(n.Pairs, Pair{Key: key, Value: value})
}

// Keys returns mapping keys in insertion order.
func (n *Node) Keys() []string {
	if n == nil || n.Kind != MappingKind {
		return nil
	}
	keys := make([]string, 0, len(n.Pairs))
	for _, p := range n.Pairs {
		keys = append(keys, p.Key)
	}
	return keys
}

// Clone returns a deep copy of n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Kind: n.Kind, Value: n.Value}
	if n.Items != nil {
		out.Items = make([]*Node, len(n.Items))
		for i, item := range n.Items {
			out.Items[i] = item.Clone()
		}
	}
	if n.Pairs != nil {
		out.Pairs = make([]Pair, len(n.Pairs))
		for i, p := range n.Pairs {
			out.Pairs[i] = Pair{Key: p.Key, Value: p.Value.Clone()}
		}
	}
	return out
}

// Equal reports whether two trees hold the same values with the same key order.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n.IsNull() && other.IsNull()
	}
	if n.Kind != other.Kind {
		return false
	}
	switch n.Kind {
	case SequenceKind:
		return slices.EqualFunc(n.Items, other.Items, (*Node).Equal)
	case MappingKind:
		return slices.EqualFunc(n.Pairs, other.Pairs, func(a, b Pair) bool {
			return a.Key == b.Key && a.Value.Equal(b.Value)
		})
	default:
		return n.Value == other.Value
	}
}

// Interface converts the tree back into plain Go values: map[string]any,
// []any, and scalars. Key order is lost.
func (n *Node) Interface() any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case SequenceKind:
		out := make([]any, len(n.Items))
		for i, item := range n.Items {
			out[i] = item.Interface()
		}
		return out
	case MappingKind:
		out := make(map[string]any, len(n.Pairs))
		for _, p := range n.Pairs {
			out[p.Key] = p.Value.Interface()
		}
		return out
	default:
		return n.Value
	}
}

// Text renders a scalar as display text: strings verbatim, numbers in their
// shortest decimal form, booleans as true/false, and null as "null".
// Non-scalars return an empty string and false.
func (n *Node) Text() (string, bool) {
	if n == nil {
		return "null", true
	}
	if n.Kind != ScalarKind {
		return "", false
	}
	switch v := n.Value.(type) {
	case nil:
		return "null", true
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return formatFloat(v), true
	default:
		return fmt.Sprint(v), true
	}
}

func normalizeScalar(v any) any {
	switch val := v.(type) {
	case nil, string, bool, int64, float64:
		return val
	case int:
		return int64(val)
	case int8:
		return int64(val)
	case int16:
		return int64(val)
	case int32:
		return int64(val)
	case uint:
		return normalizeUint(uint64(val))
	case uint8:
		return int64(val)
	case uint16:
		return int64(val)
	case uint32:
		return int64(val)
	case uint64:
		return normalizeUint(val)
	case float32:
		return float64(val)
	default:
		return fmt.Sprint(val)
	}
}

func normalizeUint(v uint64) any {
	if v > math.MaxInt64 {
		return float64(v)
	}
	return int64(v)
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
