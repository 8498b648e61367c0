package document

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/erraggy/cfgprint/cfgerrors"
	"go.yaml.in/yaml/v4"
)

// maxDecodeDepth bounds nesting (including alias expansion) while decoding.
const maxDecodeDepth = 1000

// Alias expansion budget: a document may expand to at most
// aliasExpansionFactor nodes per node written in the source, and never less
// than minExpansionBudget in total.
const (
	minExpansionBudget   = 100_000
	aliasExpansionFactor = 100
)

// Decode parses YAML or JSON bytes into a Node, preserving key order.
// Empty input decodes to a null scalar.
func Decode(data []byte) (*Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return FromYAML(&root)
}

// FromYAML converts a yaml.Node tree into a Node tree. Document wrappers are
// unwrapped, aliases are expanded, and merge keys are applied. Expansion
// that grows far beyond the source fails with a ResourceLimitError.
func FromYAML(yn *yaml.Node) (*Node, error) {
	budget := max(int64(minExpansionBudget), aliasExpansionFactor*countSourceNodes(yn))
	d := &yamlDecoder{budget: budget}
	return d.convert(yn, 0)
}

// countSourceNodes counts the nodes written in the source, without
// following aliases.
func countSourceNodes(yn *yaml.Node) int64 {
	if yn == nil {
		return 0
	}
	var count int64
	stack := []*yaml.Node{yn}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		stack = append(stack, n.Content...)
	}
	return count
}

type yamlDecoder struct {
	budget   int64
	produced int64
}

func (d *yamlDecoder) convert(yn *yaml.Node, depth int) (*Node, error) {
	if depth > maxDecodeDepth {
		return nil, fmt.Errorf("document: nesting exceeds %d levels", maxDecodeDepth)
	}
	if yn == nil {
		return Null(), nil
	}
	d.produced++
	if d.produced > d.budget {
		return nil, &cfgerrors.ResourceLimitError{
			ResourceType: "alias_expansion",
			Limit:        d.budget,
			Message:      "document expands to too many nodes",
		}
	}

	switch yn.Kind {
	case yaml.DocumentNode:
		if len(yn.Content) == 0 {
			return Null(), nil
		}
		return d.convert(yn.Content[0], depth+1)

	case yaml.AliasNode:
		return d.convert(yn.Alias, depth+1)

	case yaml.SequenceNode:
		items := make([]*Node, 0, len(yn.Content))
		for _, child := range yn.Content {
			item, err := d.convert(child, depth+1)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return Sequence(items...), nil

	case yaml.MappingNode:
		n := &Node{Kind: MappingKind, Pairs: make([]Pair, 0, len(yn.Content)/2)}
		explicit := make(map[string]bool, len(yn.Content)/2)
		for i := 0; i+1 < len(yn.Content); i += 2 {
			keyNode, valNode := yn.Content[i], yn.Content[i+1]
			if keyNode.ShortTag() == "!!merge" {
				if err := d.mergeInto(n, explicit, valNode, depth+1); err != nil {
					return nil, err
				}
				continue
			}
			key, err := mappingKey(keyNode)
			if err != nil {
				return nil, err
			}
			val, err := d.convert(valNode, depth+1)
			if err != nil {
				return nil, err
			}
			explicit[key] = true
			n.Set(key, val)
		}
		return n, nil

	case yaml.ScalarNode:
		return scalarFromYAML(yn)

	default:
		return Null(), nil
	}
}

// mergeInto applies a YAML merge key. Explicit keys always win over merged ones.
func (d *yamlDecoder) mergeInto(n *Node, explicit map[string]bool, src *yaml.Node, depth int) error {
	for src != nil && src.Kind == yaml.AliasNode {
		src = src.Alias
	}
	if src == nil {
		return nil
	}
	if depth > maxDecodeDepth {
		return fmt.Errorf("document: nesting exceeds %d levels", maxDecodeDepth)
	}
	if src.Kind == yaml.SequenceNode {
		for _, item := range src.Content {
			if err := d.mergeInto(n, explicit, item, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	merged, err := d.convert(src, depth)
	if err != nil {
		return err
	}
	if merged.Kind != MappingKind {
		return fmt.Errorf("document: line %d: merge key value must be a mapping, got %s", src.Line, merged.Kind)
	}
	for _, p := range merged.Pairs {
		if explicit[p.Key] {
			continue
		}
		if _, exists := n.Get(p.Key); exists {
			continue
		}
		n.Set(p.Key, p.Value)
	}
	return nil
}

func mappingKey(keyNode *yaml.Node) (string, error) {
	for keyNode.Kind == yaml.AliasNode && keyNode.Alias != nil {
		keyNode = keyNode.Alias
	}
	if keyNode.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("document: line %d: mapping keys must be scalars", keyNode.Line)
	}
	return keyNode.Value, nil
}

func scalarFromYAML(yn *yaml.Node) (*Node, error) {
	switch yn.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := yn.Decode(&b); err != nil {
			return nil, err
		}
		return Scalar(b), nil
	case "!!int":
		var i int64
		if err := yn.Decode(&i); err == nil {
			return Scalar(i), nil
		}
		var f float64
		if err := yn.Decode(&f); err != nil {
			return nil, err
		}
		return Scalar(f), nil
	case "!!float":
		var f float64
		if err := yn.Decode(&f); err != nil {
			return nil, err
		}
		return Scalar(f), nil
	default:
		return Scalar(yn.Value), nil
	}
}

// ToYAML converts n into a yaml.Node tree suitable for encoding.
func (n *Node) ToYAML() *yaml.Node {
	if n == nil {
		return scalarNode("!!null", "null")
	}
	switch n.Kind {
	case SequenceKind:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: make([]*yaml.Node, 0, len(n.Items))}
		for _, item := range n.Items {
			out.Content = append(out.Content, item.ToYAML())
		}
		return out
	case MappingKind:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: make([]*yaml.Node, 0, 2*len(n.Pairs))}
		for _, p := range n.Pairs {
			out.Content = append(out.Content, scalarNode("!!str", p.Key), p.Value.ToYAML())
		}
		return out
	default:
		return scalarToYAML(n.Value)
	}
}

// MarshalYAML implements yaml.Marshaler so a Node can be embedded in other
// YAML-encoded values without losing key order.
func (n *Node) MarshalYAML() (any, error) {
	return n.ToYAML(), nil
}

// EncodeYAML writes n to w as block-style YAML with the given indentation.
func EncodeYAML(w io.Writer, n *Node, indent int) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(indent)
	if err := enc.Encode(n.ToYAML()); err != nil {
		_ = enc.Close()
		return fmt.Errorf("document: encoding yaml: %w", err)
	}
	return enc.Close()
}

// YAMLString returns n as 2-space indented YAML without a trailing newline.
func (n *Node) YAMLString() (string, error) {
	var buf bytes.Buffer
	if err := EncodeYAML(&buf, n, 2); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func scalarToYAML(v any) *yaml.Node {
	switch val := v.(type) {
	case nil:
		return scalarNode("!!null", "null")
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(val))
	case int64:
		return scalarNode("!!int", strconv.FormatInt(val, 10))
	case float64:
		return scalarNode("!!float", yamlFloat(val))
	case string:
		return scalarNode("!!str", val)
	default:
		return scalarNode("!!str", fmt.Sprint(val))
	}
}

// yamlFloat formats f so that it re-resolves as a YAML float.
func yamlFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
