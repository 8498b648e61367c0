package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// MarshalJSON implements json.Marshaler, writing compact JSON with mapping
// keys in document order.
//
// Note that encoding/json re-escapes HTML characters in Marshaler output;
// call MarshalJSON directly (or use JSONString) to keep them verbatim.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSONString returns n as indented JSON without a trailing newline.
func (n *Node) JSONString(indent string) (string, error) {
	compact, err := n.MarshalJSON()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", indent); err != nil {
		return "", fmt.Errorf("document: indenting json: %w", err)
	}
	return buf.String(), nil
}

func writeJSON(buf *bytes.Buffer, n *Node) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.Kind {
	case SequenceKind:
		buf.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case MappingKind:
		buf.WriteByte('{')
		for i, p := range n.Pairs {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, p.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, p.Value); err != nil {
				return fmt.Errorf("key %q: %w", p.Key, err)
			}
		}
		buf.WriteByte('}')
		return nil
	default:
		return writeJSONScalar(buf, n.Value)
	}
}

func writeJSONScalar(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		buf.WriteString(strconv.FormatBool(val))
	case int64:
		buf.WriteString(strconv.FormatInt(val, 10))
	case float64:
		if math.IsInf(val, 0) || math.IsNaN(val) {
			return fmt.Errorf("document: json: unsupported value %s", formatFloat(val))
		}
		data, err := json.Marshal(val)
		if err != nil {
			return err
		}
		buf.Write(data)
		// Whole floats keep a fraction so they decode back as floats.
		if !bytes.ContainsAny(data, ".eE") {
			buf.WriteString(".0")
		}
	case string:
		return writeJSONString(buf, val)
	default:
		return writeJSONString(buf, fmt.Sprint(val))
	}
	return nil
}

// writeJSONString writes s as a JSON string without HTML escaping.
func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
