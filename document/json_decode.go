package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DecodeJSON parses JSON bytes into a Node, preserving key order. Numbers
// that fit in an int64 decode as int64; others decode as float64. Duplicate
// keys keep the last value at the first key's position.
func DecodeJSON(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	n, err := decodeJSONValue(dec, 0)
	if err != nil {
		if errors.Is(err, io.EOF) {
			if len(bytes.TrimSpace(data)) == 0 {
				return Null(), nil
			}
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("document: json: unexpected data after top-level value at offset %d", dec.InputOffset())
	}
	return n, nil
}

func decodeJSONValue(dec *json.Decoder, depth int) (*Node, error) {
	if depth > maxDecodeDepth {
		return nil, fmt.Errorf("document: nesting exceeds %d levels", maxDecodeDepth)
	}
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			n := &Node{Kind: MappingKind, Pairs: []Pair{}}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("document: json: expected object key, got %v", keyTok)
				}
				val, err := decodeJSONValue(dec, depth+1)
				if err != nil {
					return nil, fmt.Errorf("key %q: %w", key, err)
				}
				n.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return n, nil
		case '[':
			items := []*Node{}
			for dec.More() {
				item, err := decodeJSONValue(dec, depth+1)
				if err != nil {
					return nil, fmt.Errorf("index %d: %w", len(items), err)
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return Sequence(items...), nil
		default:
			return nil, fmt.Errorf("document: json: unexpected %v", t)
		}
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return Scalar(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("document: json: number %s: %w", t, err)
		}
		return Scalar(f), nil
	default:
		// string, bool, or nil
		return Scalar(t), nil
	}
}
