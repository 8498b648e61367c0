// Package document provides the ordered configuration tree that cfgprint
// resolves, projects, and serializes.
//
// A [Node] is a closed tagged union: a scalar (string, int64, float64, bool,
// or nil), a sequence of nodes, or a mapping whose keys keep their insertion
// order. Key order survives decoding, resolution, and both YAML and JSON
// output, so the printed document reads in the order it was written.
//
// # Decoding
//
// [Decode] accepts YAML or JSON (JSON is a YAML subset) and keeps key order:
//
//	root, err := document.Decode(data)
//
// Anchors, aliases, and merge keys (<<) are expanded during decoding.
// [DecodeJSON] is the strict JSON decoder; it also accepts tab indentation,
// which YAML does not.
//
// # Paths
//
// [Lookup] navigates a dot-separated path. Numeric segments index sequences:
//
//	name, err := document.Lookup(root, "functions.0.name")
//
// A missing segment returns a [cfgerrors.PathNotFoundError].
//
// # Encoding
//
// [Node.MarshalYAML] and [Node.MarshalJSON] preserve key order.
package document
