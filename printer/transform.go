package printer

import (
	"slices"

	"github.com/erraggy/cfgprint/cfgerrors"
	"github.com/erraggy/cfgprint/document"
)

// Transforms. The empty name leaves the value unchanged.
const (
	TransformNone = ""
	TransformKeys = "keys"
)

var validTransforms = []string{TransformKeys}

// ValidTransforms returns the recognized transform names.
func ValidTransforms() []string {
	return slices.Clone(validTransforms)
}

// ValidateTransform reports an UnknownTransformError for unrecognized names.
func ValidateTransform(name string) error {
	if name == TransformNone || slices.Contains(validTransforms, name) {
		return nil
	}
	return &cfgerrors.UnknownTransformError{Name: name, Valid: ValidTransforms()}
}

// Transform applies the named transform to n.
func Transform(n *document.Node, name string) (*document.Node, error) {
	switch name {
	case TransformNone:
		return n, nil
	case TransformKeys:
		if n == nil || n.Kind != document.MappingKind {
			kind := "null"
			if !n.IsNull() {
				kind = n.Kind.String()
			}
			return nil, &cfgerrors.TransformError{Name: name, Message: "requires a mapping, got " + kind}
		}
		keys := make([]*document.Node, 0, n.Len())
		for _, k := range n.Keys() {
			keys = append(keys, document.Scalar(k))
		}
		return document.Sequence(keys...), nil
	default:
		return nil, &cfgerrors.UnknownTransformError{Name: name, Valid: ValidTransforms()}
	}
}
