package printer

import (
	"runtime"
	"slices"
	"strings"

	"github.com/erraggy/cfgprint/cfgerrors"
	"github.com/erraggy/cfgprint/document"
)

// Output formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatText = "text"

	DefaultFormat = FormatYAML
)

// LineSeparator joins sequence items in text output.
var LineSeparator = lineSeparator(runtime.GOOS)

func lineSeparator(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

var validFormats = []string{FormatYAML, FormatJSON, FormatText}

// ValidFormats returns the recognized format names.
func ValidFormats() []string {
	return slices.Clone(validFormats)
}

// ValidateFormat reports an UnknownFormatError for unrecognized names. The
// empty name selects DefaultFormat.
func ValidateFormat(name string) error {
	if name == "" || slices.Contains(validFormats, name) {
		return nil
	}
	return &cfgerrors.UnknownFormatError{Format: name, Valid: ValidFormats()}
}

// Format serializes n. The result has no trailing newline.
func Format(n *document.Node, name string) (string, error) {
	switch name {
	case FormatYAML, "":
		return n.YAMLString()
	case FormatJSON:
		return n.JSONString("  ")
	case FormatText:
		return formatText(n)
	default:
		return "", &cfgerrors.UnknownFormatError{Format: name, Valid: ValidFormats()}
	}
}

func formatText(n *document.Node) (string, error) {
	if n == nil || n.Kind == document.ScalarKind {
		text, _ := n.Text()
		return text, nil
	}
	if n.Kind != document.SequenceKind {
		return "", &cfgerrors.NotScalarError{Kind: n.Kind.String()}
	}

	lines := make([]string, 0, len(n.Items))
	for _, item := range n.Items {
		text, ok := item.Text()
		if !ok {
			return "", &cfgerrors.NotScalarError{Kind: "sequence containing a " + item.Kind.String()}
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, LineSeparator), nil
}
