package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/erraggy/cfgprint/cfgerrors"
	"github.com/erraggy/cfgprint/document"
)

// DefaultMaxSize is the largest document accepted, in bytes.
const DefaultMaxSize = 10 * 1024 * 1024

// Loader produces a configuration document.
type Loader interface {
	Load(ctx context.Context) (*document.Node, error)
}

// BytesLoader decodes in-memory content.
type BytesLoader struct {
	// Source names the content in errors.
	Source string
	Data   []byte
	// Format overrides content sniffing when set.
	Format SourceFormat
}

// Load implements Loader.
func (l BytesLoader) Load(ctx context.Context) (*document.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	source := sourceName(l.Source, "<bytes>")
	if int64(len(l.Data)) > DefaultMaxSize {
		return nil, sizeError(source, DefaultMaxSize, int64(len(l.Data)))
	}
	return decode(source, l.Data, l.Format)
}

// ReaderLoader decodes everything read from Reader.
type ReaderLoader struct {
	Source string
	Reader io.Reader
	Format SourceFormat
	// MaxSize limits the bytes read; DefaultMaxSize when zero.
	MaxSize int64
}

// Load implements Loader.
func (l ReaderLoader) Load(ctx context.Context) (*document.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	source := sourceName(l.Source, "<reader>")
	if l.Reader == nil {
		return nil, &cfgerrors.ConfigLoadError{Source: source, Cause: errors.New("no reader")}
	}
	data, err := readLimited(source, l.Reader, l.MaxSize)
	if err != nil {
		return nil, err
	}
	return decode(source, data, l.Format)
}

func sourceName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

// readLimited reads at most maxSize bytes and fails if more are available.
func readLimited(source string, r io.Reader, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, &cfgerrors.ConfigLoadError{Source: source, Cause: err}
	}
	if int64(len(data)) > maxSize {
		return nil, sizeError(source, maxSize, int64(len(data)))
	}
	return data, nil
}

func sizeError(source string, limit, actual int64) error {
	return &cfgerrors.ConfigLoadError{
		Source: source,
		Cause: &cfgerrors.ResourceLimitError{
			ResourceType: "config_size",
			Limit:        limit,
			Actual:       actual,
		},
	}
}

// decode normalizes the text encoding and parses data in the given or
// detected format.
func decode(source string, data []byte, format SourceFormat) (*document.Node, error) {
	text, err := decodeText(data)
	if err != nil {
		return nil, &cfgerrors.ConfigLoadError{Source: source, Cause: err}
	}
	sniffed := format == SourceFormatUnknown
	if sniffed {
		format = detectFormatFromContent(text)
	}

	var root *document.Node
	switch format {
	case SourceFormatJSON:
		root, err = document.DecodeJSON(text)
		if err != nil && sniffed {
			// A YAML flow mapping also starts with '{'.
			if yamlRoot, yamlErr := document.Decode(text); yamlErr == nil {
				return yamlRoot, nil
			}
		}
	default:
		root, err = document.Decode(text)
	}
	if err != nil {
		return nil, &cfgerrors.ConfigLoadError{Source: source, Line: errorLine(text, err), Cause: err}
	}
	return root, nil
}

var yamlLineRe = regexp.MustCompile(`\bline (\d+)\b`)

// errorLine extracts the 1-based line of a decode error, or 0.
func errorLine(data []byte, err error) int {
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		off := min(int(syn.Offset), len(data))
		return bytes.Count(data[:off], []byte{'\n'}) + 1
	}
	if m := yamlLineRe.FindStringSubmatch(err.Error()); m != nil {
		if line, convErr := strconv.Atoi(m[1]); convErr == nil {
			return line
		}
	}
	return 0
}

// Ensure loaders implement Loader at compile time.
var (
	_ Loader = BytesLoader{}
	_ Loader = ReaderLoader{}
	_ Loader = FileLoader{}
	_ Loader = URLLoader{}
)

func loadError(source string, format string, args ...any) error {
	return &cfgerrors.ConfigLoadError{Source: source, Cause: fmt.Errorf(format, args...)}
}
