package loader

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/erraggy/cfgprint/cfgerrors"
	"github.com/erraggy/cfgprint/document"
)

// StdinPath is the FileLoader path that reads standard input.
const StdinPath = "-"

// FileLoader loads a document from a file path, from stdin when Path is
// StdinPath, or from a URL when Path starts with http:// or https://.
type FileLoader struct {
	Path string
	// Stdin replaces os.Stdin for StdinPath.
	Stdin io.Reader
	// MaxSize limits the document size; DefaultMaxSize when zero.
	MaxSize int64
	// UserAgent is sent with URL requests.
	UserAgent string
}

// Load implements Loader.
func (l FileLoader) Load(ctx context.Context) (*document.Node, error) {
	switch {
	case l.Path == "":
		return nil, loadError("", "no config path given")
	case l.Path == StdinPath:
		stdin := l.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		return ReaderLoader{Source: "<stdin>", Reader: stdin, MaxSize: l.MaxSize}.Load(ctx)
	case isURL(l.Path):
		return URLLoader{URL: l.Path, MaxSize: l.MaxSize, UserAgent: l.UserAgent}.Load(ctx)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	maxSize := l.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	f, err := os.Open(l.Path)
	if err != nil {
		return nil, &cfgerrors.ConfigLoadError{Source: l.Path, Cause: err}
	}
	defer func() {
		_ = f.Close()
	}()

	info, err := f.Stat()
	if err != nil {
		return nil, &cfgerrors.ConfigLoadError{Source: l.Path, Cause: err}
	}
	if info.IsDir() {
		return nil, loadError(l.Path, "is a directory")
	}
	if info.Size() > maxSize {
		return nil, sizeError(l.Path, maxSize, info.Size())
	}

	data, err := readLimited(l.Path, f, maxSize)
	if err != nil {
		return nil, err
	}
	return decode(l.Path, data, detectFormatFromPath(l.Path))
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
