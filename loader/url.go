package loader

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/erraggy/cfgprint"
	"github.com/erraggy/cfgprint/cfgerrors"
	"github.com/erraggy/cfgprint/document"
)

// DefaultTimeout bounds a URL fetch when no Client is given.
const DefaultTimeout = 30 * time.Second

// URLLoader fetches a document over HTTP(S).
type URLLoader struct {
	URL string
	// Client is used for the request; a client with DefaultTimeout when nil.
	Client *http.Client
	// UserAgent defaults to cfgprint.UserAgent().
	UserAgent string
	// MaxSize limits the response body; DefaultMaxSize when zero.
	MaxSize int64
}

// Load implements Loader.
func (l URLLoader) Load(ctx context.Context) (*document.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, &cfgerrors.ConfigLoadError{Source: l.URL, Cause: fmt.Errorf("creating request: %w", err)}
	}
	userAgent := l.UserAgent
	if userAgent == "" {
		userAgent = cfgprint.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	client := l.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	resp, err := client.Do(req) //nolint:gosec // URL is caller-provided input
	if err != nil {
		return nil, &cfgerrors.ConfigLoadError{Source: l.URL, Cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, loadError(l.URL, "HTTP %s", resp.Status)
	}

	data, err := readLimited(l.URL, resp.Body, l.MaxSize)
	if err != nil {
		return nil, err
	}
	return decode(l.URL, data, detectFormatFromURL(l.URL, resp.Header.Get("Content-Type")))
}
