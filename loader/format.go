package loader

import (
	"bytes"
	"net/url"
	"path/filepath"
	"strings"
)

// SourceFormat is the serialization of a configuration document.
type SourceFormat string

const (
	SourceFormatUnknown SourceFormat = ""
	SourceFormatYAML    SourceFormat = "yaml"
	SourceFormatJSON    SourceFormat = "json"
)

// detectFormatFromPath detects the format from a file extension.
func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent treats content starting with '{' or '[' as JSON
// and anything else as YAML.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// detectFormatFromURL uses the URL path extension, then the Content-Type.
func detectFormatFromURL(rawURL, contentType string) SourceFormat {
	if u, err := url.Parse(rawURL); err == nil {
		if f := detectFormatFromPath(u.Path); f != SourceFormatUnknown {
			return f
		}
	}

	mediaType, _, _ := strings.Cut(strings.ToLower(contentType), ";")
	switch strings.TrimSpace(mediaType) {
	case "application/json":
		return SourceFormatJSON
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}
