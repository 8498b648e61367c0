package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/cfgprint/loader"
	"github.com/erraggy/cfgprint/printer"
	"github.com/erraggy/cfgprint/variables"
)

// serverConfig holds the configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	MaxDepth        int
	DefaultFormat   string
	MaxInlineSize   int64
	AllowPrivateIPs bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from CFGPRINT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxDepth:        envInt("CFGPRINT_MAX_DEPTH", variables.DefaultMaxDepth),
		DefaultFormat:   envFormat("CFGPRINT_DEFAULT_FORMAT", printer.DefaultFormat),
		MaxInlineSize:   int64(envInt("CFGPRINT_MAX_INLINE_SIZE", loader.DefaultMaxSize)),
		AllowPrivateIPs: envBool("CFGPRINT_ALLOW_PRIVATE_IPS", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envFormat(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if err := printer.ValidateFormat(v); err != nil {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return v
}
