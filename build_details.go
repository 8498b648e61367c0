package cfgprint

import "fmt"

var (
	// version is set via ldflags during release builds.
	// For development builds, this will show "dev"
	version = "dev"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// UserAgent returns the User-Agent string sent when loading remote configs
func UserAgent() string {
	return fmt.Sprintf("cfgprint/%s", version)
}
