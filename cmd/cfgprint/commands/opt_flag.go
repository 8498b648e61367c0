package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/erraggy/cfgprint/variables"
)

// optionFlag collects repeated --opt key=value flags. Later values for the
// same key win.
type optionFlag struct {
	values variables.Options
}

func newOptionFlag() *optionFlag {
	return &optionFlag{values: variables.Options{}}
}

// String implements flag.Value.
func (f *optionFlag) String() string {
	if f == nil || len(f.values) == 0 {
		return ""
	}
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, f.values[k]))
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (f *optionFlag) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	f.values[key] = val
	return nil
}
