// Package options validates combinations of caller-supplied inputs.
package options

import (
	"fmt"
	"strings"
)

// Source is one named input a caller may provide.
type Source struct {
	Name string
	Set  bool
}

// ExactlyOne returns an error unless exactly one of sources is set.
func ExactlyOne(sources ...Source) error {
	count := 0
	for _, s := range sources {
		if s.Set {
			count++
		}
	}
	if count == 1 {
		return nil
	}
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = s.Name
	}
	return fmt.Errorf("exactly one of %s must be provided (got %d)", joinAlternatives(names), count)
}

// joinAlternatives renders names as "a", "a or b", or "a, b, or c".
func joinAlternatives(names []string) string {
	switch len(names) {
	case 0:
		return "nothing"
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
}
