package cfgerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestReferenceError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ReferenceError{
			Ref:     "self:custom.region",
			Path:    "provider.region",
			Message: "no fallback resolved",
			Cause:   cause,
		}
		want := "unresolved reference ${self:custom.region} at provider.region: no fallback resolved: underlying"
		if got := err.Error(); got != want {
			t.Errorf("unexpected error message: %s", got)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ReferenceError{}
		if err.Error() != "unresolved reference" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Circular prefix", func(t *testing.T) {
		err := &ReferenceError{Ref: "self:a", IsCircular: true}
		if err.Error() != "circular reference ${self:a}" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unsupported prefix", func(t *testing.T) {
		err := &ReferenceError{Ref: "env:HOME", Unsupported: true}
		if err.Error() != "unsupported reference ${env:HOME}" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches sentinels", func(t *testing.T) {
		err := &ReferenceError{}
		if !errors.Is(err, ErrUnresolvedReference) {
			t.Error("should match ErrUnresolvedReference")
		}
		if errors.Is(err, ErrCircularReference) {
			t.Error("should not match ErrCircularReference without IsCircular")
		}

		circular := &ReferenceError{IsCircular: true}
		if !errors.Is(circular, ErrCircularReference) {
			t.Error("should match ErrCircularReference")
		}
	})

	t.Run("Unwrap reaches resource limit", func(t *testing.T) {
		err := &ReferenceError{
			IsCircular: true,
			Cause:      &ResourceLimitError{ResourceType: "resolution_depth", Limit: 64},
		}
		if !errors.Is(err, ErrResourceLimit) {
			t.Error("should match ErrResourceLimit through Cause")
		}
	})
}

func TestPathNotFoundError(t *testing.T) {
	err := &PathNotFoundError{Path: "provider.foobar", Segment: "foobar"}
	if err.Error() != `path not found: "provider.foobar" (missing "foobar")` {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrPathNotFound) {
		t.Error("should match ErrPathNotFound")
	}

	same := &PathNotFoundError{Path: "missing", Segment: "missing"}
	if same.Error() != `path not found: "missing"` {
		t.Errorf("unexpected error message: %s", same.Error())
	}
}

func TestTransformErrors(t *testing.T) {
	unknown := &UnknownTransformError{Name: "foobar", Valid: []string{"keys"}}
	if unknown.Error() != `unknown transform "foobar". Valid transforms: keys` {
		t.Errorf("unexpected error message: %s", unknown.Error())
	}
	if !errors.Is(unknown, ErrTransform) {
		t.Error("UnknownTransformError should match ErrTransform")
	}

	inapplicable := &TransformError{Name: "keys", Message: "value is a sequence, not a mapping"}
	if inapplicable.Error() != `transform "keys": value is a sequence, not a mapping` {
		t.Errorf("unexpected error message: %s", inapplicable.Error())
	}
	if !errors.Is(inapplicable, ErrTransform) {
		t.Error("TransformError should match ErrTransform")
	}
}

func TestUnknownFormatError(t *testing.T) {
	err := &UnknownFormatError{Format: "xml", Valid: []string{"yaml", "json", "text"}}
	if err.Error() != `unknown format "xml". Valid formats: yaml, json, text` {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrFormat) {
		t.Error("should match ErrFormat")
	}
}

func TestNotScalarError(t *testing.T) {
	err := &NotScalarError{Kind: "mapping"}
	if err.Error() != "text format requires a scalar or a sequence of scalars, got mapping" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrNotScalar) {
		t.Error("should match ErrNotScalar")
	}
}

func TestConfigLoadError(t *testing.T) {
	cause := errors.New("no such file")
	err := &ConfigLoadError{Source: "serverless.yml", Line: 3, Cause: cause}
	if err.Error() != "config load error in serverless.yml at line 3: no such file" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrConfigLoad) {
		t.Error("should match ErrConfigLoad")
	}
	if !errors.Is(err, cause) {
		t.Error("should unwrap to cause")
	}
}

func TestSyntaxError(t *testing.T) {
	err := &SyntaxError{Pattern: `\${(`, Message: "does not compile"}
	if err.Error() != `invalid variable syntax "\\${(": does not compile` {
		t.Errorf("unexpected error message: %s", err.Error())
	}
	if !errors.Is(err, ErrSyntax) {
		t.Error("should match ErrSyntax")
	}
}

func TestResourceLimitError(t *testing.T) {
	err := &ResourceLimitError{ResourceType: "file_size", Limit: 10, Actual: 20}
	if err.Error() != "resource limit exceeded: file_size (20 > 10)" {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	noActual := &ResourceLimitError{ResourceType: "resolution_depth", Limit: 64, Message: "self-referencing value"}
	if noActual.Error() != "resource limit exceeded: resolution_depth (limit 64): self-referencing value" {
		t.Errorf("unexpected error message: %s", noActual.Error())
	}
}

func TestErrorsAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("printer: %w", &PathNotFoundError{Path: "a.b", Segment: "b"})

	var pathErr *PathNotFoundError
	if !errors.As(wrapped, &pathErr) {
		t.Fatal("errors.As should find PathNotFoundError")
	}
	if pathErr.Segment != "b" {
		t.Errorf("Segment = %q, want %q", pathErr.Segment, "b")
	}
}
