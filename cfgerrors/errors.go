package cfgerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrUnresolvedReference indicates a variable reference could not be resolved.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrCircularReference indicates resolution did not terminate within the depth guard.
	ErrCircularReference = errors.New("circular reference")

	// ErrPathNotFound indicates a dot path is missing from the document.
	ErrPathNotFound = errors.New("path not found")

	// ErrTransform indicates an unknown or inapplicable transform.
	ErrTransform = errors.New("transform error")

	// ErrFormat indicates an unknown output format.
	ErrFormat = errors.New("format error")

	// ErrNotScalar indicates text output was requested for a non-scalar value.
	ErrNotScalar = errors.New("not a scalar")

	// ErrConfigLoad indicates the configuration document could not be loaded.
	ErrConfigLoad = errors.New("config load error")

	// ErrSyntax indicates a malformed variable syntax pattern.
	ErrSyntax = errors.New("variable syntax error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")
)

// ReferenceError represents a variable reference that could not be resolved.
type ReferenceError struct {
	// Ref is the reference expression text between the delimiters
	Ref string
	// Path is the document location of the scalar holding the reference
	Path string
	// IsCircular is true when the depth guard stopped a self-referencing chain
	IsCircular bool
	// Unsupported is true when a chain element names an unknown source
	Unsupported bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "unresolved reference"
	switch {
	case e.IsCircular:
		msg = "circular reference"
	case e.Unsupported:
		msg = "unsupported reference"
	}
	if e.Ref != "" {
		msg += " ${" + e.Ref + "}"
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrUnresolvedReference, and ErrCircularReference when IsCircular is set.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrUnresolvedReference {
		return true
	}
	return target == ErrCircularReference && e.IsCircular
}

// PathNotFoundError represents a dot path that does not exist in a document.
type PathNotFoundError struct {
	// Path is the full requested path
	Path string
	// Segment is the first segment that could not be found
	Segment string
	// Message provides additional context, e.g. the kind of node reached
	Message string
}

// Error returns a human-readable error message.
func (e *PathNotFoundError) Error() string {
	msg := fmt.Sprintf("path not found: %q", e.Path)
	if e.Segment != "" && e.Segment != e.Path {
		msg += fmt.Sprintf(" (missing %q)", e.Segment)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *PathNotFoundError) Is(target error) bool {
	return target == ErrPathNotFound
}

// UnknownTransformError represents a transform name that is not recognized.
type UnknownTransformError struct {
	// Name is the requested transform
	Name string
	// Valid lists the recognized transform names
	Valid []string
}

// Error returns a human-readable error message.
func (e *UnknownTransformError) Error() string {
	msg := fmt.Sprintf("unknown transform %q", e.Name)
	if len(e.Valid) > 0 {
		msg += ". Valid transforms: " + strings.Join(e.Valid, ", ")
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnknownTransformError) Is(target error) bool {
	return target == ErrTransform
}

// TransformError represents a known transform applied to a value it cannot handle.
type TransformError struct {
	// Name is the transform that failed
	Name string
	// Message describes the unmet requirement
	Message string
}

// Error returns a human-readable error message.
func (e *TransformError) Error() string {
	return fmt.Sprintf("transform %q: %s", e.Name, e.Message)
}

// Is reports whether target matches this error type.
func (e *TransformError) Is(target error) bool {
	return target == ErrTransform
}

// UnknownFormatError represents an output format that is not recognized.
type UnknownFormatError struct {
	// Format is the requested format
	Format string
	// Valid lists the recognized formats
	Valid []string
}

// Error returns a human-readable error message.
func (e *UnknownFormatError) Error() string {
	msg := fmt.Sprintf("unknown format %q", e.Format)
	if len(e.Valid) > 0 {
		msg += ". Valid formats: " + strings.Join(e.Valid, ", ")
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *UnknownFormatError) Is(target error) bool {
	return target == ErrFormat
}

// NotScalarError represents a text-format request on a value that is not a
// scalar or a sequence of scalars.
type NotScalarError struct {
	// Kind is the kind of the offending value (e.g. "mapping")
	Kind string
	// Path is the location of the offending value, if it is nested
	Path string
}

// Error returns a human-readable error message.
func (e *NotScalarError) Error() string {
	msg := "text format requires a scalar or a sequence of scalars"
	if e.Kind != "" {
		msg += ", got " + e.Kind
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *NotScalarError) Is(target error) bool {
	return target == ErrNotScalar
}

// ConfigLoadError represents a failure of the document loader.
type ConfigLoadError struct {
	// Source is the file path or source identifier
	Source string
	// Line is the line number where decoding failed (0 if unknown)
	Line int
	// Cause is the underlying error
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigLoadError) Error() string {
	msg := "config load error"
	if e.Source != "" {
		msg += " in " + e.Source
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigLoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigLoadError) Is(target error) bool {
	return target == ErrConfigLoad
}

// SyntaxError represents a malformed variable syntax pattern.
type SyntaxError struct {
	// Pattern is the offending pattern source
	Pattern string
	// Message describes the problem
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SyntaxError) Error() string {
	msg := "invalid variable syntax"
	if e.Pattern != "" {
		msg += fmt.Sprintf(" %q", e.Pattern)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// ResourceLimitError represents a resource limit being exceeded.
type ResourceLimitError struct {
	// ResourceType identifies the limit (e.g. "resolution_depth", "file_size")
	ResourceType string
	// Limit is the configured maximum
	Limit int64
	// Actual is the observed value (0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := fmt.Sprintf("resource limit exceeded: %s", e.ResourceType)
	if e.Actual > 0 {
		msg += fmt.Sprintf(" (%d > %d)", e.Actual, e.Limit)
	} else {
		msg += fmt.Sprintf(" (limit %d)", e.Limit)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}
