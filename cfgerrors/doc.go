// Package cfgerrors provides structured error types for the cfgprint library.
//
// Import path: github.com/erraggy/cfgprint/cfgerrors
//
// Every failure that aborts a print operation is one of the types below, so
// callers can distinguish them via [errors.Is] and [errors.As].
//
// # Error Types
//
//   - [ReferenceError]: a variable reference could not be resolved, is
//     circular, or uses an unsupported source
//   - [PathNotFoundError]: a dot path does not exist in the document
//   - [UnknownTransformError], [TransformError]: invalid or inapplicable transform
//   - [UnknownFormatError]: invalid output format
//   - [NotScalarError]: text output requested for a non-scalar value
//   - [ConfigLoadError]: the configuration document could not be loaded
//   - [SyntaxError]: a custom variable syntax pattern is malformed
//   - [ResourceLimitError]: the resolution depth guard tripped
//
// # Sentinel Errors
//
//   - [ErrUnresolvedReference]: matches any [ReferenceError]
//   - [ErrCircularReference]: matches [ReferenceError] with IsCircular=true
//   - [ErrPathNotFound]: matches [PathNotFoundError]
//   - [ErrTransform]: matches [UnknownTransformError] and [TransformError]
//   - [ErrFormat]: matches [UnknownFormatError]
//   - [ErrNotScalar]: matches [NotScalarError]
//   - [ErrConfigLoad]: matches [ConfigLoadError]
//   - [ErrSyntax]: matches [SyntaxError]
//   - [ErrResourceLimit]: matches [ResourceLimitError]
//
// # Usage Examples
//
//	out, err := printer.Print(ctx, loader.FileLoader{Path: "serverless.yml"})
//	if errors.Is(err, cfgerrors.ErrUnresolvedReference) {
//	    // a ${...} reference had no satisfiable fallback
//	}
//
//	var refErr *cfgerrors.ReferenceError
//	if errors.As(err, &refErr) {
//	    fmt.Printf("could not resolve %s at %s\n", refErr.Ref, refErr.Path)
//	}
package cfgerrors
