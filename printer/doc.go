// Package printer turns a configuration document into display text.
//
// [Print] runs the whole pipeline: it loads the document, resolves its
// variable references, extracts an optional path, applies an optional
// transform, and formats the result:
//
//	out, err := printer.Print(ctx, loader.FileLoader{Path: "serverless.yml"},
//		printer.WithOptions(variables.Options{"stage": "dev"}),
//		printer.WithPath("provider.stage"),
//		printer.WithFormat(printer.FormatText),
//	)
//
// Format and transform names are checked before anything is loaded, and no
// output is produced unless every stage succeeds.
//
// # Formats
//
//   - yaml (default): ordered YAML with two-space indentation
//   - json: ordered JSON with two-space indentation
//   - text: a scalar, or a sequence of scalars one per line
//
// # Transforms
//
//   - keys: the top-level keys of a mapping, in document order
package printer
