// Package cfgprint resolves variable references in configuration documents
// and prints the result.
//
// A configuration document is a YAML or JSON tree whose string values may
// embed references such as ${opt:stage} or ${self:custom.region, 'us-east-1'}.
// cfgprint resolves every reference, optionally narrows the result to one
// path, applies a transform, and formats it as YAML, JSON, or plain text.
//
// # Packages
//
//   - document: the ordered configuration tree, its decoders, and path lookup
//   - variables: reference syntax, fallback chains, and document resolution
//   - loader: reading documents from files, stdin, URLs, or memory
//   - printer: the load, resolve, extract, transform, and format pipeline
//   - cfgerrors: typed errors shared by all packages
//
// # Quick Start
//
//	out, err := printer.Print(ctx, loader.FileLoader{Path: "serverless.yml"},
//		printer.WithOptions(variables.Options{"stage": "dev"}),
//		printer.WithPath("provider"),
//		printer.WithFormat(printer.FormatJSON),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out)
//
// The cfgprint command wraps the same pipeline:
//
//	cfgprint print --stage dev --path provider --format json serverless.yml
package cfgprint
