// Package variables resolves embedded variable references in a configuration
// document.
//
// A reference is a placeholder inside a string value, written with the
// default syntax as ${source:path}:
//
//	provider:
//	  stage: ${opt:stage, self:custom.defaultStage, 'dev'}
//	  region: ${self:custom.regions.${opt:stage}}
//
// # Sources
//
//   - self:path resolves a dot path in the document being resolved. An empty
//     path refers to the whole document.
//   - opt:name resolves a caller-supplied option ([Options]).
//   - 'text' or "text" is a literal.
//
// # Fallback chains
//
// Comma-separated elements are tried left to right and the first one that
// yields a value wins. Literals always yield, so they belong last. A null
// value or a missing path falls through; false, 0, and "" do not.
//
// # Resolution
//
// [Resolver.ResolveAll] walks every mapping and sequence and rewrites each
// string that contains references. A string that is exactly one reference is
// replaced by the referenced value with its type intact (numbers, booleans,
// mappings). Otherwise each reference must produce a scalar, whose text is
// spliced into the surrounding string. Results are re-scanned until no
// references remain, bounded by a maximum depth so that self-referencing
// values fail with [cfgerrors.ErrCircularReference] instead of looping.
//
// # Custom syntax
//
// A document may declare its own reference pattern at [SyntaxPath]. The
// pattern must contain a capture group for the expression text:
//
//	provider:
//	  variableSyntax: "\\${{([ ~:a-zA-Z0-9._\\'\",\\-\\/\\(\\)]+?)}}"
//	  stage: ${{opt:stage}}
//
// The declaration is read once before resolution and left unresolved in the
// output.
package variables
