// Package loader reads configuration documents into [document.Node] trees.
//
// Every loader implements [Loader]. [FileLoader] reads a path, or stdin when
// the path is "-", and delegates to [URLLoader] for http and https URLs.
// [ReaderLoader] and [BytesLoader] decode content that is already at hand.
//
// Input is limited to [DefaultMaxSize] bytes. A UTF-8 byte order mark is
// stripped and UTF-16 input is transcoded before decoding. The format is
// taken from the file extension (or Content-Type for URLs) and otherwise
// sniffed from the content: input starting with '{' or '[' is JSON,
// everything else is YAML.
//
// All failures are returned as [cfgerrors.ConfigLoadError], which carries
// the source name and, when known, the line of a syntax error.
package loader
