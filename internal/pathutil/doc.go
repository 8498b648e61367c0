// Package pathutil provides path helpers for walking configuration
// documents and for writing output files.
//
// [PathBuilder] tracks where a recursive walk currently is using push/pop
// semantics, so the location string is only built when it is reported:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("functions")
//	path.PushIndex(0)
//	path.Push("name")
//	// path.String() == "functions[0].name"
//	// path.Dotted() == "functions.0.name"
//
// [SanitizeOutputPath] cleans a user-supplied output path and rejects
// symlinks and directories.
package pathutil
