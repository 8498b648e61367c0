// Package fileutil holds file permission modes used when writing output.
package fileutil

import "os"

// OutputFileMode is the permission mode for resolved config files written
// with --output. Resolved configs may carry secrets, so only the owner can
// read them.
const OutputFileMode os.FileMode = 0o600
