//go:build !windows

package native

import "syscall"

// BindTextdomain binds (or, with a nil dir, reports) the directory in
// which the MO catalogs of a domain are searched. Paths are raw byte
// sequences, matching the byte-oriented filesystem APIs of this
// platform family. A nil result carries the native errno.
var BindTextdomain func(domain, dir []byte) ([]byte, syscall.Errno)
