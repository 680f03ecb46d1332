//go:build windows

package native

import "syscall"

// WBindTextdomain binds (or, with a nil dir, reports) the directory in
// which the MO catalogs of a domain are searched. Paths are
// NUL-terminated UTF-16 sequences, matching the wide-character
// filesystem APIs of this platform. A nil result carries the native
// errno.
var WBindTextdomain func(domain []byte, dir []uint16) ([]uint16, syscall.Errno)
