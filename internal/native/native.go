// Package native declares the entry points of the platform gettext
// implementation that the rest of the module calls into.
//
// The entry points are package-level function variables so the binding
// layer above can be exercised against a stub catalog in tests. Three
// backends assign them:
//
//   - cgo.go (cgo, non-Windows): the C library entry points from
//     libintl.h and locale.h.
//   - cgo_windows.go (cgo, Windows): same, with the wide-character
//     variant of the directory binding.
//   - fallback.go (cgo disabled): a pure Go implementation backed by
//     github.com/snapcore/go-gettext, so CGO_ENABLED=0 builds still
//     translate instead of shipping a dead stub.
//
// Arguments are NUL-terminated byte buffers; a nil slice stands for a
// NULL pointer and turns a mutating call into a read-back query, as in
// the C API. Results are copies owned by the caller: a backend must
// never hand out a pointer into the native library's internal catalog
// state, whose lifetime the caller does not control. For unknown
// message ids the lookup entry points return the id itself, unmodified;
// they never signal absence.
//
// The underlying state (current domain, locale, directory and codeset
// bindings, loaded catalogs) is process-wide and mutable. No entry
// point here takes a lock: if the platform implementation is not
// documented as thread-safe, callers synchronize externally.
package native

import "syscall"

var (
	// Lookup entry points. Non-nil results, echo-back on miss.
	Gettext    func(msgid []byte) []byte
	DGettext   func(domain, msgid []byte) []byte
	DCGettext  func(domain, msgid []byte, category int) []byte
	NGettext   func(msgid, plural []byte, n uint32) []byte
	DNGettext  func(domain, msgid, plural []byte, n uint32) []byte
	DCNGettext func(domain, msgid, plural []byte, n uint32, category int) []byte

	// Textdomain switches (or, with a nil argument, reports) the
	// default message domain. A nil result carries the native errno.
	Textdomain func(domain []byte) ([]byte, syscall.Errno)

	// SetLocale switches (or, with a nil locale, reports) the locale
	// for one category. A nil result means failure; the C API gives no
	// further detail.
	SetLocale func(category int, locale []byte) []byte

	// BindTextdomainCodeset sets (or, with a nil codeset, reports) the
	// output codeset for a domain. A nil result with errno 0 means no
	// codeset is currently bound, which is a legitimate state and not
	// a failure.
	BindTextdomainCodeset func(domain, codeset []byte) ([]byte, syscall.Errno)
)
