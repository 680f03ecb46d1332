package gettext

import (
	"os"

	"github.com/redhatinsights/gettext/internal/native"
)

// Read-only queries, layered on the NULL-argument forms of the
// mutating calls. None of them changes global state.

// CurrentTextdomain reports the current default message domain.
func CurrentTextdomain() (string, error) {
	res, errno := native.Textdomain(nil)
	if res == nil {
		return "", os.NewSyscallError("textdomain", errno)
	}
	return string(res), nil
}

// TextdomainCodeset reports the output codeset bound for a domain. An
// empty result with a nil error means no codeset is bound, which is
// the initial state of every domain.
//
// Panics if domain contains an embedded NUL byte.
func TextdomainCodeset(domain string) (string, error) {
	res, errno := native.BindTextdomainCodeset(mustEncode("domain", domain), nil)
	if res == nil {
		if errno == 0 {
			return "", nil
		}
		return "", os.NewSyscallError("bind_textdomain_codeset", errno)
	}
	return mustDecode("bind_textdomain_codeset()", res), nil
}
