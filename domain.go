package gettext

import (
	"os"

	"github.com/redhatinsights/gettext/internal/native"
)

// Textdomain switches the default message domain and returns the
// domain that is in effect afterwards. The native library may
// normalize the request, so treat the returned value as authoritative,
// not the requested one.
//
// To read the current domain without changing it, use
// CurrentTextdomain.
//
// Panics if domain contains an embedded NUL byte.
func Textdomain(domain string) (string, error) {
	res, errno := native.Textdomain(mustEncode("domain", domain))
	if res == nil {
		return "", os.NewSyscallError("textdomain", errno)
	}
	// Domain names are caller-supplied bytes; returned unvalidated,
	// like the directory results.
	return string(res), nil
}

// BindTextdomainCodeset sets the encoding in which translated messages
// of the domain are returned, and reports the codeset in effect
// afterwards. An empty result with a nil error means no codeset is
// currently bound for the domain — a legitimate state, not a failure;
// the native library then uses the locale's codeset.
//
// To read the current codeset without changing it, use
// TextdomainCodeset.
//
// Panics if domain or codeset contain an embedded NUL byte, or if the
// native library reports a codeset name that is not valid UTF-8
// (codeset names are ASCII in practice).
func BindTextdomainCodeset(domain, codeset string) (string, error) {
	res, errno := native.BindTextdomainCodeset(mustEncode("domain", domain), mustEncode("codeset", codeset))
	if res == nil {
		if errno == 0 {
			return "", nil
		}
		return "", os.NewSyscallError("bind_textdomain_codeset", errno)
	}
	return mustDecode("bind_textdomain_codeset()", res), nil
}
