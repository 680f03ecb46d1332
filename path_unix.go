//go:build !windows

package gettext

import (
	"os"

	"github.com/redhatinsights/gettext/internal/native"
)

// BindTextdomain binds a domain to the directory under which its MO
// catalogs are searched (<dir>/<locale>/LC_MESSAGES/<domain>.mo), and
// returns the directory in effect afterwards. The native library may
// reject or rewrite the request, so treat the returned path as
// authoritative.
//
// On this platform family paths cross the boundary as raw bytes; the
// result is not required to be valid UTF-8 and is returned as-is.
//
// To read the bound directory without changing it, use DomainDirectory.
//
// Panics if domain or dir contain an embedded NUL byte.
func BindTextdomain(domain, dir string) (string, error) {
	res, errno := native.BindTextdomain(mustEncode("domain", domain), mustEncode("dir", dir))
	if res == nil {
		return "", os.NewSyscallError("bindtextdomain", errno)
	}
	return string(res), nil
}

// DomainDirectory reports the catalog directory currently bound for a
// domain, without changing it.
//
// Panics if domain contains an embedded NUL byte.
func DomainDirectory(domain string) (string, error) {
	res, errno := native.BindTextdomain(mustEncode("domain", domain), nil)
	if res == nil {
		return "", os.NewSyscallError("bindtextdomain", errno)
	}
	return string(res), nil
}
