//go:build windows

package gettext

import (
	"os"
	"unicode/utf16"

	"golang.org/x/sys/windows"

	"github.com/redhatinsights/gettext/internal/native"
)

// BindTextdomain binds a domain to the directory under which its MO
// catalogs are searched, and returns the directory in effect
// afterwards. On Windows paths cross the boundary as NUL-terminated
// UTF-16, through the wide-character variant of the native call; the
// embedded-NUL check applies to the converted sequence.
//
// Panics if domain or dir contain an embedded NUL byte.
func BindTextdomain(domain, dir string) (string, error) {
	wide, err := windows.UTF16FromString(dir)
	if err != nil {
		panic("gettext: dir contains an embedded NUL byte")
	}
	res, errno := native.WBindTextdomain(mustEncode("domain", domain), wide)
	if res == nil {
		return "", os.NewSyscallError("wbindtextdomain", errno)
	}
	return string(utf16.Decode(res)), nil
}

// DomainDirectory reports the catalog directory currently bound for a
// domain, without changing it.
//
// Panics if domain contains an embedded NUL byte.
func DomainDirectory(domain string) (string, error) {
	res, errno := native.WBindTextdomain(mustEncode("domain", domain), nil)
	if res == nil {
		return "", os.NewSyscallError("wbindtextdomain", errno)
	}
	return string(utf16.Decode(res)), nil
}
