//go:build cgo && !windows

package native

/*
#cgo darwin LDFLAGS: -lintl
#cgo freebsd LDFLAGS: -lintl
#cgo openbsd LDFLAGS: -lintl
#cgo netbsd LDFLAGS: -lintl
#include <string.h>
#include <locale.h>
#include <libintl.h>
*/
import "C"

import (
	"syscall"
	"unsafe"
)

func init() {
	Gettext = cGettext
	DGettext = cDGettext
	DCGettext = cDCGettext
	NGettext = cNGettext
	DNGettext = cDNGettext
	DCNGettext = cDCNGettext
	Textdomain = cTextdomain
	BindTextdomain = cBindTextdomain
	SetLocale = cSetLocale
	BindTextdomainCodeset = cBindTextdomainCodeset
}

// cptr reinterprets a NUL-terminated buffer as a C string. A nil slice
// becomes a NULL pointer.
func cptr(b []byte) *C.char {
	if b == nil {
		return nil
	}
	return (*C.char)(unsafe.Pointer(&b[0]))
}

// copyOut copies a borrowed C result into Go-owned memory. The source
// buffer lives inside the C library's catalog state and may be
// invalidated by the next native call, so the copy happens before this
// function returns.
func copyOut(p *C.char) []byte {
	if p == nil {
		return nil
	}
	n := C.strlen(p)
	if n == 0 {
		return []byte{}
	}
	return C.GoBytes(unsafe.Pointer(p), C.int(n))
}

func errnoOf(err error) syscall.Errno {
	if e, ok := err.(syscall.Errno); ok {
		return e
	}
	return 0
}

func cGettext(msgid []byte) []byte {
	return copyOut(C.gettext(cptr(msgid)))
}

func cDGettext(domain, msgid []byte) []byte {
	return copyOut(C.dgettext(cptr(domain), cptr(msgid)))
}

func cDCGettext(domain, msgid []byte, category int) []byte {
	return copyOut(C.dcgettext(cptr(domain), cptr(msgid), C.int(category)))
}

func cNGettext(msgid, plural []byte, n uint32) []byte {
	return copyOut(C.ngettext(cptr(msgid), cptr(plural), C.ulong(n)))
}

func cDNGettext(domain, msgid, plural []byte, n uint32) []byte {
	return copyOut(C.dngettext(cptr(domain), cptr(msgid), cptr(plural), C.ulong(n)))
}

func cDCNGettext(domain, msgid, plural []byte, n uint32, category int) []byte {
	return copyOut(C.dcngettext(cptr(domain), cptr(msgid), cptr(plural), C.ulong(n), C.int(category)))
}

func cTextdomain(domain []byte) ([]byte, syscall.Errno) {
	res, err := C.textdomain(cptr(domain))
	if res == nil {
		return nil, errnoOf(err)
	}
	return copyOut(res), 0
}

func cBindTextdomain(domain, dir []byte) ([]byte, syscall.Errno) {
	res, err := C.bindtextdomain(cptr(domain), cptr(dir))
	if res == nil {
		return nil, errnoOf(err)
	}
	return copyOut(res), 0
}

func cSetLocale(category int, locale []byte) []byte {
	return copyOut(C.setlocale(C.int(category), cptr(locale)))
}

func cBindTextdomainCodeset(domain, codeset []byte) ([]byte, syscall.Errno) {
	res, err := C.bind_textdomain_codeset(cptr(domain), cptr(codeset))
	if res == nil {
		return nil, errnoOf(err)
	}
	return copyOut(res), 0
}
