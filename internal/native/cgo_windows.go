//go:build cgo && windows

package native

/*
#cgo LDFLAGS: -lintl
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
	WBindTextdomain = cWBindTextdomain
	SetLocale = cSetLocale
	BindTextdomainCodeset = cBindTextdomainCodeset
}

func cptr(b []byte) *C.char {
	if b == nil {
		return nil
	}
	return (*C.char)(unsafe.Pointer(&b[0]))
}

func wptr(w []uint16) *C.wchar_t {
	if w == nil {
		return nil
	}
	return (*C.wchar_t)(unsafe.Pointer(&w[0]))
}

// copyOut copies a borrowed C result into Go-owned memory before the
// next native call can invalidate it.
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

// copyOutWide copies a borrowed NUL-terminated wide result, excluding
// the terminator.
func copyOutWide(p *C.wchar_t) []uint16 {
	if p == nil {
		return nil
	}
	out := []uint16{}
	for q := p; *q != 0; q = (*C.wchar_t)(unsafe.Pointer(uintptr(unsafe.Pointer(q)) + unsafe.Sizeof(*q))) {
		out = append(out, uint16(*q))
	}
	return out
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

func cWBindTextdomain(domain []byte, dir []uint16) ([]uint16, syscall.Errno) {
	res, err := C.wbindtextdomain(cptr(domain), wptr(dir))
	if res == nil {
		return nil, errnoOf(err)
	}
	return copyOutWide(res), 0
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
