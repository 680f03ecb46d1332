//go:build !cgo && windows

package native

import (
	"syscall"
	"unicode/utf16"
)

func init() {
	WBindTextdomain = fWBindTextdomain
}

func fWBindTextdomain(domain []byte, dir []uint16) ([]uint16, syscall.Errno) {
	d := gostr(domain)
	if dir == nil {
		res, errno := bindDir(d, nil)
		return utf16.Encode([]rune(res)), errno
	}
	p := string(utf16.Decode(dir[:len(dir)-1]))
	res, errno := bindDir(d, &p)
	return utf16.Encode([]rune(res)), errno
}
