package gettext

import (
	"strings"
	"unicode/utf8"
)

// mustEncode converts an argument into the NUL-terminated buffer the
// native call expects. A NUL byte anywhere inside the text would
// terminate the C string early, so it panics, naming the logical
// argument; several arguments of one call can be candidates.
func mustEncode(arg, s string) []byte {
	if strings.IndexByte(s, 0) >= 0 {
		panic("gettext: " + arg + " contains an embedded NUL byte")
	}
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return buf
}

// mustDecode turns a copied native result into a string, panicking if
// the bytes are not well-formed UTF-8. Everything above this boundary
// assumes valid Unicode; see the package documentation on why no
// transcoding is attempted.
func mustDecode(call string, buf []byte) string {
	if !utf8.Valid(buf) {
		panic("gettext: " + call + " returned text that is not valid UTF-8")
	}
	return string(buf)
}
