package gettext

import "strings"

// msgctxtSeparator joins a context and a message id into the composite
// key under which MO catalogs store context-qualified entries. 0x04 is
// a control byte that cannot appear in human-authored message text,
// which is what makes the fallback detection below reliable.
const msgctxtSeparator = "\x04"

// PGettext translates msgid through the current default domain,
// disambiguated by a grammatical context ("Open" the verb vs. "Open"
// the adjective). The C API has no first-class context lookup; the
// composite key convention emulates it.
//
// If the catalog has no context-qualified entry, the plain translation
// of msgid is returned instead.
//
// Panics if msgctxt or msgid contain an embedded NUL byte, or if the
// native library returns text that is not valid UTF-8.
func PGettext(msgctxt, msgid string) string {
	// Checked before composition so the panic blames the right
	// argument; Gettext would report the composite as msgid.
	if strings.IndexByte(msgctxt, 0) >= 0 {
		panic("gettext: msgctxt contains an embedded NUL byte")
	}

	trans := Gettext(msgctxt + msgctxtSeparator + msgid)
	// An unknown id echoes back verbatim, and the composite always
	// carries the separator, so a surviving separator means no
	// context-qualified entry exists.
	if strings.Contains(trans, msgctxtSeparator) {
		return Gettext(msgid)
	}
	return trans
}

// NPGettext is the plural form of PGettext. n selects the plural slot
// exactly as in NGettext, independent of the context.
//
// Panics if msgctxt, msgid or plural contain an embedded NUL byte, or
// if the native library returns text that is not valid UTF-8.
func NPGettext(msgctxt, msgid, plural string, n uint32) string {
	if strings.IndexByte(msgctxt, 0) >= 0 {
		panic("gettext: msgctxt contains an embedded NUL byte")
	}

	trans := NGettext(msgctxt+msgctxtSeparator+msgid, msgctxt+msgctxtSeparator+plural, n)
	if strings.Contains(trans, msgctxtSeparator) {
		return NGettext(msgid, plural, n)
	}
	return trans
}
