package gettext

import "github.com/redhatinsights/gettext/internal/native"

// Gettext translates msgid through the current default domain. If the
// catalog has no entry for msgid, msgid is returned unchanged.
//
// Panics if msgid contains an embedded NUL byte, or if the native
// library returns text that is not valid UTF-8 (see the package
// documentation).
func Gettext(msgid string) string {
	res := native.Gettext(mustEncode("msgid", msgid))
	return mustDecode("gettext()", res)
}

// DGettext translates msgid through the given domain.
//
// Panics if domain or msgid contain an embedded NUL byte, or if the
// native library returns text that is not valid UTF-8.
func DGettext(domain, msgid string) string {
	res := native.DGettext(mustEncode("domain", domain), mustEncode("msgid", msgid))
	return mustDecode("dgettext()", res)
}

// DCGettext translates msgid through the given domain, using the
// catalog bound for the given locale category.
//
// Panics if domain or msgid contain an embedded NUL byte, or if the
// native library returns text that is not valid UTF-8.
func DCGettext(domain, msgid string, category LocaleCategory) string {
	res := native.DCGettext(mustEncode("domain", domain), mustEncode("msgid", msgid), int(category))
	return mustDecode("dcgettext()", res)
}

// NGettext translates msgid through the current default domain,
// selecting the plural form for n. Without a catalog entry, msgid is
// returned when n == 1 and plural otherwise.
//
// Panics if msgid or plural contain an embedded NUL byte, or if the
// native library returns text that is not valid UTF-8.
func NGettext(msgid, plural string, n uint32) string {
	res := native.NGettext(mustEncode("msgid", msgid), mustEncode("plural", plural), n)
	return mustDecode("ngettext()", res)
}

// DNGettext is NGettext through the given domain.
//
// Panics if domain, msgid or plural contain an embedded NUL byte, or
// if the native library returns text that is not valid UTF-8.
func DNGettext(domain, msgid, plural string, n uint32) string {
	res := native.DNGettext(mustEncode("domain", domain), mustEncode("msgid", msgid), mustEncode("plural", plural), n)
	return mustDecode("dngettext()", res)
}

// DCNGettext is NGettext through the given domain and locale category.
//
// Panics if domain, msgid or plural contain an embedded NUL byte, or
// if the native library returns text that is not valid UTF-8.
func DCNGettext(domain, msgid, plural string, n uint32, category LocaleCategory) string {
	res := native.DCNGettext(mustEncode("domain", domain), mustEncode("msgid", msgid), mustEncode("plural", plural), n, int(category))
	return mustDecode("dcngettext()", res)
}
