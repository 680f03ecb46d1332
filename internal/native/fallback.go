//go:build !cgo

package native

import (
	"os"
	"strings"
	"sync"
	"syscall"

	gogettext "github.com/snapcore/go-gettext"
)

// The fallback backend keeps the process-wide gettext state in Go and
// answers lookups through the pure Go MO reader from
// github.com/snapcore/go-gettext. It mirrors the observable behaviour
// of the C library closely enough for the binding layer above: unknown
// message ids echo back unmodified, plural selection without a catalog
// follows the Germanic rule, and context-qualified entries are found
// under their msgctxt-composed keys because MO files store them that
// way.

const (
	lcMessages = 5
	lcAll      = 6

	defaultDomain  = "messages"
	defaultMODir   = "/usr/share/locale"
	defaultCLocale = "C"
)

type fallbackState struct {
	mu       sync.Mutex
	domain   string
	dirs     map[string]string
	codesets map[string]string
	locales  map[int]string
	catalogs map[string]*gogettext.TextDomain
}

var fstate = &fallbackState{
	domain:   defaultDomain,
	dirs:     map[string]string{},
	codesets: map[string]string{},
	locales:  map[int]string{},
	catalogs: map[string]*gogettext.TextDomain{},
}

func init() {
	Gettext = fGettext
	DGettext = fDGettext
	DCGettext = fDCGettext
	NGettext = fNGettext
	DNGettext = fDNGettext
	DCNGettext = fDCNGettext
	Textdomain = fTextdomain
	SetLocale = fSetLocale
	BindTextdomainCodeset = fBindTextdomainCodeset
}

// gostr strips the trailing NUL of a native argument buffer.
func gostr(b []byte) string {
	return string(b[:len(b)-1])
}

// catalog returns the translation catalog for a domain under the
// current LC_MESSAGES locale.
func (s *fallbackState) catalog(domain string) gogettext.Catalog {
	dir, ok := s.dirs[domain]
	if !ok {
		dir = defaultMODir
	}
	key := domain + "\x00" + dir
	td, ok := s.catalogs[key]
	if !ok {
		td = &gogettext.TextDomain{Name: domain, LocaleDir: dir}
		s.catalogs[key] = td
	}
	return td.Locale(s.languages()...)
}

// languages expands the current LC_MESSAGES locale into the candidate
// language codes to consult, most specific first.
func (s *fallbackState) languages() []string {
	loc, ok := s.locales[lcMessages]
	if !ok {
		loc = defaultCLocale
	}
	if loc == defaultCLocale || loc == "POSIX" || loc == "" {
		return nil
	}
	// de_DE.UTF-8@euro -> de_DE.UTF-8 -> de_DE -> de
	var langs []string
	for _, cut := range []string{"@", "."} {
		if i := strings.Index(loc, cut); i >= 0 {
			loc = loc[:i]
		}
	}
	langs = append(langs, loc)
	if i := strings.Index(loc, "_"); i >= 0 {
		langs = append(langs, loc[:i])
	}
	return langs
}

// envLocale resolves the "" locale request from the environment, the
// way setlocale(category, "") does.
func envLocale() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if val := os.Getenv(env); val != "" {
			return val
		}
	}
	return defaultCLocale
}

func fGettext(msgid []byte) []byte {
	fstate.mu.Lock()
	defer fstate.mu.Unlock()
	return []byte(fstate.catalog(fstate.domain).Gettext(gostr(msgid)))
}

func fDGettext(domain, msgid []byte) []byte {
	fstate.mu.Lock()
	defer fstate.mu.Unlock()
	return []byte(fstate.catalog(gostr(domain)).Gettext(gostr(msgid)))
}

func fDCGettext(domain, msgid []byte, category int) []byte {
	// Per-category catalog directories are not distinguished here;
	// LC_MESSAGES answers for every category.
	return fDGettext(domain, msgid)
}

func fNGettext(msgid, plural []byte, n uint32) []byte {
	fstate.mu.Lock()
	defer fstate.mu.Unlock()
	return []byte(fstate.catalog(fstate.domain).NGettext(gostr(msgid), gostr(plural), n))
}

func fDNGettext(domain, msgid, plural []byte, n uint32) []byte {
	fstate.mu.Lock()
	defer fstate.mu.Unlock()
	return []byte(fstate.catalog(gostr(domain)).NGettext(gostr(msgid), gostr(plural), n))
}

func fDCNGettext(domain, msgid, plural []byte, n uint32, category int) []byte {
	return fDNGettext(domain, msgid, plural, n)
}

func fTextdomain(domain []byte) ([]byte, syscall.Errno) {
	fstate.mu.Lock()
	defer fstate.mu.Unlock()
	if domain == nil {
		return []byte(fstate.domain), 0
	}
	d := gostr(domain)
	if d == "" {
		d = defaultDomain
	}
	fstate.domain = d
	return []byte(d), 0
}

func fSetLocale(category int, locale []byte) []byte {
	fstate.mu.Lock()
	defer fstate.mu.Unlock()
	if locale == nil {
		if cur, ok := fstate.locales[category]; ok {
			return []byte(cur)
		}
		return []byte(defaultCLocale)
	}
	loc := gostr(locale)
	if loc == "" {
		loc = envLocale()
	}
	if category == lcAll {
		for c := 0; c <= 12; c++ {
			fstate.locales[c] = loc
		}
	} else {
		fstate.locales[category] = loc
	}
	return []byte(loc)
}

func fBindTextdomainCodeset(domain, codeset []byte) ([]byte, syscall.Errno) {
	fstate.mu.Lock()
	defer fstate.mu.Unlock()
	d := gostr(domain)
	if codeset == nil {
		cur, ok := fstate.codesets[d]
		if !ok {
			// No codeset bound. The C library reports this as a NULL
			// result without touching errno.
			return nil, 0
		}
		return []byte(cur), 0
	}
	cs := gostr(codeset)
	fstate.codesets[d] = cs
	return []byte(cs), 0
}

// bindDir is shared by the narrow and wide directory-binding variants.
func bindDir(domain string, dir *string) (string, syscall.Errno) {
	fstate.mu.Lock()
	defer fstate.mu.Unlock()
	if dir == nil {
		cur, ok := fstate.dirs[domain]
		if !ok {
			return defaultMODir, 0
		}
		return cur, 0
	}
	fstate.dirs[domain] = *dir
	// Invalidate catalogs previously loaded for this domain.
	for key := range fstate.catalogs {
		if strings.HasPrefix(key, domain+"\x00") {
			delete(fstate.catalogs, key)
		}
	}
	return *dir, 0
}
