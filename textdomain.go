package gettext

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Builder failures. Native errors from the underlying binding calls
// are returned as-is.
var (
	// ErrInvalidDomain reports a domain name that cannot name a
	// catalog file (empty, or containing a path separator or NUL).
	ErrInvalidDomain = errors.New("invalid domain name")
	// ErrLocaleUnavailable reports that the requested locale was
	// rejected by the native library.
	ErrLocaleUnavailable = errors.New("locale not available")
	// ErrTranslationNotFound reports that no MO catalog for the domain
	// exists in any searched path for the requested locale.
	ErrTranslationNotFound = errors.New("translation not found")
)

// TextDomain discovers and initializes a translation domain: it
// locates an MO catalog for the current (or requested) language in the
// system data paths and then performs the equivalent of SetLocale,
// BindTextdomain, Textdomain and BindTextdomainCodeset in one go.
//
//	td := gettext.TextDomain{Name: "hellogo"}
//	locale, err := td.Init()
//
// Like the calls it wraps, Init mutates process-wide native state.
// Note that the locale is switched before catalog discovery, so a
// discovery failure can still leave the locale changed.
type TextDomain struct {
	// Name is the message domain, which also names the catalog file
	// (<Name>.mo).
	Name string

	// Locale requests a specific locale. Empty means detect from the
	// environment (LANGUAGE, LC_ALL, LC_MESSAGES, LANG, in that
	// order, matching GNU gettext).
	Locale string

	// Codeset to bind for the domain. Empty means "UTF-8", which is
	// what Go callers almost always want; see the package
	// documentation.
	Codeset string

	// PrependPaths are searched before the system data paths,
	// AppendPaths after them. Catalogs are expected at
	// <path>/locale/<locale>/LC_MESSAGES/<Name>.mo.
	PrependPaths []string
	AppendPaths  []string

	// SkipSystemPaths excludes $XDG_DATA_DIRS (default
	// /usr/local/share:/usr/share) from the search.
	SkipSystemPaths bool

	// SkipLocaleCheck tolerates a locale the native library rejects;
	// catalog discovery then proceeds with the requested value.
	SkipLocaleCheck bool
}

// Init runs the discovery and binds the domain. It returns the locale
// the native library reports as now current.
func (td *TextDomain) Init() (string, error) {
	if td.Name == "" || strings.ContainsAny(td.Name, "/\x00") {
		return "", fmt.Errorf("%w: %q", ErrInvalidDomain, td.Name)
	}

	locale := td.Locale
	if locale == "" {
		locale = detectLocale()
	}

	selected, ok := SetLocale(LcMessages, locale)
	if !ok {
		if !td.SkipLocaleCheck {
			return "", fmt.Errorf("%w: %q", ErrLocaleUnavailable, locale)
		}
		selected = locale
	}

	dir, found := td.findCatalog(locale)
	if !found {
		return "", fmt.Errorf("%w: domain %q, locale %q", ErrTranslationNotFound, td.Name, locale)
	}

	if _, err := BindTextdomain(td.Name, dir); err != nil {
		return "", err
	}
	if _, err := Textdomain(td.Name); err != nil {
		return "", err
	}
	codeset := td.Codeset
	if codeset == "" {
		codeset = "UTF-8"
	}
	if _, err := BindTextdomainCodeset(td.Name, codeset); err != nil {
		return "", err
	}

	return selected, nil
}

// findCatalog returns the first locale directory containing an MO
// catalog for the domain under any variant of the locale.
func (td *TextDomain) findCatalog(locale string) (string, bool) {
	var bases []string
	bases = append(bases, td.PrependPaths...)
	if !td.SkipSystemPaths {
		dataDirs := os.Getenv("XDG_DATA_DIRS")
		if dataDirs == "" {
			dataDirs = "/usr/local/share" + string(filepath.ListSeparator) + "/usr/share"
		}
		bases = append(bases, filepath.SplitList(dataDirs)...)
	}
	bases = append(bases, td.AppendPaths...)

	variants := localeVariants(locale)
	for _, base := range bases {
		dir := filepath.Join(base, "locale")
		for _, variant := range variants {
			mo := filepath.Join(dir, variant, "LC_MESSAGES", td.Name+".mo")
			if info, err := os.Stat(mo); err == nil && !info.IsDir() {
				return dir, true
			}
		}
	}
	return "", false
}

// localeVariants expands a locale into catalog directory candidates,
// most specific first: de_DE.UTF-8@euro, de_DE.UTF-8, de_DE, de.
func localeVariants(locale string) []string {
	variants := []string{locale}
	cur := locale
	for _, sep := range []byte{'@', '.', '_'} {
		if i := strings.LastIndexByte(cur, sep); i >= 0 {
			cur = cur[:i]
			variants = append(variants, cur)
		}
	}
	return variants
}

// detectLocale picks the user's preferred message locale from the
// environment, in the GNU gettext precedence order. LANGUAGE may hold
// a colon-separated list; the first entry wins.
func detectLocale() string {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		val := os.Getenv(env)
		if val == "" {
			continue
		}
		if env == "LANGUAGE" {
			val, _, _ = strings.Cut(val, ":")
		}
		if val != "" {
			return val
		}
	}
	return "C"
}
