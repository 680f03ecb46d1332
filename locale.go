package gettext

import (
	"fmt"

	"github.com/redhatinsights/gettext/internal/native"
)

// LocaleCategory identifies one facet of the process locale, as
// defined by locale.h. The numeric values are the native constants and
// must not be reordered independently of them.
type LocaleCategory int

const (
	// LcCType selects character classification and case conversion.
	LcCType LocaleCategory = 0
	// LcNumeric selects non-monetary numeric formats.
	LcNumeric LocaleCategory = 1
	// LcTime selects date and time formats.
	LcTime LocaleCategory = 2
	// LcCollate selects collation order.
	LcCollate LocaleCategory = 3
	// LcMonetary selects monetary formats.
	LcMonetary LocaleCategory = 4
	// LcMessages selects the language of informative and diagnostic
	// messages and interactive responses.
	LcMessages LocaleCategory = 5
	// LcAll selects every category at once.
	LcAll LocaleCategory = 6
	// LcPaper selects paper size.
	LcPaper LocaleCategory = 7
	// LcName selects name formats.
	LcName LocaleCategory = 8
	// LcAddress selects address formats and location information.
	LcAddress LocaleCategory = 9
	// LcTelephone selects telephone number formats.
	LcTelephone LocaleCategory = 10
	// LcMeasurement selects measurement units.
	LcMeasurement LocaleCategory = 11
	// LcIdentification selects metadata about the locale itself.
	LcIdentification LocaleCategory = 12
)

var localeCategoryNames = map[LocaleCategory]string{
	LcCType:          "LC_CTYPE",
	LcNumeric:        "LC_NUMERIC",
	LcTime:           "LC_TIME",
	LcCollate:        "LC_COLLATE",
	LcMonetary:       "LC_MONETARY",
	LcMessages:       "LC_MESSAGES",
	LcAll:            "LC_ALL",
	LcPaper:          "LC_PAPER",
	LcName:           "LC_NAME",
	LcAddress:        "LC_ADDRESS",
	LcTelephone:      "LC_TELEPHONE",
	LcMeasurement:    "LC_MEASUREMENT",
	LcIdentification: "LC_IDENTIFICATION",
}

// String returns the locale.h macro spelling, e.g. "LC_MESSAGES".
func (c LocaleCategory) String() string {
	if name, ok := localeCategoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("LocaleCategory(%d)", int(c))
}

// ParseLocaleCategory converts a locale.h macro spelling back into a
// LocaleCategory.
func ParseLocaleCategory(s string) (LocaleCategory, error) {
	for c, name := range localeCategoryNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown locale category %q", s)
}

// SetLocale sets the locale for a category and returns the opaque
// locale string the native library reports, which can be passed back
// to SetLocale later to restore the same state. ok is false when the
// call failed; the underlying API provides no detail.
//
// Panics if locale contains an embedded NUL byte. An empty locale
// selects the locale from the environment, per the C convention.
func SetLocale(category LocaleCategory, locale string) (string, bool) {
	res := native.SetLocale(int(category), mustEncode("locale", locale))
	if res == nil {
		return "", false
	}
	// Opaque system-defined value; not validated as UTF-8.
	return string(res), true
}
