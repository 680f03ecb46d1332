/*
Package gettext is a Go binding for the native gettext (libintl)
message translation runtime.

Message ids are resolved against the MO catalogs loaded by the native
library; this package only marshals text across the boundary and
emulates context-qualified lookup, which the C API does not provide as
a first-class operation. Catalog parsing, plural-rule evaluation and
locale negotiation all happen on the native side.

Typical setup:

	if _, err := gettext.Textdomain("hellogo"); err != nil {
		log.Fatal(err)
	}
	if _, err := gettext.BindTextdomain("hellogo", "/usr/local/share/locale"); err != nil {
		log.Fatal(err)
	}

	// Either of these two is sufficient; see "UTF-8 is required" below.
	gettext.SetLocale(gettext.LcAll, "en_US.UTF-8")
	gettext.BindTextdomainCodeset("hellogo", "UTF-8")

	fmt.Println(gettext.Gettext("Hello, world!"))
	fmt.Println(gettext.NGettext("One thing", "Multiple things", 2))
	fmt.Println(gettext.PGettext("menu", "Open"))

Alternatively, the TextDomain builder discovers a translation of the
domain for the current language in the system data paths and performs
the whole setup in one call:

	td := gettext.TextDomain{Name: "hellogo"}
	if _, err := td.Init(); err != nil {
		log.Fatal(err)
	}

# UTF-8 is required

The native library converts results to the locale's codeset, while Go
strings are expected to hold UTF-8. This package does not transcode.
Either bind a UTF-8 codeset for your domain (BindTextdomainCodeset, or
the builder, which does it by default) or switch into a UTF-8 locale.
If neither happens and the native library emits text in another
encoding, the lookup functions panic rather than hand back garbled
text.

# Errors and panics

An embedded NUL byte in any argument is a programming error: it cannot
be represented in a C string and would silently truncate the argument.
The functions in this package panic on it, naming the offending
argument. Failures reported by the native library itself (unknown
directory, rejected domain) are returned as errors carrying the native
error code.

# Concurrency

The native library's state (current domain, locale, directory and
codeset bindings, loaded catalogs) is process-wide and mutable; every
mutation here is immediately visible to all goroutines and threads.
This package performs no locking of its own. If your libintl build is
not documented as thread-safe, synchronize externally.
*/
package gettext
