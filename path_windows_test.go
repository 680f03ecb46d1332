//go:build windows

package gettext

import (
	"errors"
	"syscall"
	"testing"
)

func TestBindTextdomain_ReturnsResultingDirectory(t *testing.T) {
	installStub(t)

	got, err := BindTextdomain("hellogo", `C:\Users\translator\locale`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `C:\Users\translator\locale` {
		t.Errorf("BindTextdomain() = %q, want %q", got, `C:\Users\translator\locale`)
	}
}

func TestBindTextdomain_RoundTripsNonASCIIPaths(t *testing.T) {
	installStub(t)

	// The path crosses the boundary as UTF-16; non-ASCII characters
	// must survive the conversion in both directions.
	dir := `C:\Users\übersetzer\ロケール`
	got, err := BindTextdomain("hellogo", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != dir {
		t.Errorf("BindTextdomain() = %q, want %q", got, dir)
	}
}

func TestBindTextdomain_NativeFailure(t *testing.T) {
	s := installStub(t)
	s.failBind = syscall.ENOMEM

	_, err := BindTextdomain("hellogo", `C:\locales`)
	if err == nil {
		t.Fatal("expected an error")
	}
	var errno syscall.Errno
	if !errors.As(err, &errno) || errno != syscall.ENOMEM {
		t.Errorf("error %v does not carry the native errno", err)
	}
}

func TestBindTextdomain_PanicsOnEmbeddedNUL(t *testing.T) {
	installStub(t)

	mustPanic(t, "domain contains an embedded NUL byte", func() {
		BindTextdomain("\x00bind this", `C:\locales`)
	})
	mustPanic(t, "dir contains an embedded NUL byte", func() {
		BindTextdomain("my_domain", "C:\\locales\x00")
	})
}
