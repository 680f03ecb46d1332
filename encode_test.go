package gettext

import (
	"bytes"
	"testing"
)

func TestMustEncode(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"ascii", "hello"},
		{"unicode", "přeložit 翻訳"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := mustEncode("msgid", tt.input)
			if len(buf) != len(tt.input)+1 {
				t.Fatalf("len = %d, want %d", len(buf), len(tt.input)+1)
			}
			if !bytes.Equal(buf[:len(tt.input)], []byte(tt.input)) {
				t.Errorf("content mismatch: %q", buf)
			}
			if buf[len(buf)-1] != 0 {
				t.Error("missing NUL terminator")
			}
		})
	}
}

func TestMustEncode_PanicsAnywhereInText(t *testing.T) {
	// The check covers embedded NUL bytes anywhere, not only trailing
	// ones; an early NUL would silently truncate the argument.
	for _, input := range []string{"\x00", "a\x00b", "trailing\x00"} {
		mustPanic(t, "domain contains an embedded NUL byte", func() {
			mustEncode("domain", input)
		})
	}
}

func TestMustDecode(t *testing.T) {
	if got := mustDecode("gettext()", []byte("Hallo, Welt!")); got != "Hallo, Welt!" {
		t.Errorf("mustDecode() = %q", got)
	}

	mustPanic(t, "gettext() returned text that is not valid UTF-8", func() {
		mustDecode("gettext()", []byte{0xc3, 0x28})
	})
}
