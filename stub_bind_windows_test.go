//go:build windows

package gettext

import (
	"syscall"
	"testing"
	"unicode/utf16"

	"github.com/redhatinsights/gettext/internal/native"
)

// installBindStub routes the wide directory-binding entry point to the
// in-memory catalog. Paths are stored narrow so the assertions stay
// platform-independent.
func installBindStub(t *testing.T, s *stubCatalog) {
	t.Helper()

	restore := native.WBindTextdomain
	t.Cleanup(func() { native.WBindTextdomain = restore })

	native.WBindTextdomain = func(domain []byte, dir []uint16) ([]uint16, syscall.Errno) {
		s.calls = append(s.calls, "wbindtextdomain")
		if s.failBind != 0 {
			return nil, s.failBind
		}
		d := chop(domain)
		if dir == nil {
			cur, ok := s.dirs[d]
			if !ok {
				cur = `C:\Program Files\locale`
			}
			return utf16.Encode([]rune(cur)), 0
		}
		// Drop the trailing NUL of the wide argument.
		s.dirs[d] = string(utf16.Decode(dir[:len(dir)-1]))
		return utf16.Encode([]rune(s.dirs[d])), 0
	}
}
