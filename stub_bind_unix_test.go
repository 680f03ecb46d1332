//go:build !windows

package gettext

import (
	"syscall"
	"testing"

	"github.com/redhatinsights/gettext/internal/native"
)

// installBindStub routes the narrow directory-binding entry point to
// the in-memory catalog.
func installBindStub(t *testing.T, s *stubCatalog) {
	t.Helper()

	restore := native.BindTextdomain
	t.Cleanup(func() { native.BindTextdomain = restore })

	native.BindTextdomain = func(domain, dir []byte) ([]byte, syscall.Errno) {
		s.calls = append(s.calls, "bindtextdomain")
		if s.failBind != 0 {
			return nil, s.failBind
		}
		d := chop(domain)
		if dir == nil {
			if cur, ok := s.dirs[d]; ok {
				return []byte(cur), 0
			}
			return []byte("/usr/share/locale"), 0
		}
		s.dirs[d] = chop(dir)
		return []byte(s.dirs[d]), 0
	}
}
