//go:build !cgo && !windows

package native

import "syscall"

func init() {
	BindTextdomain = fBindTextdomain
}

func fBindTextdomain(domain, dir []byte) ([]byte, syscall.Errno) {
	d := gostr(domain)
	if dir == nil {
		res, errno := bindDir(d, nil)
		return []byte(res), errno
	}
	p := gostr(dir)
	res, errno := bindDir(d, &p)
	return []byte(res), errno
}
