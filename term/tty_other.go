//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos)

package term

import "errors"

func openTTY() (TTY, error) {
	return nil, errors.New("terminal access is only supported on unix")
}
