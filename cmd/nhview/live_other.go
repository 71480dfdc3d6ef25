//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos)

package main

import (
	"errors"

	"golang.org/x/exp/slog"
)

func live(opts options, log *slog.Logger) error {
	return errors.New("running a command is only supported on unix, use -replay")
}
