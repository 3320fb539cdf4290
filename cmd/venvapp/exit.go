package main

import (
	"errors"

	"github.com/tmc/venvapp"
)

// Exit codes.
const (
	exitOK               = 0
	exitError            = 1
	exitNotVenv          = 2
	exitNotFramework     = 3
	exitAlreadyAttempted = 4
	exitUnsafeRelink     = 5
	exitBundleCreation   = 6
)

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, venvapp.ErrNotAVirtualEnvironment):
		return exitNotVenv
	case errors.Is(err, venvapp.ErrNotAFrameworkBuild):
		return exitNotFramework
	case errors.Is(err, venvapp.ErrAlreadyAttempted):
		return exitAlreadyAttempted
	case errors.Is(err, venvapp.ErrUnsafeRelink):
		return exitUnsafeRelink
	case errors.Is(err, venvapp.ErrBundleCreation):
		return exitBundleCreation
	}
	return exitError
}
