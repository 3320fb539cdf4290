package venvapp

import (
	"errors"

	"github.com/tmc/venvapp/internal/system"
	"github.com/tmc/venvapp/internal/venv"
)

// LooksBundlelike reports whether path runs from inside an app or framework
// bundle: some directory component ends in ".app" or ".framework". A
// symlink is resolved one level at a time and each target is checked in
// turn, up to system.MaxSymlinkHops; longer or cyclic chains report false.
func LooksBundlelike(path string) bool {
	return system.FollowLinks(path, system.HasBundleComponent)
}

// CurrentVirtualEnvironment returns the virtual environment containing
// executable, which must sit in the environment's bin directory. The first
// missing member is reported as ErrNotAVirtualEnvironment, with the
// *venv.MissingError available through errors.As.
func CurrentVirtualEnvironment(executable string) (*venv.Environment, error) {
	env, err := venv.FromExecutable(executable)
	if err != nil {
		var missing *venv.MissingError
		if errors.As(err, &missing) {
			return nil, newError("inspect", ErrNotAVirtualEnvironment, missing.Path, err)
		}
		return nil, newError("inspect", ErrNotAVirtualEnvironment, executable, err)
	}
	return env, nil
}
