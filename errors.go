package venvapp

import (
	"errors"
	"fmt"
)

// Sentinel errors. Failures from the bundle operations wrap one of these;
// test with errors.Is.
var (
	// ErrNotAVirtualEnvironment means the directory lacks a required
	// virtual environment member.
	ErrNotAVirtualEnvironment = errors.New("not a virtual environment")

	// ErrNotAFrameworkBuild means the interpreter cannot run from inside a
	// bundle.
	ErrNotAFrameworkBuild = errors.New("interpreter is not a framework build")

	// ErrAlreadyAttempted means a relaunch was already tried in this process
	// lineage.
	ErrAlreadyAttempted = errors.New("relaunch already attempted")

	// ErrUnsafeRelink means bin/python resolves outside the environment's
	// bin directory.
	ErrUnsafeRelink = errors.New("interpreter resolves outside the environment")

	// ErrBundleCreation means a filesystem operation building the bundle
	// failed.
	ErrBundleCreation = errors.New("bundle creation failed")

	// ErrNoActionNeeded means the interpreter already runs from a bundle.
	// It is a signal, not a failure.
	ErrNoActionNeeded = errors.New("already running from a bundle")

	// ErrRelaunch means replacing the process image failed.
	ErrRelaunch = errors.New("relaunch failed")

	// ErrHookInstall means writing the site-packages hook failed.
	ErrHookInstall = errors.New("hook installation failed")

	// ErrNotInterpreter means the executable lives in an environment's bin
	// directory but is not its interpreter, such as a console script. It
	// accompanies ErrNotAVirtualEnvironment.
	ErrNotInterpreter = errors.New("executable is not the environment's interpreter")
)

// Error represents a venvapp error with additional context and actionable guidance.
type Error struct {
	Op   string // Operation that failed (e.g., "appify", "relaunch")
	Kind error  // One of the package sentinels, or nil
	Path string // Path involved, if any
	Err  error  // Underlying error, may be nil
	Help string // Actionable guidance for the user
}

func (e *Error) Error() string {
	msg := "venvapp: " + e.Op
	if e.Kind != nil {
		msg += ": " + e.Kind.Error()
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	} else if e.Path != "" {
		msg += ": " + e.Path
	}
	if e.Help != "" {
		msg = fmt.Sprintf("%s\n  hint: %s", msg, e.Help)
	}
	return msg
}

// Unwrap exposes both the sentinel kind and the underlying cause.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newError(op string, kind error, path string, err error) *Error {
	return &Error{Op: op, Kind: kind, Path: path, Err: err, Help: help(kind)}
}

func help(kind error) string {
	switch kind {
	case ErrNotAVirtualEnvironment:
		return "create one with 'python3 -m venv <dir>' and run from its bin directory"
	case ErrNotAFrameworkBuild:
		return "use a framework build of Python (python.org installer or Homebrew), or set VENVAPP_ASSUME_FRAMEWORK=1"
	case ErrAlreadyAttempted:
		return "unset ALREADY_TRIED_APPIFY if the previous relaunch did not complete"
	case ErrUnsafeRelink:
		return "recreate the environment with 'python3 -m venv --copies' or link bin/python to an interpreter inside bin"
	}
	return ""
}
