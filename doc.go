// Package venvapp lets a Python virtual environment's interpreter run as a
// macOS application bundle.
//
// Some macOS services, user notifications among them, are only available to
// processes launched from a .app bundle. venvapp builds a minimal bundle
// inside the environment's bin directory, links the environment's real
// interpreter into it, and replaces the running process with the bundled
// interpreter while keeping the original arguments and environment.
//
// # Basic Usage
//
// A launcher that already knows the interpreter invocation calls
// RequireBundle with the process state it wants relaunched:
//
//	err := venvapp.RequireBundle(ctx, venvapp.WithProcess(&venvapp.Process{
//	    Executable: "/Users/me/env1/bin/python",
//	    Args:       []string{"/Users/me/env1/bin/python", "-m", "notify"},
//	    Env:        os.Environ(),
//	}))
//
// RequireBundle returns nil when the interpreter already runs from a bundle.
// Otherwise it creates the bundle on first use and execs into it, so it only
// returns on failure.
//
// # Building Without Relaunching
//
//	exe, err := venvapp.AppifyEnvironment(ctx, "/Users/me/env1")
//	// exe == "/Users/me/env1/bin/env1.app/Contents/MacOS/python"
//
// AppifyEnvironment is idempotent: an existing bundle is returned untouched.
//
// # Relaunch Guard
//
// Relaunch sets ALREADY_TRIED_APPIFY=1 in the new image's environment.
// PrepareBundle refuses with ErrAlreadyAttempted when it sees the marker, so
// a bundle that fails to take effect cannot cause an exec loop.
//
// # Environment Variables
//
//	VENVAPP_BUNDLE_ID         default bundle identifier
//	VENVAPP_DARK_MODE         set NSRequiresAquaSystemAppearance=false
//	VENVAPP_ASSUME_FRAMEWORK  skip the framework build check
//	VENVAPP_DEBUG             debug logging
package venvapp
