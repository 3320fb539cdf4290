package venvapp_test

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tmc/venvapp"
)

func ExampleAppifyEnvironment() {
	exe, err := venvapp.AppifyEnvironment(context.Background(), "/Users/me/env1")
	if err != nil {
		// Handle error
		return
	}
	fmt.Println(exe) // /Users/me/env1/bin/env1.app/Contents/MacOS/python
}

func ExampleRequireBundle() {
	// Relaunch a known interpreter invocation through its bundle.
	proc := &venvapp.Process{
		Executable: "/Users/me/env1/bin/python",
		Args:       []string{"/Users/me/env1/bin/python", "-m", "notify"},
		Env:        os.Environ(),
	}
	// Returns nil when already in a bundle; otherwise returns only on failure.
	if err := venvapp.RequireBundle(context.Background(), venvapp.WithProcess(proc)); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func ExamplePrepareBundle() {
	exe, err := venvapp.PrepareBundle(context.Background(), venvapp.WithBundleID("com.example.env1"))
	switch {
	case errors.Is(err, venvapp.ErrNoActionNeeded):
		// Already running from a bundle.
	case errors.Is(err, venvapp.ErrNotAFrameworkBuild):
		// This interpreter cannot run from a bundle.
	case err != nil:
		// Handle error
	default:
		fmt.Println("bundle ready:", exe)
	}
}
