package venvapp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmc/venvapp/internal/system"
	"github.com/tmc/venvapp/internal/venv"
)

// HookFile is the name of the path configuration file InstallHook writes
// into site-packages.
const HookFile = "venvapp.pth"

// HookLine returns the .pth line that sends an interpreter start through
// "launcher run --fallback". The line does nothing when the relaunch
// marker is set or the interpreter already runs from a bundle, and when
// launcher no longer exists.
//
// sys.orig_argv is forwarded where available (Python 3.10+). Older
// interpreters only expose sys.argv, which still reads "-c" or "-m" while
// .pth files run and has lost the code or module name, so those starts and
// interactive ones are left alone.
func HookLine(launcher string) string {
	q := pyQuote(launcher)
	var b strings.Builder
	b.WriteString("import os, sys; ")
	b.WriteString("_venvapp_argv = getattr(sys, 'orig_argv', None)")
	b.WriteString(" or (getattr(sys, 'argv', [])[:1] not in ([], [''], ['-c'], ['-m']) and [sys.executable] + sys.argv or None); ")
	fmt.Fprintf(&b, "_venvapp_argv and os.environ.get(%s) is None", pyQuote(system.EnvRelaunchMarker))
	b.WriteString(" and not any(p.endswith(('.app', '.framework')) for p in os.path.dirname(os.path.abspath(sys.executable)).split(os.sep))")
	fmt.Fprintf(&b, " and os.access(%s, os.X_OK)", q)
	fmt.Fprintf(&b, " and os.execv(%s, [%s, 'run', '--fallback', '--', sys.executable] + _venvapp_argv[1:])", q, q)
	b.WriteString("\n")
	return b.String()
}

// pyQuote renders s as a Python string literal. Go's quoting only emits
// escapes Python also understands.
func pyQuote(s string) string {
	return fmt.Sprintf("%q", s)
}

// InstallHook writes HookFile into every lib/python*/site-packages
// directory of the environment at envDir, so that each interpreter start
// relaunches through the bundle. Existing hook files are rewritten. It
// returns the paths written.
//
// The hook runs the venvapp executable given by WithLauncher, or the
// running executable.
func InstallHook(ctx context.Context, envDir string, opts ...Option) ([]string, error) {
	o := newOptions(ctx, opts)

	env, err := venv.Open(envDir)
	if err != nil {
		var missing *venv.MissingError
		if errors.As(err, &missing) {
			return nil, newError("install hook", ErrNotAVirtualEnvironment, missing.Path, err)
		}
		return nil, newError("install hook", ErrNotAVirtualEnvironment, envDir, err)
	}

	launcher := o.launcher
	if launcher == "" {
		if launcher, err = os.Executable(); err != nil {
			return nil, newError("install hook", ErrHookInstall, "", err)
		}
	}
	if launcher, err = filepath.Abs(launcher); err != nil {
		return nil, newError("install hook", ErrHookInstall, launcher, err)
	}

	dirs, err := env.SitePackages()
	if err != nil {
		return nil, newError("install hook", ErrHookInstall, env.Root, err)
	}
	if len(dirs) == 0 {
		return nil, newError("install hook", ErrHookInstall, env.Root, errors.New("no lib/python*/site-packages directory"))
	}

	line := []byte(HookLine(launcher))
	var written []string
	for _, dir := range dirs {
		path := filepath.Join(dir, HookFile)
		if err := system.SafeWriteFile(path, line, 0644); err != nil {
			return written, newError("install hook", ErrHookInstall, path, err)
		}
		o.logger.InfoContext(ctx, "installed hook", "path", path, "launcher", launcher)
		written = append(written, path)
	}
	return written, nil
}

// RemoveHook deletes HookFile from every site-packages directory of the
// environment at envDir and returns the paths removed. A missing hook is
// not an error.
func RemoveHook(ctx context.Context, envDir string, opts ...Option) ([]string, error) {
	o := newOptions(ctx, opts)

	env, err := venv.Open(envDir)
	if err != nil {
		return nil, newError("remove hook", ErrNotAVirtualEnvironment, envDir, err)
	}
	dirs, err := env.SitePackages()
	if err != nil {
		return nil, newError("remove hook", ErrHookInstall, env.Root, err)
	}

	var removed []string
	for _, dir := range dirs {
		path := filepath.Join(dir, HookFile)
		if !system.FileExists(path) {
			continue
		}
		if err := os.Remove(path); err != nil {
			return removed, newError("remove hook", ErrHookInstall, path, err)
		}
		o.logger.InfoContext(ctx, "removed hook", "path", path)
		removed = append(removed, path)
	}
	return removed, nil
}
