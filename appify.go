package venvapp

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/tmc/venvapp/internal/bundle"
	"github.com/tmc/venvapp/internal/system"
)

// AppifyEnvironment builds the app bundle for the virtual environment at
// envDir and returns the bundle executable path,
// <envDir>/bin/<name>.app/Contents/MacOS/python.
//
// If the bundle executable already exists its path is returned and nothing
// is written. bin/python must resolve to a file in the environment's own
// bin directory; otherwise ErrUnsafeRelink is returned before anything is
// created.
func AppifyEnvironment(ctx context.Context, envDir string, opts ...Option) (string, error) {
	return appify(ctx, newOptions(ctx, opts), envDir)
}

func appify(ctx context.Context, o *options, envDir string) (string, error) {
	abs, err := filepath.Abs(envDir)
	if err != nil {
		return "", newError("appify", ErrNotAVirtualEnvironment, envDir, err)
	}
	l := bundle.NewLayout(abs)
	logger := o.logger.With("env", l.Name)

	if l.Exists() {
		logger.DebugContext(ctx, "bundle exists", "path", l.Executable)
		return l.Executable, nil
	}

	// The derived identifier is written as is, whatever the directory is
	// called; only identifiers the caller chose are validated.
	bundleID := bundle.DefaultBundleID(l.Name)
	if o.bundleID != "" {
		if err := system.ValidateBundleID(o.bundleID); err != nil {
			return "", newError("appify", ErrBundleCreation, l.Path, err)
		}
		bundleID = o.bundleID
	}

	target, err := l.ResolveInterpreter()
	if err != nil {
		var relink *bundle.RelinkError
		if errors.As(err, &relink) {
			return "", newError("appify", ErrUnsafeRelink, relink.Link, err)
		}
		return "", newError("appify", ErrNotAVirtualEnvironment, l.Interpreter(), err)
	}
	logger.DebugContext(ctx, "resolved interpreter", "link", l.Interpreter(), "target", target)

	cfg := bundle.Config{BundleID: bundleID, DarkMode: o.darkMode}
	if err := bundle.Create(l, target, cfg); err != nil {
		path := l.Path
		var createErr *bundle.CreateError
		if errors.As(err, &createErr) {
			path = createErr.Path
		}
		return "", newError("appify", ErrBundleCreation, path, err)
	}

	logger.InfoContext(ctx, "created bundle", "path", l.Path, "bundle_id", bundleID)
	return l.Executable, nil
}
