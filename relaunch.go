package venvapp

import (
	"context"

	"github.com/tmc/venvapp/internal/launch"
	"github.com/tmc/venvapp/internal/system"
)

// Relaunch replaces the running process with executable. The original
// argument vector is kept with argv[0] replaced by executable, and the
// environment gains ALREADY_TRIED_APPIFY=1. No child process is created.
//
// With the default exec Relaunch returns only on failure, wrapping
// ErrRelaunch.
func Relaunch(ctx context.Context, executable string, opts ...Option) error {
	return relaunch(ctx, newOptions(ctx, opts), executable)
}

func relaunch(ctx context.Context, o *options, executable string) error {
	proc, err := o.process()
	if err != nil {
		return &Error{Op: "relaunch", Kind: ErrRelaunch, Err: err}
	}

	req := &launch.Request{
		Executable: executable,
		Args:       proc.Args,
		Env:        proc.Env,
		Marker:     system.EnvRelaunchMarker,
	}
	o.logger.DebugContext(ctx, "relaunching", "executable", executable)
	if err := launch.New(o.exec, o.logger).Launch(ctx, req); err != nil {
		return newError("relaunch", ErrRelaunch, executable, err)
	}
	return nil
}
